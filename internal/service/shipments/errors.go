package shipments

import "errors"

// Sentinel errors for the shipments service layer.
var (
	ErrNotFound      = errors.New("shipment not found")
	ErrInvalidStatus = errors.New("invalid letter status filter")
)
