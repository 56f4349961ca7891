package letters

import "errors"

// Sentinel errors for the letters service layer.
var (
	ErrNotFound = errors.New("letter not found")
)
