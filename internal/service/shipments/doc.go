// Package shipments implements the dashboard's mailed-letter read side.
//
// The service layer assembles the shipment read model: account letters
// joined with their letter metadata, tracking history attached, and the
// derived deadline and transit flags computed per row. It depends on the
// repository interface defined in this package and should never import
// from api/.
//
// Repository implementations live in repository/postgres/.
package shipments
