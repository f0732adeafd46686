// Package parcel provides the Parcel aggregate: a package received into the
// warehouse, owned by a client and optionally grouped into a shipment.
//
// The type is called Parcel because "package" is reserved in Go; both words
// mean the same thing in the business vocabulary.
//
// Key business rules:
//   - Tracking codes are required and unique (uniqueness is checked by the
//     application layer against storage)
//   - New parcels start InWarehouse and unassigned
//   - A parcel belongs to at most one shipment at a time
//   - Status changes only through shipment status propagation
package parcel
