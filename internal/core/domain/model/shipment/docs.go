// Package shipment provides the Shipment aggregate: a named batch of parcels
// (a container) that travels together and shares one coarse status.
//
// The package includes:
//   - Shipment: identity, name, status, cached totals and travel timestamps
//   - Status: Planning, EnRoute, Arrived, Completed
//
// Key business rules:
//   - New shipments start in Planning with zero totals
//   - Total weight and volume are recomputed from the live member set,
//     never adjusted incrementally
//   - Departure is stamped on the first move to EnRoute and arrival on the
//     first move to Arrived; neither is overwritten afterwards
//   - Status may be set to any valid value; there is no forward-only check
//
// Membership itself is stored on the parcel side (parcel.ShipmentID).
package shipment
