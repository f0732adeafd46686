// Package services provides domain services that coordinate shipments and
// the parcels inside them. Logic that touches more than one aggregate lives
// here instead of on Shipment or Parcel.
//
// The package includes:
//   - ShipmentCoordinator: membership changes, totals recomputation and
//     status propagation from a shipment to its parcels
//   - ParcelStatusFor: the fixed shipment-to-parcel status table
package services
