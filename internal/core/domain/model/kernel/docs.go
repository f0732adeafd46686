// Package kernel holds the value objects shared by every cargo aggregate.
//
// The package includes:
//   - UUID: identifier whose zero value never validates
//   - Dimensions: non-negative weight/volume pair with the 0.001 change threshold
//     used to decide when shipment totals must be recomputed
package kernel
