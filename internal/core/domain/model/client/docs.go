// Package client provides the Client aggregate of the cargo back-office and
// the sequential human-readable code every client is registered under.
//
// The package includes:
//   - Client: contact record of a customer who owns parcels
//   - HumanCode: the immutable "A#####" identifier printed on labels
//
// Key business rules:
//   - Human codes are issued in strictly increasing order: A00001, A00002, ...
//   - A human code never changes once assigned
//   - Name and phone are required; the chat handle is optional and, when
//     present, is where parcel status notifications are delivered
package client
