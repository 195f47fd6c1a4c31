// Package order provides the Order aggregate of the campus food platform.
//
// The package includes:
//   - Order: payer, restaurant, items, delivery target, fixed total and settlement status
//   - Item: an ordered dish and its price
//   - Status: Pending -> Validated | Canceled, both terminal
//
// Orders are created Pending by the order registry and only the registry writes their
// status, either with a payment processor's outcome or on admission timeout.
package order
