// Package kernel holds the value objects shared by every campusfood aggregate:
//   - UUID: identifier for orders, accounts, restaurants and delivery targets
//   - Money: non-negative decimal amount used for prices, totals and balances
//
// Both are immutable and safe for concurrent use.
package kernel
