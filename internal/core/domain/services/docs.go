// Package services provides the domain services that settle campus food orders.
//
// The package includes:
//   - TotalOf: the pricing function, a pure sum of item prices
//   - PaymentProcessor: turns one or more settlement attempts into a final order status
//   - ProcessorSelector: maps a payment method to the processor that settles it
//   - BalanceGateway: the internal settlement strategy that debits the payer's balance
//
// Services never mutate orders. They return statuses; the order registry writes them back.
package services
