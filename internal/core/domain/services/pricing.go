package services

import (
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
)

// Pricing computes an order total from its items. It must be pure.
type Pricing func(items []order.Item) kernel.Money

// TotalOf is the default Pricing: the exact decimal sum of the item prices.
//
// Example:
//
//	TotalOf(items priced 15.50 and 12.00) // 27.50
func TotalOf(items []order.Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Price())
	}
	return total
}
