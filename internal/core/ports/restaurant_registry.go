package ports

import (
	"context"

	"campusfood/internal/core/domain/model/order"
)

// RestaurantRegistry receives each new order once, at creation, to track demand.
type RestaurantRegistry interface {
	AddOrder(ctx context.Context, o *order.Order) error

	// RemoveOrder withdraws an order that was never admitted. Unknown orders are ignored.
	RemoveOrder(ctx context.Context, o *order.Order) error
}
