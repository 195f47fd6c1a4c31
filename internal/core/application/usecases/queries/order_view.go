// Package queries contains read-only views over the order pools.
package queries

import (
	"context"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
)

// PoolReader is the read side of registry.OrderRegistry.
type PoolReader interface {
	PendingOrders(ctx context.Context) ([]*order.Order, error)
	RegisteredOrders(ctx context.Context) ([]*order.Order, error)
}

// OrderView is the projection both pool queries return.
type OrderView struct {
	ID             kernel.UUID
	Payer          kernel.UUID
	Restaurant     kernel.UUID
	DeliveryTarget kernel.UUID
	Total          kernel.Money
	Status         order.Status
	CreatedAt      time.Time
}

func toViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{
			ID:             o.ID(),
			Payer:          o.Payer(),
			Restaurant:     o.Restaurant(),
			DeliveryTarget: o.DeliveryTarget(),
			Total:          o.Total(),
			Status:         o.Status(),
			CreatedAt:      o.CreatedAt(),
		})
	}
	return views
}
