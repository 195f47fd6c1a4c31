// Package commands contains the operations that change an order's lifecycle state.
// Each command is validated at construction and executed by its handler against the
// order registry.
package commands

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/payment"
)

// Narrow views of registry.OrderRegistry, one per handler.
type (
	OrderCreator interface {
		CreateOrder(
			ctx context.Context,
			items []order.Item,
			payer, deliveryTarget, restaurant kernel.UUID,
		) (*order.Order, error)
	}

	PaymentInitiator interface {
		InitiatePayment(ctx context.Context, orderID kernel.UUID, method payment.Method) (order.Status, error)
	}

	OrderRegistrar interface {
		RegisterOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
	}
)
