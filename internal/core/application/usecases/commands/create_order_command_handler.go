package commands

import (
	"context"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
)

// CreateOrderResult describes the admitted order.
type CreateOrderResult struct {
	ID        kernel.UUID
	Total     kernel.Money
	Status    order.Status
	CreatedAt time.Time
}

type CreateOrderCommandHandler struct {
	orders OrderCreator
}

func NewCreateOrderCommandHandler(orders OrderCreator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle admits the order. Delivery target and payer checks happen in the registry.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := h.orders.CreateOrder(ctx, cmd.Items(), cmd.Payer(), cmd.DeliveryTarget(), cmd.Restaurant())
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		ID:        o.ID(),
		Total:     o.Total(),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
	}, nil
}
