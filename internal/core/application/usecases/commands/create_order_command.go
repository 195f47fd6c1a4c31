package commands

import (
	"errors"
	"fmt"
	"slices"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks for a new order from one restaurant, paid by payer and
// delivered to one of the payer's saved targets.
//
// Example:
//
//	pad, _ := order.NewItem("Pad thai", kernel.MustMoney("15.50"))
//	cmd, err := NewCreateOrderCommand(payerID, restaurantID, dormID, []order.Item{pad})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	payer          kernel.UUID
	restaurant     kernel.UUID
	deliveryTarget kernel.UUID
	items          []order.Item

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	payer, restaurant, deliveryTarget kernel.UUID,
	items []order.Item,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParty("payer", &cmd.payer, payer),
		cmd.setParty("restaurant", &cmd.restaurant, restaurant),
		cmd.setParty("delivery target", &cmd.deliveryTarget, deliveryTarget),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Payer() kernel.UUID {
	return c.payer
}

func (c CreateOrderCommand) Restaurant() kernel.UUID {
	return c.restaurant
}

func (c CreateOrderCommand) DeliveryTarget() kernel.UUID {
	return c.deliveryTarget
}

func (c CreateOrderCommand) Items() []order.Item {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setParty(name string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrItemsAreRequired
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	c.items = slices.Clone(items)
	return nil
}
