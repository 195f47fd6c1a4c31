package commands

import (
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/payment"
	"campusfood/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand asks to settle an order with a payment method. An Unspecified
// method is accepted here and refused by the registry, before the order is touched.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  payment.Method

	guard guard.ConstructorGuard
}

func NewInitiatePaymentCommand(orderID kernel.UUID, method payment.Method) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		method: method,
		guard:  guard.NewConstructorGuard(),
	}
	if err := cmd.setOrderID(orderID); err != nil {
		return InitiatePaymentCommand{}, err
	}
	return cmd, nil
}

func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

func (c InitiatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c InitiatePaymentCommand) Method() payment.Method {
	return c.method
}

func (c *InitiatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
