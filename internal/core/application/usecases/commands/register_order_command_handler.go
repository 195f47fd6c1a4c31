package commands

import (
	"context"
	"errors"
)

// ErrOrderIsNotValidated is returned when registration is refused because the order has
// not been paid.
var ErrOrderIsNotValidated = errors.New("only validated orders can be registered")

type RegisterOrderCommandHandler struct {
	registrar OrderRegistrar
}

func NewRegisterOrderCommandHandler(registrar OrderRegistrar) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{registrar: registrar}
}

func (h RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ok, err := h.registrar.RegisterOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderIsNotValidated
	}
	return nil
}
