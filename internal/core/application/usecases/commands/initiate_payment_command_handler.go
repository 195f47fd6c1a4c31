package commands

import (
	"context"

	"campusfood/internal/core/domain/model/order"
)

type InitiatePaymentCommandHandler struct {
	payments PaymentInitiator
}

func NewInitiatePaymentCommandHandler(payments PaymentInitiator) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{payments: payments}
}

// Handle returns the order status after the payment run: Validated or Canceled.
func (h InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}
	return h.payments.InitiatePayment(ctx, cmd.OrderID(), cmd.Method())
}
