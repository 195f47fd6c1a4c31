package services

import (
	"context"

	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
)

const (
	// ExternalRetries is the number of retries after a failed first attempt on the
	// external settlement network, for at most three attempts in total.
	ExternalRetries = 2

	// InternalRetries is zero because a balance debit is deterministic.
	InternalRetries = 0

	maxRetries = 10
)

var ErrGatewayIsRequired = errs.NewValueIsRequiredError("settlement gateway")

// PaymentProcessor converts settlement attempts against one gateway into an order status.
//
// Business rules:
//   - a single attempt maps success to Validated and failure to Canceled
//   - an order that is already Validated is never settled again
//   - a failed attempt is retried immediately, without backoff, up to the retry budget
//   - the first success ends the sequence
//
// Example usage:
//
//	processor, _ := NewPaymentProcessor(gateway, ExternalRetries)
//	status, err := processor.UpdatePaymentStatus(ctx, o)
//	if err != nil {
//	    return err // context canceled or invalid order
//	}
//	// status is Validated or Canceled
type PaymentProcessor struct {
	gateway ports.SettlementGateway
	retries int
}

// NewPaymentProcessor builds a processor over gateway with the given number of retries.
//
// Parameters:
//   - gateway: the settlement strategy (required)
//   - retries: additional attempts after a failed first one, between 0 and 10
//
// Returns:
//   - *PaymentProcessor: the processor
//   - error: ErrGatewayIsRequired or an errs.ValueIsOutOfRangeError
func NewPaymentProcessor(gateway ports.SettlementGateway, retries int) (*PaymentProcessor, error) {
	if gateway == nil {
		return nil, ErrGatewayIsRequired
	}
	if retries < 0 || retries > maxRetries {
		return nil, errs.NewValueIsOutOfRangeError("retries", retries, 0, maxRetries)
	}
	return &PaymentProcessor{gateway: gateway, retries: retries}, nil
}

// MaxAttempts is the retry budget: one attempt plus the configured retries.
func (p *PaymentProcessor) MaxAttempts() int {
	return p.retries + 1
}

// ProcessPayment issues exactly one settlement attempt.
//
// Returns:
//   - Validated if the gateway succeeded, Canceled otherwise
//   - error if the order is invalid or ctx is already done; no attempt is made then
//
// The order itself is not modified.
func (p *PaymentProcessor) ProcessPayment(ctx context.Context, o *order.Order) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}
	if err := ctx.Err(); err != nil {
		return order.Unknown, err
	}

	if p.gateway.Attempt(ctx, o) {
		return order.Validated, nil
	}
	return order.Canceled, nil
}

// UpdatePaymentStatus runs the retry policy.
//
// If o is already Validated it returns Validated without contacting the gateway.
// Otherwise it performs up to MaxAttempts attempts and stops at the first success.
//
// Returns:
//   - Validated if any attempt succeeded
//   - Canceled once the budget is exhausted
//   - error if the order is invalid or ctx ends between attempts
func (p *PaymentProcessor) UpdatePaymentStatus(ctx context.Context, o *order.Order) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}
	if o.Status() == order.Validated {
		return order.Validated, nil
	}

	for range p.MaxAttempts() {
		status, err := p.ProcessPayment(ctx, o)
		if err != nil {
			return order.Unknown, err
		}
		if status == order.Validated {
			return order.Validated, nil
		}
	}

	return order.Canceled, nil
}
