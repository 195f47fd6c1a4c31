package services

import (
	"errors"
	"fmt"

	"campusfood/internal/core/domain/model/payment"
	"campusfood/internal/core/ports"
)

// ProcessorSelector dispatches a payment method to its processor:
//   - External: the settlement network, with ExternalRetries retries
//   - Internal: the payer's balance, with no retries
//
// Any other method is rejected with payment.ErrUnsupportedPaymentMethod.
type ProcessorSelector struct {
	external *PaymentProcessor
	internal *PaymentProcessor
}

// NewProcessorSelector wires both strategies. Both gateways are required.
func NewProcessorSelector(network, balance ports.SettlementGateway) (*ProcessorSelector, error) {
	external, errExternal := NewPaymentProcessor(network, ExternalRetries)
	internal, errInternal := NewPaymentProcessor(balance, InternalRetries)
	if err := errors.Join(errExternal, errInternal); err != nil {
		return nil, err
	}

	return &ProcessorSelector{external: external, internal: internal}, nil
}

// Select returns the processor for method.
func (s *ProcessorSelector) Select(method payment.Method) (*PaymentProcessor, error) {
	switch method {
	case payment.External:
		return s.external, nil
	case payment.Internal:
		return s.internal, nil
	default:
		return nil, fmt.Errorf("%s: %w", method, payment.ErrUnsupportedPaymentMethod)
	}
}
