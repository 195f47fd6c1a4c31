package ports

import (
	"context"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/kernel"
)

// AccountDirectory resolves payers. Unknown payers yield errs.ObjectNotFoundError.
type AccountDirectory interface {
	// HasDeliveryTarget reports whether target is among the payer's saved delivery targets.
	HasDeliveryTarget(ctx context.Context, payer, target kernel.UUID) (bool, error)

	// Balance returns the payer's deductible balance.
	Balance(ctx context.Context, payer kernel.UUID) (kernel.Money, error)

	// Debit withdraws amount atomically. It returns false, and changes nothing,
	// when the balance is insufficient.
	Debit(ctx context.Context, payer kernel.UUID, amount kernel.Money) (bool, error)

	// Credit deposits amount atomically.
	Credit(ctx context.Context, payer kernel.UUID, amount kernel.Money) error

	// PaymentCard returns the payer's stored bank card.
	PaymentCard(ctx context.Context, payer kernel.UUID) (account.Card, error)
}
