// Package settlement simulates the external card network used for EXTERNAL payments.
package settlement

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/clock"
	"campusfood/internal/pkg/errs"
)

// DefaultSuccessRate is the share of attempts the network accepts for a valid card.
const DefaultSuccessRate = 0.8

var _ ports.SettlementGateway = (*MockedNetwork)(nil)

// MockedNetwork declines cards that expired before the current month and otherwise
// accepts an attempt with probability successRate.
type MockedNetwork struct {
	accounts    ports.AccountDirectory
	clock       clock.Clock
	successRate float64
	roll        func() float64
	logger      *slog.Logger
}

type Option func(*MockedNetwork)

// WithRoll replaces the random source. roll must return values in [0, 1).
func WithRoll(roll func() float64) Option {
	return func(n *MockedNetwork) {
		n.roll = roll
	}
}

func WithClock(c clock.Clock) Option {
	return func(n *MockedNetwork) {
		n.clock = c
	}
}

func NewMockedNetwork(accounts ports.AccountDirectory, successRate float64, logger *slog.Logger, opts ...Option) (*MockedNetwork, error) {
	if accounts == nil {
		return nil, errs.NewValueIsRequiredError("account directory")
	}
	if successRate < 0 || successRate > 1 {
		return nil, errs.NewValueIsOutOfRangeError("success rate", successRate, 0, 1)
	}

	n := &MockedNetwork{
		accounts:    accounts,
		clock:       clock.System{},
		successRate: successRate,
		roll:        rand.Float64,
		logger:      logger.With("component", "settlement_network"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

func (n *MockedNetwork) Attempt(ctx context.Context, o *order.Order) bool {
	card, err := n.accounts.PaymentCard(ctx, o.Payer())
	if err != nil {
		n.logger.ErrorContext(ctx, "Card lookup failed",
			"order_id", o.ID().String(), "payer_id", o.Payer().String(), "error", err)
		return false
	}

	if card.ExpiredAt(n.clock.Now()) {
		n.logger.InfoContext(ctx, "Card expired",
			"order_id", o.ID().String(), "card", card.LastFour())
		return false
	}

	return n.roll() < n.successRate
}
