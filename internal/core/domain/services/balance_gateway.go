package services

import (
	"context"
	"log/slog"

	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"
)

// BalanceGateway settles an order by debiting its total from the payer's stored balance.
// It succeeds only when the balance covers the total.
type BalanceGateway struct {
	accounts ports.AccountDirectory
	logger   *slog.Logger
}

func NewBalanceGateway(accounts ports.AccountDirectory, logger *slog.Logger) *BalanceGateway {
	return &BalanceGateway{
		accounts: accounts,
		logger:   logger.With("component", "balance_gateway"),
	}
}

// Attempt debits the order total. A balance that already falls short skips the debit.
// Directory errors count as a failed attempt.
func (g *BalanceGateway) Attempt(ctx context.Context, o *order.Order) bool {
	balance, err := g.accounts.Balance(ctx, o.Payer())
	if err != nil {
		g.logger.ErrorContext(ctx, "Balance lookup failed",
			"order_id", o.ID().String(), "payer_id", o.Payer().String(), "error", err)
		return false
	}
	if balance.LessThan(o.Total()) {
		g.logger.InfoContext(ctx, "Insufficient balance",
			"order_id", o.ID().String(), "amount", o.Total().String(), "balance", balance.String())
		return false
	}

	ok, err := g.accounts.Debit(ctx, o.Payer(), o.Total())
	if err != nil {
		g.logger.ErrorContext(ctx, "Balance debit failed",
			"order_id", o.ID().String(), "payer_id", o.Payer().String(), "error", err)
		return false
	}
	if !ok {
		g.logger.InfoContext(ctx, "Balance spent concurrently",
			"order_id", o.ID().String(), "amount", o.Total().String())
	}
	return ok
}
