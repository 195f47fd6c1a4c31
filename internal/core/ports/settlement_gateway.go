package ports

import (
	"context"

	"campusfood/internal/core/domain/model/order"
)

// SettlementGateway performs one settlement attempt for an order.
//
// The outcome is opaque: true means the money moved. A gateway never retries on its own
// and reports transport problems as a failed attempt.
type SettlementGateway interface {
	Attempt(ctx context.Context, o *order.Order) bool
}
