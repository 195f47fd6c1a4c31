// Package ports defines the contracts between the order lifecycle core and the outside
// world: where orders are kept, who the payers are, who cooks, and who settles money.
package ports

import (
	"context"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
)

// PooledOrder is an order as held by an OrderPool, together with its pool membership.
// AdmittedAt is meaningful only while the order is pending. Dropped orders belong to
// no pool and keep the status they were dropped with.
type PooledOrder struct {
	Order      *order.Order
	AdmittedAt time.Time
	Registered bool
	Dropped    bool
}

// OrderPool stores the pending pool, the registered pool and the admission records.
// Implementations must be safe for concurrent use; the registry adds per-order locking
// on top for read-decide-write sequences.
type OrderPool interface {
	// AddPending admits a new order into the pending pool with its admission time.
	AddPending(ctx context.Context, o *order.Order, admittedAt time.Time) error

	// Get returns a pending, registered or dropped order.
	// Returns errs.ObjectNotFoundError for unknown orders.
	Get(ctx context.Context, id kernel.UUID) (PooledOrder, error)

	// Update persists the status of an order that stays in its current pool.
	// Dropped orders cannot be updated.
	Update(ctx context.Context, o *order.Order) error

	// Drop removes a pending order and its admission record from all pools,
	// persisting its final status. The order stays resolvable through Get.
	Drop(ctx context.Context, o *order.Order) error

	// Promote moves a pending order into the registered pool and deletes its
	// admission record. Promoting a registered order is a no-op.
	Promote(ctx context.Context, o *order.Order) error

	// Pending lists pending orders in admission order.
	Pending(ctx context.Context) ([]PooledOrder, error)

	// Registered lists registered orders in registration order.
	Registered(ctx context.Context) ([]*order.Order, error)
}
