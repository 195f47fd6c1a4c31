// Package memory holds goroutine-safe in-process implementations of the core ports.
// They back the service when STORAGE=memory and double as fakes in tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
)

var _ ports.OrderPool = (*OrderPool)(nil)

type pooled struct {
	order      *order.Order
	admittedAt time.Time
	registered bool
	dropped    bool
}

// OrderPool keeps the pending and registered pools in memory. Orders are stored and
// returned as snapshots; callers persist changes through Update, Drop or Promote.
type OrderPool struct {
	mu         sync.RWMutex
	orders     map[kernel.UUID]*pooled
	pending    []kernel.UUID
	registered []kernel.UUID
}

func NewOrderPool() *OrderPool {
	return &OrderPool{orders: make(map[kernel.UUID]*pooled)}
}

func (p *OrderPool) AddPending(_ context.Context, o *order.Order, admittedAt time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.orders[o.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%s is already pooled", o.ID()))
	}
	p.orders[o.ID()] = &pooled{order: o.Clone(), admittedAt: admittedAt}
	p.pending = append(p.pending, o.ID())
	return nil
}

func (p *OrderPool) Get(_ context.Context, id kernel.UUID) (ports.PooledOrder, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	rec, ok := p.orders[id]
	if !ok {
		return ports.PooledOrder{}, errs.NewObjectNotFoundError("orderID", id)
	}
	return rec.snapshot(), nil
}

func (p *OrderPool) Update(_ context.Context, o *order.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.orders[o.ID()]
	if !ok || rec.dropped {
		return errs.NewObjectNotFoundError("orderID", o.ID())
	}
	rec.order = o.Clone()
	return nil
}

func (p *OrderPool) Drop(_ context.Context, o *order.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.orders[o.ID()]
	if !ok || rec.registered || rec.dropped {
		return errs.NewObjectNotFoundError("orderID", o.ID())
	}
	rec.order = o.Clone()
	rec.dropped = true
	rec.admittedAt = time.Time{}
	p.pending = removeID(p.pending, o.ID())
	return nil
}

func (p *OrderPool) Promote(_ context.Context, o *order.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.orders[o.ID()]
	if !ok || rec.dropped {
		return errs.NewObjectNotFoundError("orderID", o.ID())
	}
	if rec.registered {
		return nil
	}
	rec.order = o.Clone()
	rec.registered = true
	rec.admittedAt = time.Time{}
	p.pending = removeID(p.pending, o.ID())
	p.registered = append(p.registered, o.ID())
	return nil
}

func (p *OrderPool) Pending(_ context.Context) ([]ports.PooledOrder, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]ports.PooledOrder, 0, len(p.pending))
	for _, id := range p.pending {
		out = append(out, p.orders[id].snapshot())
	}
	return out, nil
}

func (p *OrderPool) Registered(_ context.Context) ([]*order.Order, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*order.Order, 0, len(p.registered))
	for _, id := range p.registered {
		out = append(out, p.orders[id].order.Clone())
	}
	return out, nil
}

func (r *pooled) snapshot() ports.PooledOrder {
	return ports.PooledOrder{
		Order:      r.order.Clone(),
		AdmittedAt: r.admittedAt,
		Registered: r.registered,
		Dropped:    r.dropped,
	}
}

func removeID(ids []kernel.UUID, id kernel.UUID) []kernel.UUID {
	return slices.DeleteFunc(ids, id.IsEqual)
}
