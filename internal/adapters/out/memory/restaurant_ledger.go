package memory

import (
	"context"
	"slices"
	"sync"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"
)

var _ ports.RestaurantRegistry = (*RestaurantLedger)(nil)

// RestaurantLedger counts the orders each restaurant has received.
type RestaurantLedger struct {
	mu     sync.Mutex
	orders map[kernel.UUID][]kernel.UUID
}

func NewRestaurantLedger() *RestaurantLedger {
	return &RestaurantLedger{orders: make(map[kernel.UUID][]kernel.UUID)}
}

func (l *RestaurantLedger) AddOrder(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders[o.Restaurant()] = append(l.orders[o.Restaurant()], o.ID())
	return nil
}

func (l *RestaurantLedger) RemoveOrder(_ context.Context, o *order.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := slices.DeleteFunc(l.orders[o.Restaurant()], o.ID().IsEqual)
	if len(ids) == 0 {
		delete(l.orders, o.Restaurant())
		return nil
	}
	l.orders[o.Restaurant()] = ids
	return nil
}

// Demand is the number of orders restaurant has received.
func (l *RestaurantLedger) Demand(restaurant kernel.UUID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders[restaurant])
}
