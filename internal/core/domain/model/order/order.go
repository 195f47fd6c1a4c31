package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned by Validate for orders that bypassed NewOrder/RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrItemsAreRequired    = errs.NewValueIsRequiredError("items")
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("created at")
)

// Params carries the fields of an order at construction. All fields are required.
//
// Example:
//
//	o, err := order.NewOrder(order.Params{
//	    ID:             kernel.NewUUID(),
//	    Payer:          payerID,
//	    Restaurant:     restaurantID,
//	    DeliveryTarget: dormID,
//	    Items:          items,
//	    Total:          services.TotalOf(items),
//	    CreatedAt:      clock.Now(),
//	})
type Params struct {
	ID             kernel.UUID
	Payer          kernel.UUID
	Restaurant     kernel.UUID
	DeliveryTarget kernel.UUID
	Items          []Item
	Total          kernel.Money
	CreatedAt      time.Time
}

// Order is one customer purchase intent moving from admission to settlement.
//
// Order follows these invariants:
//   - payer, restaurant and delivery target never change after construction
//   - the item list is non-empty and owned by the order (callers get copies)
//   - total is fixed at construction and never recomputed
//   - status only moves Pending -> Validated or Pending -> Canceled
//
// Order is not safe for concurrent mutation; the registry serializes access per order.
type Order struct {
	id             kernel.UUID
	payer          kernel.UUID
	restaurant     kernel.UUID
	deliveryTarget kernel.UUID
	items          []Item
	total          kernel.Money
	status         Status
	createdAt      time.Time

	isConstructed bool
}

// NewOrder validates p and returns a Pending order. Every invalid field is reported,
// joined with errors.Join.
func NewOrder(p Params) (*Order, error) {
	return build(p, Pending)
}

// RestoreOrder rebuilds an order loaded from storage with its persisted status.
func RestoreOrder(p Params, status Status) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return build(p, status)
}

func build(p Params, status Status) (*Order, error) {
	o := &Order{
		status:        status,
		total:         p.Total,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setParty("payer", &o.payer, p.Payer),
		o.setParty("restaurant", &o.restaurant, p.Restaurant),
		o.setParty("delivery target", &o.deliveryTarget, p.DeliveryTarget),
		o.setItems(p.Items),
		o.setCreatedAt(p.CreatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Clone returns an independent copy, so stores can hand out snapshots.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Payer() kernel.UUID {
	return o.payer
}

func (o *Order) Restaurant() kernel.UUID {
	return o.restaurant
}

func (o *Order) DeliveryTarget() kernel.UUID {
	return o.deliveryTarget
}

// Items returns a copy of the ordered items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApplySettlement records the outcome of a payment run on a Pending order.
//
// Returns an error if the order is already terminal or outcome is not a terminal status;
// the order is left unchanged in that case.
func (o *Order) ApplySettlement(outcome Status) error {
	next, err := o.status.Settle(outcome)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Cancel moves a Pending order to Canceled.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParty(name string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = at
	return nil
}
