// Package registry owns the order lifecycle: admission, payment with timeout, and
// registration of settled orders for fulfillment.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/payment"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/clock"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/keymutex"
)

// AdmissionTimeout is how long an order may wait in the pending pool before a payment
// attempt for it is refused and the order dropped.
const AdmissionTimeout = 3 * time.Minute

const (
	ReasonExpired            = "expired"
	ReasonSettlementDeclined = "settlement_declined"
)

var (
	ErrInvalidDeliveryTarget = errs.NewValueIsInvalidError("delivery target")
	ErrMissingPaymentMethod  = errs.NewValueIsRequiredError("payment method")

	ErrPoolIsRequired        = errs.NewValueIsRequiredError("order pool")
	ErrAccountsAreRequired   = errs.NewValueIsRequiredError("account directory")
	ErrRestaurantsIsRequired = errs.NewValueIsRequiredError("restaurant registry")
	ErrSelectorIsRequired    = errs.NewValueIsRequiredError("processor selector")
)

// Deps lists the collaborators of an OrderRegistry. Pricing, Clock, Logger and
// Cancellations are optional.
type Deps struct {
	Pool          ports.OrderPool
	Accounts      ports.AccountDirectory
	Restaurants   ports.RestaurantRegistry
	Selector      *services.ProcessorSelector
	Pricing       services.Pricing
	Clock         clock.Clock
	Logger        *slog.Logger
	Cancellations ports.CancellationRecorder
}

// OrderRegistry is safe for concurrent use. Every read-decide-write sequence on an order
// runs under that order's lock.
type OrderRegistry struct {
	pool          ports.OrderPool
	accounts      ports.AccountDirectory
	restaurants   ports.RestaurantRegistry
	selector      *services.ProcessorSelector
	pricing       services.Pricing
	clock         clock.Clock
	logger        *slog.Logger
	cancellations ports.CancellationRecorder
	locks         *keymutex.KeyMutex[kernel.UUID]
}

func NewOrderRegistry(deps Deps) (*OrderRegistry, error) {
	var errPool, errAccounts, errRestaurants, errSelector error
	if deps.Pool == nil {
		errPool = ErrPoolIsRequired
	}
	if deps.Accounts == nil {
		errAccounts = ErrAccountsAreRequired
	}
	if deps.Restaurants == nil {
		errRestaurants = ErrRestaurantsIsRequired
	}
	if deps.Selector == nil {
		errSelector = ErrSelectorIsRequired
	}
	if err := errors.Join(errPool, errAccounts, errRestaurants, errSelector); err != nil {
		return nil, err
	}

	r := &OrderRegistry{
		pool:          deps.Pool,
		accounts:      deps.Accounts,
		restaurants:   deps.Restaurants,
		selector:      deps.Selector,
		pricing:       deps.Pricing,
		clock:         deps.Clock,
		logger:        deps.Logger,
		cancellations: deps.Cancellations,
		locks:         keymutex.New[kernel.UUID](),
	}
	if r.pricing == nil {
		r.pricing = services.TotalOf
	}
	if r.clock == nil {
		r.clock = clock.System{}
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With("component", "order_registry")

	return r, nil
}

// CreateOrder admits a new Pending order.
//
// The delivery target must be one of the payer's saved targets, otherwise
// ErrInvalidDeliveryTarget is returned. The restaurant is notified before the order
// enters the pending pool and the notice is withdrawn if admission fails.
func (r *OrderRegistry) CreateOrder(
	ctx context.Context,
	items []order.Item,
	payer, deliveryTarget, restaurant kernel.UUID,
) (*order.Order, error) {
	ok, err := r.accounts.HasDeliveryTarget(ctx, payer, deliveryTarget)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidDeliveryTarget
	}

	now := r.clock.Now()
	o, err := order.NewOrder(order.Params{
		ID:             kernel.NewUUID(),
		Payer:          payer,
		Restaurant:     restaurant,
		DeliveryTarget: deliveryTarget,
		Items:          items,
		Total:          r.pricing(items),
		CreatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	if err := r.restaurants.AddOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("notify restaurant: %w", err)
	}
	if err := r.pool.AddPending(ctx, o, now); err != nil {
		err = fmt.Errorf("admit order: %w", err)
		if rmErr := r.restaurants.RemoveOrder(ctx, o); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("withdraw restaurant notice: %w", rmErr))
		}
		return nil, err
	}

	r.logger.InfoContext(ctx, "Order admitted",
		"order_id", o.ID().String(), "payer_id", payer.String(), "total", o.Total().String())
	return o, nil
}

// InitiatePayment settles a pending order with the given method.
//
// Outcomes:
//   - registered orders report Validated and are left alone
//   - orders already dropped by the expiry sweep report Canceled
//   - orders pending for AdmissionTimeout or longer are canceled and dropped with no
//     settlement attempt
//   - orders already Validated or Canceled report their status with no attempt
//   - otherwise the method's processor runs its retry policy and the result is stored
//
// A settled order stays in the pending pool until it is registered or swept. If an
// internal debit succeeds but the result cannot be stored, the total is credited back
// so that a retry does not charge the payer twice.
func (r *OrderRegistry) InitiatePayment(ctx context.Context, orderID kernel.UUID, method payment.Method) (order.Status, error) {
	if method == payment.Unspecified {
		return order.Unknown, ErrMissingPaymentMethod
	}

	unlock := r.locks.Lock(orderID)
	defer unlock()

	entry, err := r.pool.Get(ctx, orderID)
	if err != nil {
		return order.Unknown, err
	}
	o := entry.Order
	if entry.Registered {
		return order.Validated, nil
	}
	if entry.Dropped {
		return o.Status(), nil
	}

	if r.isExpired(entry) {
		if err := r.expire(ctx, entry); err != nil {
			return order.Unknown, err
		}
		return order.Canceled, nil
	}

	if o.Status().IsTerminal() {
		return o.Status(), nil
	}

	processor, err := r.selector.Select(method)
	if err != nil {
		return order.Unknown, err
	}

	status, err := processor.UpdatePaymentStatus(ctx, o)
	if err != nil {
		return order.Unknown, err
	}
	if err := o.ApplySettlement(status); err != nil {
		return order.Unknown, err
	}
	if err := r.pool.Update(ctx, o); err != nil {
		err = fmt.Errorf("store settlement: %w", err)
		if method == payment.Internal && status == order.Validated {
			err = errors.Join(err, r.refund(ctx, o))
		}
		return order.Unknown, err
	}

	if status == order.Canceled {
		r.recordCancellation(ctx, o, ReasonSettlementDeclined, "method", method.String())
	} else {
		r.logger.InfoContext(ctx, "Order settled",
			"order_id", o.ID().String(), "method", method.String())
	}
	return status, nil
}

// RegisterOrder promotes a Validated order to the registered pool.
// It returns false, changing nothing, for any other status.
func (r *OrderRegistry) RegisterOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	unlock := r.locks.Lock(orderID)
	defer unlock()

	entry, err := r.pool.Get(ctx, orderID)
	if err != nil {
		return false, err
	}
	if entry.Registered {
		return true, nil
	}
	if entry.Dropped || entry.Order.Status() != order.Validated {
		return false, nil
	}

	if err := r.pool.Promote(ctx, entry.Order); err != nil {
		return false, fmt.Errorf("promote order: %w", err)
	}
	r.logger.InfoContext(ctx, "Order registered", "order_id", orderID.String())
	return true, nil
}

func (r *OrderRegistry) PendingOrders(ctx context.Context) ([]*order.Order, error) {
	entries, err := r.pool.Pending(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]*order.Order, 0, len(entries))
	for _, e := range entries {
		orders = append(orders, e.Order)
	}
	return orders, nil
}

func (r *OrderRegistry) RegisteredOrders(ctx context.Context) ([]*order.Order, error) {
	return r.pool.Registered(ctx)
}

// ExpirePending drops every pending order that outlived AdmissionTimeout without being
// Validated and returns how many were dropped.
func (r *OrderRegistry) ExpirePending(ctx context.Context) (int, error) {
	entries, err := r.pool.Pending(ctx)
	if err != nil {
		return 0, err
	}

	dropped := 0
	for _, candidate := range entries {
		if err := ctx.Err(); err != nil {
			return dropped, err
		}
		if !r.isExpired(candidate) {
			continue
		}

		ok, err := r.expireByID(ctx, candidate.Order.ID())
		if err != nil {
			return dropped, err
		}
		if ok {
			dropped++
		}
	}
	return dropped, nil
}

// expireByID re-reads the order under its lock, since a payment may have settled it
// after the sweep took its snapshot.
func (r *OrderRegistry) expireByID(ctx context.Context, id kernel.UUID) (bool, error) {
	unlock := r.locks.Lock(id)
	defer unlock()

	entry, err := r.pool.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !r.isExpired(entry) {
		return false, nil
	}
	return true, r.expire(ctx, entry)
}

func (r *OrderRegistry) isExpired(entry ports.PooledOrder) bool {
	if entry.Registered || entry.Dropped || entry.Order.Status() == order.Validated {
		return false
	}
	return r.clock.Now().Sub(entry.AdmittedAt) >= AdmissionTimeout
}

// expire must be called with the order lock held.
func (r *OrderRegistry) expire(ctx context.Context, entry ports.PooledOrder) error {
	o := entry.Order
	wasPending := o.Status() == order.Pending
	if wasPending {
		if err := o.Cancel(); err != nil {
			return err
		}
	}
	if err := r.pool.Drop(ctx, o); err != nil {
		return fmt.Errorf("drop order: %w", err)
	}

	if wasPending {
		r.recordCancellation(ctx, o, ReasonExpired, "admitted_at", entry.AdmittedAt)
	} else {
		r.logger.InfoContext(ctx, "Canceled order dropped", "order_id", o.ID().String())
	}
	return nil
}

// refund credits back the total of an internal settlement that could not be stored.
func (r *OrderRegistry) refund(ctx context.Context, o *order.Order) error {
	if err := r.accounts.Credit(ctx, o.Payer(), o.Total()); err != nil {
		r.logger.ErrorContext(ctx, "Refund failed",
			"order_id", o.ID().String(), "payer_id", o.Payer().String(), "error", err)
		return fmt.Errorf("refund payer: %w", err)
	}
	r.logger.WarnContext(ctx, "Unstored settlement refunded",
		"order_id", o.ID().String(), "amount", o.Total().String())
	return nil
}

func (r *OrderRegistry) recordCancellation(ctx context.Context, o *order.Order, reason string, attrs ...any) {
	args := append([]any{"order_id", o.ID().String(), "reason", reason}, attrs...)
	r.logger.InfoContext(ctx, "Order canceled", args...)
	if r.cancellations != nil {
		r.cancellations.OrderCanceled(reason)
	}
}
