package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/clock"
	"campusfood/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderPool = (*GormOrderPool)(nil)

var activePools = []string{PoolPending, PoolRegistered}

// GormOrderPool implements ports.OrderPool on the orders and order_items tables.
type GormOrderPool struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewGormOrderPool creates a pool over db. The clock stamps registration times, which
// define the order of Registered.
func NewGormOrderPool(db *gorm.DB, c clock.Clock) *GormOrderPool {
	if c == nil {
		c = clock.System{}
	}
	return &GormOrderPool{db: db, clock: c}
}

// AddPending inserts the order and its items in one transaction.
func (r *GormOrderPool) AddPending(ctx context.Context, o *order.Order, admittedAt time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := fromDomain(o)
	dto.Pool = PoolPending
	dto.AdmittedAt = &admittedAt

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%s is already pooled", o.ID()))
	}
	return err
}

func (r *GormOrderPool) Get(ctx context.Context, id kernel.UUID) (ports.PooledOrder, error) {
	if err := id.Validate(); err != nil {
		return ports.PooledOrder{}, err
	}

	var dto OrderDTO
	err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.PooledOrder{}, errs.NewObjectNotFoundError("orderID", id)
	}
	if err != nil {
		return ports.PooledOrder{}, err
	}

	return toPooled(dto)
}

// Update writes the status of an order that is pending or registered.
func (r *GormOrderPool) Update(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND pool IN ?", o.ID().Bytes(), activePools).
		Update("status", o.Status().String())
	return affectedOne(result, o.ID())
}

func (r *GormOrderPool) Drop(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND pool = ?", o.ID().Bytes(), PoolPending).
		Updates(map[string]any{
			"status":      o.Status().String(),
			"pool":        PoolDropped,
			"admitted_at": nil,
		})
	return affectedOne(result, o.ID())
}

func (r *GormOrderPool) Promote(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		err := tx.Select("id", "pool").
			Where("pool IN ?", activePools).
			First(&dto, "id = ?", o.ID().Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("orderID", o.ID())
		}
		if err != nil {
			return err
		}
		if dto.Pool == PoolRegistered {
			return nil
		}

		return tx.Model(&OrderDTO{}).
			Where("id = ?", o.ID().Bytes()).
			Updates(map[string]any{
				"status":        o.Status().String(),
				"pool":          PoolRegistered,
				"admitted_at":   nil,
				"registered_at": r.clock.Now(),
			}).Error
	})
}

func (r *GormOrderPool) Pending(ctx context.Context) ([]ports.PooledOrder, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Where("pool = ?", PoolPending).
		Order("admitted_at, created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.PooledOrder, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toPooled(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *GormOrderPool) Registered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Where("pool = ?", PoolRegistered).
		Order("registered_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	out := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *GormOrderPool) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func toPooled(dto OrderDTO) (ports.PooledOrder, error) {
	o, err := toDomain(dto)
	if err != nil {
		return ports.PooledOrder{}, err
	}

	p := ports.PooledOrder{
		Order:      o,
		Registered: dto.Pool == PoolRegistered,
		Dropped:    dto.Pool == PoolDropped,
	}
	if dto.AdmittedAt != nil {
		p.AdmittedAt = *dto.AdmittedAt
	}
	return p, nil
}

func affectedOne(result *gorm.DB, id kernel.UUID) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", id)
	}
	return nil
}
