package accountrepo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.AccountDirectory = (*GormAccountDirectory)(nil)

type GormAccountDirectory struct {
	db *gorm.DB
}

func NewGormAccountDirectory(db *gorm.DB) *GormAccountDirectory {
	return &GormAccountDirectory{db: db}
}

// Add inserts a, or fails with a ValueIsInvalidError when the ID is taken.
func (r *GormAccountDirectory) Add(ctx context.Context, a *account.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("account", fmt.Errorf("%s already exists", a.ID()))
	}
	return err
}

// Get loads the full account.
func (r *GormAccountDirectory) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	dto, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormAccountDirectory) HasDeliveryTarget(ctx context.Context, payer, target kernel.UUID) (bool, error) {
	dto, err := r.load(ctx, payer, "id", "delivery_targets")
	if err != nil {
		return false, err
	}
	return slices.Contains(dto.DeliveryTargets, target.String()), nil
}

func (r *GormAccountDirectory) Balance(ctx context.Context, payer kernel.UUID) (kernel.Money, error) {
	dto, err := r.load(ctx, payer, "id", "balance")
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(dto.Balance)
}

// Debit subtracts amount in a single conditional UPDATE, so concurrent debits can never
// overdraw the balance.
func (r *GormAccountDirectory) Debit(ctx context.Context, payer kernel.UUID, amount kernel.Money) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ? AND balance >= ?", payer.Bytes(), amount.Decimal()).
		Update("balance", gorm.Expr("balance - ?", amount.Decimal()))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	if _, err := r.load(ctx, payer, "id"); err != nil {
		return false, err
	}
	return false, nil
}

func (r *GormAccountDirectory) Credit(ctx context.Context, payer kernel.UUID, amount kernel.Money) error {
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ?", payer.Bytes()).
		Update("balance", gorm.Expr("balance + ?", amount.Decimal()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payerID", payer)
	}
	return nil
}

func (r *GormAccountDirectory) PaymentCard(ctx context.Context, payer kernel.UUID) (account.Card, error) {
	dto, err := r.load(ctx, payer, "id", "card_number", "card_expiry_year", "card_expiry_month")
	if err != nil {
		return account.Card{}, err
	}
	return toCard(dto)
}

func (r *GormAccountDirectory) load(ctx context.Context, id kernel.UUID, columns ...string) (AccountDTO, error) {
	if err := id.Validate(); err != nil {
		return AccountDTO{}, err
	}

	q := r.db.WithContext(ctx)
	if len(columns) > 0 {
		q = q.Select(columns)
	}

	var dto AccountDTO
	err := q.First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountDTO{}, errs.NewObjectNotFoundError("payerID", id)
	}
	return dto, err
}
