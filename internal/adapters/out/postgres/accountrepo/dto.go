// Package accountrepo stores payer accounts in PostgreSQL. Delivery targets are kept in a
// text[] column.
package accountrepo

import (
	"time"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type AccountDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Balance         decimal.Decimal `gorm:"type:numeric(12,2);not null;check:balance >= 0"`
	CardNumber      string          `gorm:"type:varchar(19);not null"`
	CardExpiryYear  int             `gorm:"type:int;not null"`
	CardExpiryMonth int             `gorm:"type:smallint;not null"`
	DeliveryTargets pq.StringArray  `gorm:"type:text[]"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	targets := a.DeliveryTargets()
	raw := make(pq.StringArray, 0, len(targets))
	for _, t := range targets {
		raw = append(raw, t.String())
	}

	card := a.Card()
	return AccountDTO{
		ID:              a.ID().Bytes(),
		Name:            a.Name(),
		Balance:         a.Balance().Decimal(),
		CardNumber:      card.Number(),
		CardExpiryYear:  card.ExpiryYear(),
		CardExpiryMonth: int(card.ExpiryMonth()),
		DeliveryTargets: raw,
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	targets := make([]kernel.UUID, 0, len(dto.DeliveryTargets))
	for _, s := range dto.DeliveryTargets {
		t, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	card, err := toCard(dto)
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	return account.NewAccount(account.Params{
		ID:              id,
		Name:            dto.Name,
		Balance:         &balance,
		Card:            card,
		DeliveryTargets: targets,
	})
}

func toCard(dto AccountDTO) (account.Card, error) {
	return account.NewCard(dto.CardNumber, dto.CardExpiryYear, time.Month(dto.CardExpiryMonth))
}
