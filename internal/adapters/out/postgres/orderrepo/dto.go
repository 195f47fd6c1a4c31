// Package orderrepo persists the order pools in PostgreSQL through GORM.
// One row per order carries its pool membership; items live in a child table.
package orderrepo

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pool values stored in OrderDTO.Pool.
const (
	PoolPending    = "pending"
	PoolRegistered = "registered"
	PoolDropped    = "dropped"
)

// OrderDTO is the orders row. Dropped orders keep their row with their final status
// but belong to no pool. Status holds Status.String.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryTargetID uuid.UUID       `gorm:"type:uuid;not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status           string          `gorm:"type:varchar(16);not null"`
	Pool             string          `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	AdmittedAt       *time.Time
	RegisteredAt     *time.Time
	Items            []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	ID       uint            `gorm:"primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position int             `gorm:"type:int;not null"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:  o.ID().Bytes(),
			Position: i,
			Name:     item.Name(),
			Price:    item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:               o.ID().Bytes(),
		PayerID:          o.Payer().Bytes(),
		RestaurantID:     o.Restaurant().Bytes(),
		DeliveryTargetID: o.DeliveryTarget().Bytes(),
		Total:            o.Total().Decimal(),
		Status:           o.Status().String(),
		CreatedAt:        o.CreatedAt(),
		Items:            dtos,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.PayerID, dto.RestaurantID, dto.DeliveryTargetID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		price, err := kernel.NewMoney(it.Price)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(it.Name, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Params{
		ID:             ids[0],
		Payer:          ids[1],
		Restaurant:     ids[2],
		DeliveryTarget: ids[3],
		Items:          items,
		Total:          total,
		CreatedAt:      dto.CreatedAt,
	}, status)
}
