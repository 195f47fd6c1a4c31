package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type NewOrder struct {
	PayerID          string    `json:"payerId"`
	RestaurantID     string    `json:"restaurantId"`
	DeliveryTargetID string    `json:"deliveryTargetId"`
	Items            []NewItem `json:"items"`
}

type CreatedOrder struct {
	ID        string    `json:"id"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaymentRequest struct {
	Method string `json:"method"`
}

type PaymentResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Order struct {
	ID               string    `json:"id"`
	PayerID          string    `json:"payerId"`
	RestaurantID     string    `json:"restaurantId"`
	DeliveryTargetID string    `json:"deliveryTargetId"`
	Total            string    `json:"total"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}
