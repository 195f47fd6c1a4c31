package commands_test

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/payment"

	"github.com/stretchr/testify/mock"
)

type MockOrderRegistry struct{ mock.Mock }

func (m *MockOrderRegistry) CreateOrder(
	ctx context.Context,
	items []order.Item,
	payer, deliveryTarget, restaurant kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, items, payer, deliveryTarget, restaurant)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRegistry) InitiatePayment(
	ctx context.Context,
	orderID kernel.UUID,
	method payment.Method,
) (order.Status, error) {
	args := m.Called(ctx, orderID, method)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderRegistry) RegisterOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}
