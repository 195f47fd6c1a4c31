package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scriptedGateway replays outcomes in order and fails once the script runs out.
type scriptedGateway struct {
	mu       sync.Mutex
	outcomes []bool
	calls    int
}

func (g *scriptedGateway) Attempt(_ context.Context, _ *order.Order) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.calls <= len(g.outcomes) {
		return g.outcomes[g.calls-1]
	}
	return false
}

func (g *scriptedGateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type MockAccountDirectory struct{ mock.Mock }

func (m *MockAccountDirectory) HasDeliveryTarget(ctx context.Context, payer, target kernel.UUID) (bool, error) {
	args := m.Called(ctx, payer, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountDirectory) Balance(ctx context.Context, payer kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, payer)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockAccountDirectory) Debit(ctx context.Context, payer kernel.UUID, amount kernel.Money) (bool, error) {
	args := m.Called(ctx, payer, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountDirectory) Credit(ctx context.Context, payer kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, payer, amount)
	return args.Error(0)
}

func (m *MockAccountDirectory) PaymentCard(ctx context.Context, payer kernel.UUID) (account.Card, error) {
	args := m.Called(ctx, payer)
	return args.Get(0).(account.Card), args.Error(1)
}

func newOrder(t testing.TB, prices ...string) *order.Order {
	if len(prices) == 0 {
		prices = []string{"15.50", "12.00"}
	}
	items := make([]order.Item, 0, len(prices))
	total := kernel.ZeroMoney()
	for _, p := range prices {
		item, err := order.NewItem("Dish "+p, kernel.MustMoney(p))
		require.NoError(t, err)
		items = append(items, item)
		total = total.Add(item.Price())
	}

	o, err := order.NewOrder(order.Params{
		ID:             kernel.NewUUID(),
		Payer:          kernel.NewUUID(),
		Restaurant:     kernel.NewUUID(),
		DeliveryTarget: kernel.NewUUID(),
		Items:          items,
		Total:          total,
		CreatedAt:      time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}
