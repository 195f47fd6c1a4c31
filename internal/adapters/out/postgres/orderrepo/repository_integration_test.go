package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"campusfood/internal/adapters/out/postgres/orderrepo"
	"campusfood/internal/adapters/out/postgres/pgtest"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/clock"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderPoolIntegrationTestSuite checks GormOrderPool against a real PostgreSQL.
type OrderPoolIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	clock    *clock.Manual
	pool     *orderrepo.GormOrderPool
}

var admitted = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

func (suite *OrderPoolIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderPoolIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("order_items", "orders"))
	suite.clock = clock.NewManual(admitted)
	suite.pool = orderrepo.NewGormOrderPool(suite.database.DB, suite.clock)
}

func (suite *OrderPoolIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OrderPoolIntegrationTestSuite) TestAddPending_RoundTripsOrder() {
	ctx := context.Background()
	o := suite.newOrder("15.50", "12.00")

	suite.Require().NoError(suite.pool.AddPending(ctx, o, admitted))

	got, err := suite.pool.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.Order.IsEqual(o))
	suite.False(got.Registered)
	suite.True(got.AdmittedAt.Equal(admitted))
	suite.Equal(order.Pending, got.Order.Status())
	suite.Equal("27.50", got.Order.Total().String())
	suite.True(got.Order.Payer().IsEqual(o.Payer()))
	suite.True(got.Order.CreatedAt().Equal(o.CreatedAt()))

	items := got.Order.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Dish 15.50", items[0].Name())
	suite.Equal("12.00", items[1].Price().String())
}

func (suite *OrderPoolIntegrationTestSuite) TestAddPending_RejectsDuplicate() {
	ctx := context.Background()
	o := suite.newOrder("9.90")
	suite.Require().NoError(suite.pool.AddPending(ctx, o, admitted))

	err := suite.pool.AddPending(ctx, o, admitted)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderPoolIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	_, err := suite.pool.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderPoolIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	o := suite.newOrder("9.90")
	suite.Require().NoError(suite.pool.AddPending(ctx, o, admitted))
	suite.Require().NoError(o.ApplySettlement(order.Canceled))

	suite.Require().NoError(suite.pool.Update(ctx, o))

	got, err := suite.pool.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Canceled, got.Order.Status())
	suite.False(got.Registered)
}

func (suite *OrderPoolIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	err := suite.pool.Update(context.Background(), suite.newOrder("1.00"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderPoolIntegrationTestSuite) TestDrop_LeavesPoolsAndKeepsFinalStatus() {
	ctx := context.Background()
	o := suite.newOrder("9.90")
	suite.Require().NoError(suite.pool.AddPending(ctx, o, admitted))
	suite.Require().NoError(o.Cancel())

	suite.Require().NoError(suite.pool.Drop(ctx, o))

	got, err := suite.pool.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.Dropped)
	suite.False(got.Registered)
	suite.Equal(order.Canceled, got.Order.Status())
	suite.True(got.AdmittedAt.IsZero())

	pending, err := suite.pool.Pending(ctx)
	suite.Require().NoError(err)
	suite.Empty(pending)

	var row orderrepo.OrderDTO
	suite.Require().NoError(suite.database.DB.First(&row, "id = ?", o.ID().Bytes()).Error)
	suite.Equal(orderrepo.PoolDropped, row.Pool)
	suite.Equal("CANCELED", row.Status)
	suite.Nil(row.AdmittedAt)

	suite.Require().ErrorIs(suite.pool.Drop(ctx, o), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.pool.Update(ctx, o), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.pool.Promote(ctx, o), errs.ErrObjectNotFound)
}

func (suite *OrderPoolIntegrationTestSuite) TestGet_RejectsUnknownStoredStatus() {
	ctx := context.Background()
	o := suite.newOrder("9.90")
	suite.Require().NoError(suite.pool.AddPending(ctx, o, admitted))
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", o.ID().Bytes()).
		Update("status", "REFUNDED").Error)

	_, err := suite.pool.Get(ctx, o.ID())

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderPoolIntegrationTestSuite) TestPromote_MovesToRegisteredOnce() {
	ctx := context.Background()
	first, second := suite.newOrder("3.00"), suite.newOrder("4.00")
	suite.Require().NoError(suite.pool.AddPending(ctx, first, admitted))
	suite.Require().NoError(suite.pool.AddPending(ctx, second, admitted.Add(time.Second)))
	suite.Require().NoError(first.ApplySettlement(order.Validated))
	suite.Require().NoError(second.ApplySettlement(order.Validated))

	suite.Require().NoError(suite.pool.Promote(ctx, second))
	suite.clock.Advance(time.Minute)
	suite.Require().NoError(suite.pool.Promote(ctx, first))
	suite.clock.Advance(time.Minute)
	suite.Require().NoError(suite.pool.Promote(ctx, second))

	registered, err := suite.pool.Registered(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(registered, 2)
	suite.True(registered[0].IsEqual(second))
	suite.True(registered[1].IsEqual(first))
	suite.Equal(order.Validated, registered[0].Status())

	pending, err := suite.pool.Pending(ctx)
	suite.Require().NoError(err)
	suite.Empty(pending)

	got, err := suite.pool.Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.True(got.Registered)
	suite.True(got.AdmittedAt.IsZero())
	suite.Require().ErrorIs(suite.pool.Drop(ctx, first), errs.ErrObjectNotFound)
}

func (suite *OrderPoolIntegrationTestSuite) TestPending_ListsInAdmissionOrder() {
	ctx := context.Background()
	late, early := suite.newOrder("2.00"), suite.newOrder("1.00")
	suite.Require().NoError(suite.pool.AddPending(ctx, late, admitted.Add(time.Minute)))
	suite.Require().NoError(suite.pool.AddPending(ctx, early, admitted))

	pending, err := suite.pool.Pending(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].Order.IsEqual(early))
	suite.True(pending[1].Order.IsEqual(late))
	suite.True(pending[1].AdmittedAt.Equal(admitted.Add(time.Minute)))
}

func (suite *OrderPoolIntegrationTestSuite) newOrder(prices ...string) *order.Order {
	items := make([]order.Item, 0, len(prices))
	total := kernel.ZeroMoney()
	for _, p := range prices {
		item, err := order.NewItem("Dish "+p, kernel.MustMoney(p))
		suite.Require().NoError(err)
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
		CreatedAt:      admitted,
	})
	suite.Require().NoError(err)
	return o
}

func TestOrderPoolIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderPoolIntegrationTestSuite))
}
