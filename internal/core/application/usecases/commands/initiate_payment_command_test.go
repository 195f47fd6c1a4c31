package commands_test

import (
	"errors"
	"testing"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitiatePaymentCommand(t *testing.T) {
	t.Run("should keep order and method", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewInitiatePaymentCommand(id, payment.External)

		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, payment.External, cmd.Method())
	})

	t.Run("should leave the method check to the registry", func(t *testing.T) {
		cmd, err := commands.NewInitiatePaymentCommand(kernel.NewUUID(), payment.Unspecified)

		require.NoError(t, err)
		assert.Equal(t, payment.Unspecified, cmd.Method())
	})

	t.Run("should require an order id", func(t *testing.T) {
		_, err := commands.NewInitiatePaymentCommand(kernel.UUID{}, payment.Internal)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestInitiatePaymentCommandHandler_Handle(t *testing.T) {
	t.Run("should return the settled status", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewInitiatePaymentCommand(id, payment.External)
		registry := new(MockOrderRegistry)
		registry.On("InitiatePayment", ctx, id, payment.External).Return(order.Validated, nil).Once()

		status, err := commands.NewInitiatePaymentCommandHandler(registry).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Validated, status)
		registry.AssertExpectations(t)
	})

	t.Run("should pass registry errors through", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewInitiatePaymentCommand(kernel.NewUUID(), payment.Internal)
		boom := errors.New("pool offline")
		registry := new(MockOrderRegistry)
		registry.On("InitiatePayment", ctx, cmd.OrderID(), payment.Internal).Return(order.Unknown, boom).Once()

		_, err := commands.NewInitiatePaymentCommandHandler(registry).Handle(ctx, cmd)

		require.ErrorIs(t, err, boom)
	})

	t.Run("should reject unconstructed commands", func(t *testing.T) {
		registry := new(MockOrderRegistry)

		_, err := commands.NewInitiatePaymentCommandHandler(registry).Handle(t.Context(), commands.InitiatePaymentCommand{})

		require.ErrorIs(t, err, commands.ErrInitiatePaymentCommandIsNotConstructed)
		registry.AssertNotCalled(t, "InitiatePayment")
	})
}
