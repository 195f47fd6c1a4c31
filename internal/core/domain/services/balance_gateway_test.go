package services_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBalanceGateway_Attempt(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should debit order total from payer", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, "15.50", "12.00")
		accounts := new(MockAccountDirectory)
		accounts.On("Balance", ctx, o.Payer()).Return(kernel.MustMoney("27.50"), nil).Once()
		accounts.On("Debit", ctx, o.Payer(), o.Total()).Return(true, nil).Once()

		ok := services.NewBalanceGateway(accounts, logger).Attempt(ctx, o)

		assert.True(t, ok)
		accounts.AssertExpectations(t)
	})

	t.Run("should skip the debit when the balance falls short", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, "45.00")
		accounts := new(MockAccountDirectory)
		accounts.On("Balance", ctx, o.Payer()).Return(kernel.MustMoney("44.99"), nil).Once()

		assert.False(t, services.NewBalanceGateway(accounts, logger).Attempt(ctx, o))
		accounts.AssertExpectations(t)
		accounts.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail when the balance is spent before the debit", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, "45.00")
		accounts := new(MockAccountDirectory)
		accounts.On("Balance", ctx, o.Payer()).Return(kernel.MustMoney("50.00"), nil).Once()
		accounts.On("Debit", ctx, o.Payer(), o.Total()).Return(false, nil).Once()

		assert.False(t, services.NewBalanceGateway(accounts, logger).Attempt(ctx, o))
		accounts.AssertExpectations(t)
	})

	t.Run("should fail when the balance lookup errors", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t)
		accounts := new(MockAccountDirectory)
		accounts.On("Balance", ctx, o.Payer()).Return(kernel.Money{}, errors.New("directory down")).Once()

		assert.False(t, services.NewBalanceGateway(accounts, logger).Attempt(ctx, o))
		accounts.AssertExpectations(t)
		accounts.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail when the debit errors", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t)
		accounts := new(MockAccountDirectory)
		accounts.On("Balance", ctx, o.Payer()).Return(o.Total(), nil).Once()
		accounts.On("Debit", ctx, o.Payer(), mock.Anything).Return(false, errors.New("directory down")).Once()

		assert.False(t, services.NewBalanceGateway(accounts, logger).Attempt(ctx, o))
		accounts.AssertExpectations(t)
	})
}
