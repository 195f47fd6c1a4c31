package commands_test

import (
	"testing"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterOrderCommand(t *testing.T) {
	t.Run("should keep order id", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewRegisterOrderCommand(id)

		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
	})

	t.Run("should require order id", func(t *testing.T) {
		_, err := commands.NewRegisterOrderCommand(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRegisterOrderCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name     string
		ok       bool
		err      error
		expected error
	}{
		{"should accept a validated order", true, nil, nil},
		{"should refuse an unpaid order", false, nil, commands.ErrOrderIsNotValidated},
		{"should pass lookup errors through", false, errs.NewObjectNotFoundError("orderID", "x"), errs.ErrObjectNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewRegisterOrderCommand(kernel.NewUUID())
			registry := new(MockOrderRegistry)
			registry.On("RegisterOrder", ctx, cmd.OrderID()).Return(tc.ok, tc.err).Once()

			err := commands.NewRegisterOrderCommandHandler(registry).Handle(ctx, cmd)

			if tc.expected == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.expected)
			}
			registry.AssertExpectations(t)
		})
	}
}
