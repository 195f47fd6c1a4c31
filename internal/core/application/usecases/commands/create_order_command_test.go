package commands_test

import (
	"testing"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func padThai(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem("Pad thai", kernel.MustMoney("15.50"))
	require.NoError(t, err)
	return item
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	payer, restaurant, dorm := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	item := padThai(t)

	cmd, err := commands.NewCreateOrderCommand(payer, restaurant, dorm, []order.Item{item})

	require.NoError(t, err)
	assert.Equal(t, payer, cmd.Payer())
	assert.Equal(t, restaurant, cmd.Restaurant())
	assert.Equal(t, dorm, cmd.DeliveryTarget())
	assert.Equal(t, []order.Item{item}, cmd.Items())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidParties(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), []order.Item{padThai(t)})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "payer")
	assert.Contains(t, err.Error(), "restaurant")
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)

	require.ErrorIs(t, err, order.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_UnconstructedItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{{}})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[0]")
}

func TestCreateOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
