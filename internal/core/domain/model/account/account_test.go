package account_test

import (
	"testing"
	"time"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard(t *testing.T) account.Card {
	t.Helper()
	card, err := account.NewCard("4111 1111 1111 1111", 2027, time.June)
	require.NoError(t, err)
	return card
}

func TestNewCard(t *testing.T) {
	t.Run("should strip spaces", func(t *testing.T) {
		card := validCard(t)

		assert.Equal(t, "4111111111111111", card.Number())
		assert.Equal(t, "1111", card.LastFour())
		assert.Equal(t, 2027, card.ExpiryYear())
		assert.Equal(t, time.June, card.ExpiryMonth())
	})

	t.Run("should reject malformed cards", func(t *testing.T) {
		testCases := []struct {
			name     string
			number   string
			month    time.Month
			sentinel error
		}{
			{"empty number", "", time.May, errs.ErrValueIsRequired},
			{"letters", "4111-1111-1111", time.May, errs.ErrValueIsInvalid},
			{"too short", "4111", time.May, errs.ErrValueIsOutOfRange},
			{"bad month", "4111111111111111", 13, errs.ErrValueIsOutOfRange},
		}

		for _, tc := range testCases {
			t.Run("should reject "+tc.name, func(t *testing.T) {
				_, err := account.NewCard(tc.number, 2027, tc.month)

				require.ErrorIs(t, err, tc.sentinel)
			})
		}
	})
}

func TestCard_ExpiredAt(t *testing.T) {
	card, err := account.NewCard("4111111111111111", 2025, time.March)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		at      time.Time
		expired bool
	}{
		{"month before expiry", time.Date(2025, time.February, 28, 23, 0, 0, 0, time.UTC), false},
		{"last day of expiry month", time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC), false},
		{"month after expiry", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), true},
		{"next year", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range testCases {
		t.Run("should handle "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, card.ExpiredAt(tc.at))
		})
	}
}

func TestNewAccount(t *testing.T) {
	t.Run("should default balance to 30.00", func(t *testing.T) {
		a, err := account.NewAccount(account.Params{
			ID:   kernel.NewUUID(),
			Name: "Ada",
			Card: validCard(t),
		})

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "30.00", a.Balance().String())
	})

	t.Run("should honor explicit balance", func(t *testing.T) {
		balance := kernel.MustMoney("4.20")

		a, err := account.NewAccount(account.Params{
			ID:      kernel.NewUUID(),
			Name:    "Ada",
			Balance: &balance,
			Card:    validCard(t),
		})

		require.NoError(t, err)
		assert.Equal(t, "4.20", a.Balance().String())
	})

	t.Run("should deduplicate delivery targets", func(t *testing.T) {
		dorm := kernel.NewUUID()

		a, err := account.NewAccount(account.Params{
			ID:              kernel.NewUUID(),
			Name:            "Ada",
			Card:            validCard(t),
			DeliveryTargets: []kernel.UUID{dorm, dorm},
		})

		require.NoError(t, err)
		assert.Len(t, a.DeliveryTargets(), 1)
		assert.True(t, a.HasDeliveryTarget(dorm))
		assert.False(t, a.HasDeliveryTarget(kernel.NewUUID()))
	})

	t.Run("should report all invalid fields", func(t *testing.T) {
		_, err := account.NewAccount(account.Params{Name: " "})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, account.ErrNameIsRequired)
		require.ErrorIs(t, err, account.ErrCardIsNotConstructed)
	})
}

func TestAccount_Debit(t *testing.T) {
	newAccount := func(t *testing.T) *account.Account {
		a, err := account.NewAccount(account.Params{ID: kernel.NewUUID(), Name: "Ada", Card: validCard(t)})
		require.NoError(t, err)
		return a
	}

	t.Run("should debit when balance covers amount", func(t *testing.T) {
		a := newAccount(t)

		assert.True(t, a.Debit(kernel.MustMoney("27.50")))
		assert.Equal(t, "2.50", a.Balance().String())
	})

	t.Run("should debit exact balance", func(t *testing.T) {
		a := newAccount(t)

		assert.True(t, a.Debit(kernel.MustMoney("30")))
		assert.True(t, a.Balance().IsZero())
	})

	t.Run("should refuse amount above balance", func(t *testing.T) {
		a := newAccount(t)

		assert.False(t, a.Debit(kernel.MustMoney("30.01")))
		assert.Equal(t, "30.00", a.Balance().String())
	})

	t.Run("should credit back", func(t *testing.T) {
		a := newAccount(t)
		a.Credit(kernel.MustMoney("5"))

		assert.Equal(t, "35.00", a.Balance().String())
	})
}
