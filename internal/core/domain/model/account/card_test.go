package account_test

import (
	"testing"
	"time"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Run("should strip spaces from number", func(t *testing.T) {
		c, err := account.NewCard("4111 1111 1111 1234", 2030, time.May)

		require.NoError(t, err)
		assert.Equal(t, "4111111111111234", c.Number())
		assert.Equal(t, "1234", c.LastFour())
		assert.NoError(t, c.Validate())
	})

	testCases := []struct {
		name   string
		number string
		year   int
		month  time.Month
		target error
	}{
		{"should require number", "", 2030, time.May, errs.ErrValueIsRequired},
		{"should reject letters", "4111abcd11111111", 2030, time.May, errs.ErrValueIsInvalid},
		{"should reject short numbers", "41111", 2030, time.May, errs.ErrValueIsOutOfRange},
		{"should reject month 13", "4111111111111111", 2030, 13, errs.ErrValueIsOutOfRange},
		{"should reject year 0", "4111111111111111", 0, time.May, errs.ErrValueIsInvalid},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := account.NewCard(tc.number, tc.year, tc.month)

			require.ErrorIs(t, err, tc.target)
		})
	}

	t.Run("should flag zero value card", func(t *testing.T) {
		require.ErrorIs(t, account.Card{}.Validate(), account.ErrCardIsNotConstructed)
	})
}

func TestCard_ExpiredAt(t *testing.T) {
	c, err := account.NewCard("4111111111111111", 2025, time.March)
	require.NoError(t, err)

	assert.False(t, c.ExpiredAt(time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)))
	assert.True(t, c.ExpiredAt(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, c.ExpiredAt(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}
