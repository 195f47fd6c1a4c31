package payment_test

import (
	"testing"

	"campusfood/internal/core/domain/model/payment"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	testCases := []struct {
		input    string
		expected payment.Method
	}{
		{"EXTERNAL", payment.External},
		{"external", payment.External},
		{" Internal ", payment.Internal},
		{"", payment.Unspecified},
	}

	for _, tc := range testCases {
		t.Run("should parse "+tc.input, func(t *testing.T) {
			m, err := payment.ParseMethod(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}

	t.Run("should reject unknown method", func(t *testing.T) {
		_, err := payment.ParseMethod("CRYPTO")

		require.ErrorIs(t, err, payment.ErrUnsupportedPaymentMethod)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"CRYPTO"`)
	})
}

func TestMethod_Validate(t *testing.T) {
	t.Run("should accept known methods", func(t *testing.T) {
		require.NoError(t, payment.External.Validate())
		require.NoError(t, payment.Internal.Validate())
	})

	t.Run("should reject unspecified and out of range", func(t *testing.T) {
		assert.Equal(t, payment.ErrUnsupportedPaymentMethod, payment.Unspecified.Validate())
		assert.Equal(t, payment.ErrUnsupportedPaymentMethod, payment.Method(9).Validate())
	})
}

func TestMethod_String(t *testing.T) {
	t.Run("should render names", func(t *testing.T) {
		assert.Equal(t, "EXTERNAL", payment.External.String())
		assert.Equal(t, "INTERNAL", payment.Internal.String())
		assert.Equal(t, "UNSPECIFIED", payment.Unspecified.String())
		assert.Equal(t, "Method(9)", payment.Method(9).String())
	})
}
