// Package payment defines how an order is paid for.
package payment

import (
	"fmt"
	"strings"

	"campusfood/internal/pkg/errs"
)

// ErrUnsupportedPaymentMethod is returned for any method other than External or Internal.
var ErrUnsupportedPaymentMethod = errs.NewValueIsInvalidError("payment method is not supported")

// Method selects the settlement strategy for an order.
type Method int

const (
	// Unspecified is the zero value and means no method was supplied.
	Unspecified Method = iota

	// External settles through the external settlement network.
	External

	// Internal deducts the order total from the payer's stored balance.
	Internal
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		Unspecified: "UNSPECIFIED",
		External:    "EXTERNAL",
		Internal:    "INTERNAL",
	}
}

// ParseMethod maps EXTERNAL or INTERNAL (case-insensitive) to a Method. An empty string
// yields Unspecified; any other text is unsupported.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return Unspecified, nil
	case "EXTERNAL":
		return External, nil
	case "INTERNAL":
		return Internal, nil
	default:
		return Unspecified, fmt.Errorf("%q: %w", s, ErrUnsupportedPaymentMethod)
	}
}

func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Validate rejects everything except External and Internal.
func (m Method) Validate() error {
	if m != External && m != Internal {
		return ErrUnsupportedPaymentMethod
	}
	return nil
}
