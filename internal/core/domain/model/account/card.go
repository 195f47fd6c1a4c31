package account

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrCardIsNotConstructed = errors.New("Card must be created via NewCard constructor")

// Card is the payer's stored bank card. Only the data needed by the settlement network
// is kept: the number and the expiry month.
type Card struct {
	number      string
	expiryYear  int
	expiryMonth time.Month
	guard       guard.ConstructorGuard
}

// NewCard validates a card number of 12 to 19 digits (spaces allowed) and an expiry month.
func NewCard(number string, expiryYear int, expiryMonth time.Month) (Card, error) {
	digits := strings.ReplaceAll(number, " ", "")

	var errNumber error
	switch {
	case digits == "":
		errNumber = errs.NewValueIsRequiredError("card number")
	case strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0:
		errNumber = errs.NewValueIsInvalidErrorWithCause("card number", errors.New("must contain digits only"))
	case len(digits) < 12 || len(digits) > 19:
		errNumber = errs.NewValueIsOutOfRangeError("card number length", len(digits), 12, 19)
	}

	var errMonth error
	if expiryMonth < time.January || expiryMonth > time.December {
		errMonth = errs.NewValueIsOutOfRangeError("expiry month", int(expiryMonth), 1, 12)
	}

	var errYear error
	if expiryYear < 1 {
		errYear = errs.NewValueIsInvalidErrorWithCause("expiry year", fmt.Errorf("%d is not a year", expiryYear))
	}

	if err := errors.Join(errNumber, errMonth, errYear); err != nil {
		return Card{}, err
	}

	return Card{
		number:      digits,
		expiryYear:  expiryYear,
		expiryMonth: expiryMonth,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c Card) Validate() error {
	return c.guard.Validate(ErrCardIsNotConstructed)
}

func (c Card) Number() string {
	return c.number
}

// LastFour returns the trailing four digits for logs and receipts.
func (c Card) LastFour() string {
	if len(c.number) < 4 {
		return c.number
	}
	return c.number[len(c.number)-4:]
}

func (c Card) ExpiryYear() int {
	return c.expiryYear
}

func (c Card) ExpiryMonth() time.Month {
	return c.expiryMonth
}

// ExpiredAt reports whether the card's expiry month lies strictly before the month of at.
// A card expiring in March is still usable throughout March.
func (c Card) ExpiredAt(at time.Time) bool {
	current := at.Year()*12 + int(at.Month())
	expiry := c.expiryYear*12 + int(c.expiryMonth)
	return expiry < current
}
