package order

import (
	"fmt"

	"campusfood/internal/pkg/errs"
)

// Status is the settlement state of an order.
//
// State transitions:
//
//	Pending ──┬──> Validated   (settlement succeeded)
//	          └──> Canceled    (settlement failed or admission window expired)
//
// Validated and Canceled are terminal: no transition leaves them.
type Status int

const (
	// Unknown is the zero value and never a legal state.
	Unknown Status = iota

	// Pending is the initial state of every admitted order.
	Pending

	// Validated means a settlement attempt succeeded.
	Validated

	// Canceled means settlement was exhausted or the order expired before paying.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Validated: "VALIDATED",
		Canceled:  "CANCELED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is not a valid state
	return map[Status]string{
		Pending:   "PENDING",
		Validated: "VALIDATED",
		Canceled:  "CANCELED",
	}
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns PENDING, VALIDATED or CANCELED, and UNKNOWN for anything else.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus is the inverse of String for valid states. Matching is exact.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether s is Validated or Canceled.
func (s Status) IsTerminal() bool {
	return s == Validated || s == Canceled
}

// Settle applies a settlement outcome to a Pending status.
//
// Valid transitions:
//   - Pending -> Validated
//   - Pending -> Canceled
//
// The outcome itself must be Validated or Canceled.
func (s Status) Settle(outcome Status) (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to settle", s),
		)
	}
	if !outcome.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"settlement outcome is invalid",
			fmt.Errorf("%s is not a settlement outcome", outcome),
		)
	}
	return outcome, nil
}

// Cancel moves a Pending status to Canceled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return Canceled, nil
}
