package queries

import (
	"errors"

	"campusfood/internal/pkg/guard"
)

var ErrGetRegisteredOrdersQueryIsNotConstructed = errors.New(
	"GetRegisteredOrdersQuery must be created via NewGetRegisteredOrdersQuery constructor",
)

// GetRegisteredOrdersQuery lists orders handed over for fulfillment, oldest registration first.
type GetRegisteredOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRegisteredOrdersQuery() GetRegisteredOrdersQuery {
	return GetRegisteredOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRegisteredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRegisteredOrdersQueryIsNotConstructed)
}
