package order

import (
	"errors"
	"strings"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	ErrItemNameIsRequired   = errs.NewValueIsRequiredError("item name")
)

// Item is one ordered dish with the price it had when the order was placed.
type Item struct {
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewItem builds an item. Surrounding whitespace is trimmed from the name; a blank name
// is rejected. A zero price is allowed for complimentary items.
func NewItem(name string, price kernel.Money) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrItemNameIsRequired
	}

	return Item{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the item was built through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}
