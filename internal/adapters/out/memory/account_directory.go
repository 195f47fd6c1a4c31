package memory

import (
	"context"
	"fmt"
	"sync"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
)

var _ ports.AccountDirectory = (*AccountDirectory)(nil)

// AccountDirectory is an in-memory payer directory seeded with Add.
type AccountDirectory struct {
	mu       sync.Mutex
	accounts map[kernel.UUID]*account.Account
}

func NewAccountDirectory() *AccountDirectory {
	return &AccountDirectory{accounts: make(map[kernel.UUID]*account.Account)}
}

// Add registers a. The directory takes ownership of it.
func (d *AccountDirectory) Add(a *account.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.accounts[a.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("account", fmt.Errorf("%s already exists", a.ID()))
	}
	d.accounts[a.ID()] = a
	return nil
}

func (d *AccountDirectory) HasDeliveryTarget(_ context.Context, payer, target kernel.UUID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.lookup(payer)
	if err != nil {
		return false, err
	}
	return a.HasDeliveryTarget(target), nil
}

func (d *AccountDirectory) Balance(_ context.Context, payer kernel.UUID) (kernel.Money, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.lookup(payer)
	if err != nil {
		return kernel.Money{}, err
	}
	return a.Balance(), nil
}

func (d *AccountDirectory) Debit(_ context.Context, payer kernel.UUID, amount kernel.Money) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.lookup(payer)
	if err != nil {
		return false, err
	}
	return a.Debit(amount), nil
}

func (d *AccountDirectory) Credit(_ context.Context, payer kernel.UUID, amount kernel.Money) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.lookup(payer)
	if err != nil {
		return err
	}
	a.Credit(amount)
	return nil
}

func (d *AccountDirectory) PaymentCard(_ context.Context, payer kernel.UUID) (account.Card, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.lookup(payer)
	if err != nil {
		return account.Card{}, err
	}
	return a.Card(), nil
}

func (d *AccountDirectory) lookup(id kernel.UUID) (*account.Account, error) {
	a, ok := d.accounts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("payerID", id)
	}
	return a, nil
}
