// Package account models the payer side of an order: balance, stored card and the
// delivery targets the payer has saved.
package account

import (
	"errors"
	"slices"
	"strings"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
)

var (
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
	ErrNameIsRequired          = errs.NewValueIsRequiredError("account name")
)

// DefaultBalance is granted to student accounts created without an explicit balance.
var DefaultBalance = kernel.MustMoney("30.00")

// Params carries the fields of an account. Balance defaults to DefaultBalance when nil.
type Params struct {
	ID              kernel.UUID
	Name            string
	Balance         *kernel.Money
	Card            Card
	DeliveryTargets []kernel.UUID
}

// Account is a payer known to the account directory.
//
// The balance never goes negative: Debit refuses amounts larger than the balance.
// Account is not safe for concurrent mutation; directories guard it.
type Account struct {
	id              kernel.UUID
	name            string
	balance         kernel.Money
	card            Card
	deliveryTargets []kernel.UUID

	isConstructed bool
}

func NewAccount(p Params) (*Account, error) {
	a := &Account{
		balance:       DefaultBalance,
		isConstructed: true,
	}
	if p.Balance != nil {
		a.balance = *p.Balance
	}

	if err := errors.Join(
		a.setID(p.ID),
		a.setName(p.Name),
		a.setCard(p.Card),
		a.setDeliveryTargets(p.DeliveryTargets),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Balance() kernel.Money {
	return a.balance
}

func (a *Account) Card() Card {
	return a.card
}

// DeliveryTargets returns a copy of the saved delivery target ids.
func (a *Account) DeliveryTargets() []kernel.UUID {
	return slices.Clone(a.deliveryTargets)
}

// HasDeliveryTarget reports whether target is one of the payer's saved delivery targets.
func (a *Account) HasDeliveryTarget(target kernel.UUID) bool {
	return slices.ContainsFunc(a.deliveryTargets, target.IsEqual)
}

// AddDeliveryTarget saves target; adding a known target is a no-op.
func (a *Account) AddDeliveryTarget(target kernel.UUID) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !a.HasDeliveryTarget(target) {
		a.deliveryTargets = append(a.deliveryTargets, target)
	}
	return nil
}

// Debit withdraws amount if the balance covers it and reports whether it did.
func (a *Account) Debit(amount kernel.Money) bool {
	rest, err := a.balance.Sub(amount)
	if err != nil {
		return false
	}
	a.balance = rest
	return true
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount kernel.Money) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setCard(card Card) error {
	if err := card.Validate(); err != nil {
		return err
	}
	a.card = card
	return nil
}

func (a *Account) setDeliveryTargets(targets []kernel.UUID) error {
	for _, target := range targets {
		if err := a.AddDeliveryTarget(target); err != nil {
			return err
		}
	}
	return nil
}
