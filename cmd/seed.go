package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
)

// Delivery targets of the demo accounts.
var (
	DemoLibraryTarget   = kernel.MustUUIDFromString("5b0c1f0e-6a51-4c37-9d0e-3b8f2f6e1a01")
	DemoNorthDormTarget = kernel.MustUUIDFromString("5b0c1f0e-6a51-4c37-9d0e-3b8f2f6e1a02")
	DemoSouthDormTarget = kernel.MustUUIDFromString("5b0c1f0e-6a51-4c37-9d0e-3b8f2f6e1a03")
)

type demoAccount struct {
	id          string
	name        string
	balance     string
	cardNumber  string
	expiryYear  int
	expiryMonth time.Month
	targets     []kernel.UUID
}

func demoAccounts() []demoAccount {
	return []demoAccount{
		{
			id:          "8e7d4a52-0c3f-4f55-8a1b-6f0e2c9b7d01",
			name:        "Alice Martin",
			balance:     "120.00",
			cardNumber:  "4111111111111111",
			expiryYear:  2030,
			expiryMonth: time.June,
			targets:     []kernel.UUID{DemoLibraryTarget, DemoNorthDormTarget},
		},
		{
			id:          "8e7d4a52-0c3f-4f55-8a1b-6f0e2c9b7d02",
			name:        "Bilal Haddad",
			balance:     "8.50",
			cardNumber:  "5500000000000004",
			expiryYear:  2029,
			expiryMonth: time.February,
			targets:     []kernel.UUID{DemoSouthDormTarget},
		},
		{
			// expired card: every external attempt is declined
			id:          "8e7d4a52-0c3f-4f55-8a1b-6f0e2c9b7d03",
			name:        "Chen Li",
			balance:     "40.00",
			cardNumber:  "340000000000009",
			expiryYear:  2021,
			expiryMonth: time.December,
			targets:     []kernel.UUID{DemoLibraryTarget},
		},
	}
}

// SeedAccounts stores the demo payers through add. Accounts that already exist are skipped.
func SeedAccounts(ctx context.Context, add func(context.Context, *account.Account) error, logger *slog.Logger) error {
	for _, d := range demoAccounts() {
		card, err := account.NewCard(d.cardNumber, d.expiryYear, d.expiryMonth)
		if err != nil {
			return err
		}
		balance := kernel.MustMoney(d.balance)
		a, err := account.NewAccount(account.Params{
			ID:              kernel.MustUUIDFromString(d.id),
			Name:            d.name,
			Balance:         &balance,
			Card:            card,
			DeliveryTargets: d.targets,
		})
		if err != nil {
			return err
		}

		err = add(ctx, a)
		if errors.Is(err, errs.ErrValueIsInvalid) {
			logger.DebugContext(ctx, "Demo account already present", "account_id", d.id)
			continue
		}
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Demo account seeded", "account_id", d.id, "name", d.name)
	}
	return nil
}
