package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"campusfood/internal/adapters/out/postgres"
	"campusfood/internal/adapters/out/settlement"
	"campusfood/internal/jobs"
	"campusfood/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	defaultHTTPPort = "8080"
)

type Config struct {
	HTTPPort              string
	Storage               string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	SettlementSuccessRate float64
	ExpirySweepSchedule   string
}

// ConfigFromEnv reads the configuration through getenv, applying defaults for
// HTTP_PORT, STORAGE, SETTLEMENT_SUCCESS_RATE and EXPIRY_SWEEP_SCHEDULE.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:              withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		Storage:               withDefault(getenv("STORAGE"), StorageMemory),
		DBHost:                getenv("DB_HOST"),
		DBPort:                getenv("DB_PORT"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             withDefault(getenv("DB_SSLMODE"), "disable"),
		SettlementSuccessRate: settlement.DefaultSuccessRate,
		ExpirySweepSchedule:   withDefault(getenv("EXPIRY_SWEEP_SCHEDULE"), jobs.DefaultExpirySchedule),
	}

	if raw := getenv("SETTLEMENT_SUCCESS_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("SETTLEMENT_SUCCESS_RATE", err)
		}
		cfg.SettlementSuccessRate = rate
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errPort, errStorage, errRate, errSchedule error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errPort = errs.NewValueIsInvalidError("HTTP_PORT")
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		errStorage = errors.Join(required("DB_HOST", c.DBHost), required("DB_NAME", c.DBName))
	default:
		errStorage = errs.NewValueIsInvalidErrorWithCause("STORAGE",
			fmt.Errorf("%q is neither %s nor %s", c.Storage, StorageMemory, StoragePostgres))
	}

	if c.SettlementSuccessRate < 0 || c.SettlementSuccessRate > 1 {
		errRate = errs.NewValueIsOutOfRangeError("SETTLEMENT_SUCCESS_RATE", c.SettlementSuccessRate, 0, 1)
	}

	if _, err := cron.ParseStandard(c.ExpirySweepSchedule); err != nil {
		errSchedule = errs.NewValueIsInvalidErrorWithCause("EXPIRY_SWEEP_SCHEDULE", err)
	}

	return errors.Join(errPort, errStorage, errRate, errSchedule)
}

func (c Config) Database() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
