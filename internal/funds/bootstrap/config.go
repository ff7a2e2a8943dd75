package bootstrap

import (
	"fmt"

	"github.com/Lexv0lk/funds-service/internal/pkg/database"
	"github.com/Lexv0lk/funds-service/internal/pkg/env"
)

const (
	LedgerStoragePostgres = "postgres"
	LedgerStorageMemory   = "memory"

	AuthorizationFromToken    = "token"
	AuthorizationFromDatabase = "database"
)

type FundsConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string

	LedgerStorage       string
	AuthorizationSource string

	KafkaBrokers []string
	KafkaTopic   string
}

func DefaultFundsConfig() FundsConfig {
	return FundsConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "funds_db",
			SSlEnabled: false,
		},
		HttpPort:            ":8080",
		LedgerStorage:       LedgerStoragePostgres,
		AuthorizationSource: AuthorizationFromToken,
	}
}

// LoadFundsConfig starts from the defaults and overrides them from the
// process environment.
func LoadFundsConfig() FundsConfig {
	cfg := DefaultFundsConfig()

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)

	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSLEnabled, &cfg.DbSettings.SSlEnabled)

	env.TrySetFromEnv(env.EnvLedgerStorage, &cfg.LedgerStorage)
	env.TrySetFromEnv(env.EnvAuthorizationSource, &cfg.AuthorizationSource)

	env.TrySetListFromEnv(env.EnvKafkaBrokers, &cfg.KafkaBrokers)
	env.TrySetFromEnv(env.EnvKafkaTopic, &cfg.KafkaTopic)

	return cfg
}

func (c FundsConfig) Validate() error {
	if c.JwtSecret == "" {
		return fmt.Errorf("%s is not set", env.EnvJwtSecret)
	}

	switch c.LedgerStorage {
	case LedgerStoragePostgres, LedgerStorageMemory:
	default:
		return fmt.Errorf("unknown ledger storage %q", c.LedgerStorage)
	}

	switch c.AuthorizationSource {
	case AuthorizationFromToken, AuthorizationFromDatabase:
	default:
		return fmt.Errorf("unknown authorization source %q", c.AuthorizationSource)
	}

	return nil
}
