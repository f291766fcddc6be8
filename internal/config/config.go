package config

import (
	"fmt"
	"os"

	"github.com/jellydator/validation"
)

const (
	dbDriverEnvKey = "DB_DRIVER"
	dbConnEnvKey   = "DB_CONNECTION_URL"
	logLevelEnvKey = "LOG_LEVEL"
)

const (
	defaultDBDriver = "sqlite"
	defaultDBConn   = "users.db"
	defaultLogLevel = "warn"
)

type App struct {
	DBDriver        string
	DBConnectionURL string
	LogLevel        string
}

// NewApp reads the application settings from the environment, falling back
// to a local sqlite file when nothing is configured.
func NewApp() (App, error) {
	app := App{
		DBDriver:        lookupEnv(dbDriverEnvKey, defaultDBDriver),
		DBConnectionURL: lookupEnv(dbConnEnvKey, defaultDBConn),
		LogLevel:        lookupEnv(logLevelEnvKey, defaultLogLevel),
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.DBDriver, validation.Required, validation.In("postgres", "sqlite")),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

func lookupEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
