package cmd

import (
	"userctl/internal/cli/handler"
	"userctl/internal/config"
	"userctl/internal/core"
	"userctl/internal/db"
	"userctl/internal/repository"
	"userctl/pkg/log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Execute wires the application and runs the command named on the command line.
func Execute() error {
	// a missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	config, err := config.NewApp()
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}

	logger := log.NewZapLogger("userctl", level).With("run_id", uuid.NewString())
	defer logger.Sync()

	// the database is opened only once a user command has been parsed
	connect := func() (handler.UserService, func() error, error) {
		dbConn, err := db.Open(config.DBDriver, config.DBConnectionURL, logger)
		if err != nil {
			return nil, nil, err
		}

		// repository
		repo := repository.NewUserRepository(dbConn)

		// user manager
		return core.NewUserManager(logger, repo), dbConn.Close, nil
	}

	// handler
	userHdlr := handler.NewUserHandler(logger, connect)
	defer func() {
		if err := userHdlr.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	return handler.NewRootCommand(userHdlr).Execute()
}
