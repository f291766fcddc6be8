package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key value violates unique constraint")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type GormDB struct {
	db *gorm.DB
}

// Open connects to the database behind dsn using the named driver.
func Open(driver, dsn string, logs *zap.SugaredLogger) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	return New(dialector, NewLogger(logs))
}

// New opens a GormDB on an already configured dialector. Statements run only
// inside sessions, so gorm's implicit per-statement transaction is disabled.
func New(dialector gorm.Dialector, gormLogger logger.Interface) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// NewLogger routes gorm's statement log through zap. SQL traces are only
// emitted when the logger is at debug level.
func NewLogger(logs *zap.SugaredLogger) logger.Interface {
	level := logger.Warn
	if logs.Level().Enabled(zap.DebugLevel) {
		level = logger.Info
	}

	return logger.New(zap.NewStdLog(logs.Desugar()), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) DropModels(models ...any) error {
	err := f.db.Migrator().DropTable(models...)
	if err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	return nil
}

// NewSession returns a unit of work bound to ctx. No connection is taken
// until the first statement runs.
func (f *GormDB) NewSession(ctx context.Context) Session {
	return &gormSession{
		db: f.db.WithContext(ctx),
	}
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close sql db conn: %w", err)
	}

	return nil
}
