package repository

import (
	"context"
	"userctl/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateModels(models ...any) error
	DropModels(models ...any) error
	NewSession(ctx context.Context) db.Session
}
