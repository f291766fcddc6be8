package core

import (
	"context"
	"userctl/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	MigrateSchema() error
	ResetSchema() error
	SeedUser(ctx context.Context, user *repository.User) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	GetAllUsers(ctx context.Context) ([]repository.User, error)
	CreateUser(ctx context.Context, user *repository.User) error
	ChangeEmail(ctx context.Context, username, email string) (repository.User, error)
	DeleteUser(ctx context.Context, username string) error
}
