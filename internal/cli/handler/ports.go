package handler

import (
	"context"
	"userctl/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	EnsureSchema() error
	Initialize(ctx context.Context) (core.UserRecord, error)
	GetUser(ctx context.Context, username string) (core.UserRecord, error)
	GetAllUsers(ctx context.Context) ([]core.UserRecord, error)
	ChangeEmail(ctx context.Context, username, email string) (core.UserRecord, error)
	CreateUser(ctx context.Context, msg core.NewUserMessage) (core.UserRecord, error)
	DeleteUser(ctx context.Context, username string) error
}

// Connector opens the store behind a UserService. The returned func releases it.
type Connector func() (UserService, func() error, error)
