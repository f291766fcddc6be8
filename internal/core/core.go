package core

import (
	"context"
	"errors"
	"fmt"
	"userctl/internal/repository"

	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")

// SeedUser is the single record written by Initialize.
var SeedUser = NewUserMessage{
	Username: "bob",
	Email:    "bob@mail.com",
	Password: "bobpass",
}

// UserManager implements the user management operations on top of the repository.
type UserManager struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewUserManager is a constructor function for the UserManager type.
func NewUserManager(logger *zap.SugaredLogger, repo Repository) *UserManager {
	return &UserManager{
		logs: logger,
		repo: repo,
	}
}

// EnsureSchema creates the users table if it does not exist yet.
func (m *UserManager) EnsureSchema() error {
	if err := m.repo.MigrateSchema(); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Initialize drops all data, recreates the schema and stores the seed user.
// The returned record carries the ID assigned by the database.
func (m *UserManager) Initialize(ctx context.Context) (UserRecord, error) {
	if err := m.repo.ResetSchema(); err != nil {
		return UserRecord{}, fmt.Errorf("reset schema: %w", err)
	}

	m.logs.Infow("schema recreated")

	seed := newUserModel(SeedUser)
	if err := m.repo.SeedUser(ctx, &seed); err != nil {
		return UserRecord{}, fmt.Errorf("seed user: %w", err)
	}

	m.logs.Infow("seed user stored", "username", seed.Username, "id", seed.ID)

	return toRecord(seed), nil
}

// GetUser looks a user up by exact username.
func (m *UserManager) GetUser(ctx context.Context, username string) (UserRecord, error) {
	user, err := m.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	return toRecord(user), nil
}

// GetAllUsers returns every stored user, or an empty slice.
func (m *UserManager) GetAllUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := m.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting all users: %w", err)
	}

	m.logs.Infow("users fetched from db", "count", len(users))

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = toRecord(u)
	}
	return records, nil
}

// ChangeEmail replaces the email of an existing user.
func (m *UserManager) ChangeEmail(ctx context.Context, username, email string) (UserRecord, error) {
	user, err := m.repo.ChangeEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("change email: %w", err)
	}

	m.logs.Infow("email updated", "username", username, "id", user.ID)

	return toRecord(user), nil
}

// CreateUser stores a new user. A taken username yields ErrUserExists and
// leaves the store unchanged.
func (m *UserManager) CreateUser(ctx context.Context, msg NewUserMessage) (UserRecord, error) {
	user := newUserModel(msg)
	if err := m.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			m.logs.Infow("username conflict", "username", msg.Username)
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	m.logs.Infow("user created", "username", user.Username, "id", user.ID)

	return toRecord(user), nil
}

// DeleteUser removes an existing user.
func (m *UserManager) DeleteUser(ctx context.Context, username string) error {
	if err := m.repo.DeleteUser(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	m.logs.Infow("user deleted", "username", username)
	return nil
}

func newUserModel(msg NewUserMessage) repository.User {
	return repository.User{
		Username: msg.Username,
		Email:    msg.Email,
		Password: msg.Password,
	}
}

func toRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
	}
}
