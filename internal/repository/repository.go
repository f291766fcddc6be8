package repository

import (
	"context"
	"errors"
	"fmt"
	"userctl/internal/db"
)

var (
	ErrUserNotFound error = errors.New("user not found")
	ErrUserExists   error = errors.New("user already exists")
)

// UserRepository runs every operation in its own session, which is closed
// before the method returns.
type UserRepository struct {
	db Database
}

func NewUserRepository(db Database) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) MigrateSchema() error {
	err := r.db.MigrateModels(&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// ResetSchema drops every table and recreates it empty.
func (r *UserRepository) ResetSchema() error {
	err := r.db.DropModels(&User{})
	if err != nil {
		return fmt.Errorf("drop table(s): %w", err)
	}

	return r.MigrateSchema()
}

// SeedUser persists user and reloads it so that the assigned ID is populated.
func (r *UserRepository) SeedUser(ctx context.Context, user *User) (err error) {
	session := r.db.NewSession(ctx)
	defer closeSession(session, &err)

	if err := session.Add(user); err != nil {
		return fmt.Errorf("add seed user: %w", err)
	}

	if err := session.Commit(); err != nil {
		return fmt.Errorf("commit seed user: %w", err)
	}

	if err := session.Reload(user); err != nil {
		return fmt.Errorf("reload seed user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUser(ctx context.Context, username string) (user User, err error) {
	session := r.db.NewSession(ctx)
	defer closeSession(session, &err)

	return getByUsername(session, username)
}

func (r *UserRepository) GetAllUsers(ctx context.Context) (users []User, err error) {
	session := r.db.NewSession(ctx)
	defer closeSession(session, &err)

	users = []User{}
	if err := session.GetAll(&users); err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	return users, nil
}

// CreateUser inserts user and commits. A username that is already taken
// rolls the transaction back and yields ErrUserExists.
func (r *UserRepository) CreateUser(ctx context.Context, user *User) (err error) {
	session := r.db.NewSession(ctx)
	defer closeSession(session, &err)

	if err := session.Add(user); err != nil {
		if !errors.Is(err, db.ErrDuplicateKey) {
			return fmt.Errorf("add user: %w", err)
		}

		if rbErr := session.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after conflict: %w", rbErr)
		}
		return ErrUserExists
	}

	if err := session.Commit(); err != nil {
		return fmt.Errorf("commit user: %w", err)
	}

	return nil
}

func (r *UserRepository) ChangeEmail(ctx context.Context, username, email string) (user User, err error) {
	session := r.db.NewSession(ctx)
	defer closeSession(session, &err)

	user, err = getByUsername(session, username)
	if err != nil {
		return User{}, err
	}

	if err := session.Update(&user, "email", email); err != nil {
		return User{}, fmt.Errorf("update email: %w", err)
	}

	if err := session.Commit(); err != nil {
		return User{}, fmt.Errorf("commit email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, username string) (err error) {
	session := r.db.NewSession(ctx)
	defer closeSession(session, &err)

	user, err := getByUsername(session, username)
	if err != nil {
		return err
	}

	if err := session.Delete(&user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := session.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	return nil
}

func getByUsername(session db.Session, username string) (User, error) {
	var user User

	err := session.GetOneBy("username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func closeSession(session db.Session, err *error) {
	errClose := session.Close()
	if *err == nil && errClose != nil {
		*err = fmt.Errorf("close session: %w", errClose)
	}
}
