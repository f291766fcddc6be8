package payload

import (
	"userctl/internal/core"

	"github.com/jellydator/validation"
)

// Lookups (get, change email, delete) take the username as given so that
// any name absent from the store is reported as not found.

type GetUserArgs struct {
	Username string `json:"username"`
}

func NewGetUserArgs(args []string) GetUserArgs {
	return GetUserArgs{Username: args[0]}
}

type ChangeEmailArgs struct {
	Username string `json:"username"`
	NewEmail string `json:"new_email"`
}

func NewChangeEmailArgs(args []string) ChangeEmailArgs {
	return ChangeEmailArgs{Username: args[0], NewEmail: args[1]}
}

type CreateUserArgs struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewCreateUserArgs(args []string) CreateUserArgs {
	return CreateUserArgs{Username: args[0], Email: args[1], Password: args[2]}
}

// Validate mirrors the users.username column: required, varchar(255)
// counted in characters.
func (a CreateUserArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.RuneLength(1, 255)),
	)
}

func (a CreateUserArgs) ToMessage() core.NewUserMessage {
	return core.NewUserMessage{
		Username: a.Username,
		Email:    a.Email,
		Password: a.Password,
	}
}

type DeleteUserArgs struct {
	Username string `json:"username"`
}

func NewDeleteUserArgs(args []string) DeleteUserArgs {
	return DeleteUserArgs{Username: args[0]}
}
