package handler

import (
	"github.com/spf13/cobra"
)

const (
	Initialize  = "initialize"
	GetUser     = "get-user"
	GetAllUsers = "get-all-users"
	ChangeEmail = "change-email"
	CreateUser  = "create-user"
	DeleteUser  = "delete-user"
)

type command struct {
	name  string
	usage string
	short string
	args  cobra.PositionalArgs
	run   func(cmd *cobra.Command, args []string) error
}

func (h *UserHandler) commands() []command {
	return []command{
		{Initialize, "", "Drop and recreate the schema, then store the seed user", cobra.NoArgs, h.HandleInitialize},
		{GetUser, "<username>", "Show the user with the given username", cobra.ExactArgs(1), h.HandleGetUser},
		{GetAllUsers, "", "List all users", cobra.NoArgs, h.HandleGetAllUsers},
		{ChangeEmail, "<username> <new_email>", "Change the email of a user", cobra.ExactArgs(2), h.HandleChangeEmail},
		{CreateUser, "<username> <email> <password>", "Create a new user", cobra.ExactArgs(3), h.HandleCreateUser},
		{DeleteUser, "<username>", "Delete a user", cobra.ExactArgs(1), h.HandleDeleteUser},
	}
}

// NewRootCommand builds the userctl command tree. The store is opened only
// for user commands; every one of them except initialize makes sure the
// schema exists before it runs.
func NewRootCommand(h *UserHandler) *cobra.Command {
	root := &cobra.Command{
		Use:           "userctl",
		Short:         "Manage user records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) {
				return nil
			}
			if err := h.open(); err != nil {
				return err
			}
			if cmd.Name() == Initialize {
				return nil
			}
			return h.service.EnsureSchema()
		},
	}

	for _, c := range h.commands() {
		use := c.name
		if c.usage != "" {
			use += " " + c.usage
		}
		root.AddCommand(&cobra.Command{
			Use:   use,
			Short: c.short,
			Args:  c.args,
			RunE:  c.run,
		})
	}

	return root
}

// needsStore reports false for cobra's built-in help and completion commands.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
