package handler

import (
	"errors"
	"fmt"
	"userctl/internal/cli/payload"
	"userctl/internal/core"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type UserHandler struct {
	logs    *zap.SugaredLogger
	connect Connector
	service UserService
	release func() error
}

// NewUserHandler returns a handler that opens the store through connect the
// first time a command needs it.
func NewUserHandler(logger *zap.SugaredLogger, connect Connector) *UserHandler {
	return &UserHandler{
		logs:    logger,
		connect: connect,
	}
}

func (h *UserHandler) open() error {
	if h.service != nil {
		return nil
	}

	service, release, err := h.connect()
	if err != nil {
		h.logs.Errorw("failed to open store", "error", err)
		return fmt.Errorf("open store: %w", err)
	}

	h.service = service
	h.release = release
	return nil
}

// Close releases the store if a command opened it.
func (h *UserHandler) Close() error {
	if h.release == nil {
		return nil
	}

	release := h.release
	h.service, h.release = nil, nil
	return release()
}

func (h *UserHandler) HandleInitialize(cmd *cobra.Command, args []string) error {
	seed, err := h.service.Initialize(cmd.Context())
	if err != nil {
		h.logs.Errorw("failed to initialize database", "error", err, "command", Initialize)
		return fmt.Errorf("initialize: %w", err)
	}

	h.logs.Infow("database initialized", "seed_id", seed.ID, "command", Initialize)
	h.print(cmd, msgInitialized)
	return nil
}

func (h *UserHandler) HandleGetUser(cmd *cobra.Command, args []string) error {
	req := payload.NewGetUserArgs(args)

	user, err := h.service.GetUser(cmd.Context(), req.Username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.print(cmd, fmt.Sprintf(msgUserNotFound, req.Username))
			return nil
		}
		h.logs.Errorw("failed to get user", "error", err, "command", GetUser)
		return fmt.Errorf("get user: %w", err)
	}

	h.print(cmd, user.String())
	return nil
}

func (h *UserHandler) HandleGetAllUsers(cmd *cobra.Command, args []string) error {
	users, err := h.service.GetAllUsers(cmd.Context())
	if err != nil {
		h.logs.Errorw("failed to get all users", "error", err, "command", GetAllUsers)
		return fmt.Errorf("get all users: %w", err)
	}

	if len(users) == 0 {
		h.print(cmd, msgNoUsers)
		return nil
	}

	for _, user := range users {
		h.print(cmd, user.String())
	}
	return nil
}

func (h *UserHandler) HandleChangeEmail(cmd *cobra.Command, args []string) error {
	req := payload.NewChangeEmailArgs(args)

	user, err := h.service.ChangeEmail(cmd.Context(), req.Username, req.NewEmail)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.print(cmd, fmt.Sprintf(msgEmailNotChanged, req.Username))
			return nil
		}
		h.logs.Errorw("failed to change email", "error", err, "command", ChangeEmail)
		return fmt.Errorf("change email: %w", err)
	}

	h.print(cmd, fmt.Sprintf(msgEmailChanged, user.Username, user.Email))
	return nil
}

func (h *UserHandler) HandleCreateUser(cmd *cobra.Command, args []string) error {
	req := payload.NewCreateUserArgs(args)
	if err := req.Validate(); err != nil {
		h.invalid(cmd, CreateUser, err)
		return nil
	}

	user, err := h.service.CreateUser(cmd.Context(), req.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserExists) {
			h.print(cmd, fmt.Sprintf(msgUserExists, req.Username))
			return nil
		}
		h.logs.Errorw("failed to create user", "error", err, "command", CreateUser)
		return fmt.Errorf("create user: %w", err)
	}

	h.print(cmd, user.String())
	return nil
}

func (h *UserHandler) HandleDeleteUser(cmd *cobra.Command, args []string) error {
	req := payload.NewDeleteUserArgs(args)

	err := h.service.DeleteUser(cmd.Context(), req.Username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.print(cmd, fmt.Sprintf(msgUserNotDeleted, req.Username))
			return nil
		}
		h.logs.Errorw("failed to delete user", "error", err, "command", DeleteUser)
		return fmt.Errorf("delete user: %w", err)
	}

	h.print(cmd, fmt.Sprintf(msgUserDeleted, req.Username))
	return nil
}

func (h *UserHandler) invalid(cmd *cobra.Command, name string, err error) {
	h.logs.Infow("invalid command arguments", "error", err, "command", name)
	h.print(cmd, fmt.Sprintf(msgInvalidArgs, err))
}

func (h *UserHandler) print(cmd *cobra.Command, line string) {
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
