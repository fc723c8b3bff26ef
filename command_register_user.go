package accounts

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

const commandsLoggerName = "accounts.commands"

type RegisterUserMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Age      int    `json:"age"`
}

func (e RegisterUserMessage) Type() string { return "user.register" }

// Validate only checks the username. Password and age rules run inside the
// registry so the duplicate check keeps precedence.
func (e RegisterUserMessage) Validate() error {
	if err := validation.Validate(strings.TrimSpace(e.Username), validation.Required); err != nil {
		return ErrInvalidUsername
	}
	return nil
}

type RegisterUserHandler struct {
	registry Registry
	logger   Logger
	provider LoggerProvider
}

func NewRegisterUserHandler(registry Registry) *RegisterUserHandler {
	provider, logger := ResolveLogger(commandsLoggerName, nil, nil)
	return &RegisterUserHandler{
		registry: registry,
		logger:   logger,
		provider: provider,
	}
}

func (h *RegisterUserHandler) WithLogger(l Logger) *RegisterUserHandler {
	h.provider, h.logger = ResolveLogger(commandsLoggerName, h.provider, l)
	return h
}

// WithLoggerProvider overrides the logger provider used by the handler.
func (h *RegisterUserHandler) WithLoggerProvider(provider LoggerProvider) *RegisterUserHandler {
	h.provider, h.logger = ResolveLogger(commandsLoggerName, provider, h.logger)
	return h
}

func (h *RegisterUserHandler) Execute(ctx context.Context, event RegisterUserMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user registration",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RegisterUserHandler) execute(ctx context.Context, event RegisterUserMessage) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if err := h.registry.Register(ctx, event.Username, event.Password, event.Age); err != nil {
		h.logger.Info("register user rejected", "username", event.Username, "error", err)
		return err
	}

	return nil
}
