package accounts

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

type DeactivateUserMessage struct {
	Username string `json:"username"`
}

func (e DeactivateUserMessage) Type() string { return "user.deactivate" }

// DeactivateUserHandler disables an account. Unknown usernames are ignored.
type DeactivateUserHandler struct {
	registry Registry
	logger   Logger
	provider LoggerProvider
}

func NewDeactivateUserHandler(registry Registry) *DeactivateUserHandler {
	provider, logger := ResolveLogger(commandsLoggerName, nil, nil)
	return &DeactivateUserHandler{
		registry: registry,
		logger:   logger,
		provider: provider,
	}
}

func (h *DeactivateUserHandler) WithLogger(l Logger) *DeactivateUserHandler {
	h.provider, h.logger = ResolveLogger(commandsLoggerName, h.provider, l)
	return h
}

// WithLoggerProvider overrides the logger provider used by the handler.
func (h *DeactivateUserHandler) WithLoggerProvider(provider LoggerProvider) *DeactivateUserHandler {
	h.provider, h.logger = ResolveLogger(commandsLoggerName, provider, h.logger)
	return h
}

func (h *DeactivateUserHandler) Execute(ctx context.Context, event DeactivateUserMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user deactivation",
		)
	default:
	}

	h.registry.DeactivateUser(ctx, event.Username)
	h.logger.Debug("deactivate user handled", "username", event.Username)
	return nil
}
