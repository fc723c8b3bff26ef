package accounts

import (
	"context"
	"errors"
	"time"
	"unicode/utf16"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const registryLoggerName = "accounts.registry"

// RegistryOption customizes registry construction.
type RegistryOption func(*registry)

// WithConfig sets the password length and age thresholds.
func WithConfig(cfg Config) RegistryOption {
	return func(r *registry) {
		r.config = normalizeConfig(cfg)
	}
}

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) RegistryOption {
	return func(r *registry) {
		if clock != nil {
			r.now = clock
		}
	}
}

// WithActivitySink sets the ActivitySink used to publish registry events.
func WithActivitySink(sink ActivitySink) RegistryOption {
	return func(r *registry) {
		r.activitySink = sinkOrDiscard(sink)
	}
}

// WithLogger overrides the logger used for sink failures and tracing.
func WithLogger(logger Logger) RegistryOption {
	return func(r *registry) {
		if logger != nil {
			r.provider, r.logger = ResolveLogger(registryLoggerName, r.provider, logger)
		}
	}
}

// WithLoggerProvider resolves the registry logger from provider.
func WithLoggerProvider(provider LoggerProvider) RegistryOption {
	return func(r *registry) {
		if provider != nil {
			r.provider, r.logger = ResolveLogger(registryLoggerName, provider, r.logger)
		}
	}
}

// WithHashidIDs derives record IDs from the username so the same username
// always maps to the same ID.
func WithHashidIDs() RegistryOption {
	return func(r *registry) {
		r.useHashid = true
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) Registry {
	r := &registry{
		users:        make(map[string]*User),
		config:       DefaultConfig(),
		now:          time.Now,
		activitySink: discardSink{},
		logger:       defaultLogger(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

type registry struct {
	users        map[string]*User
	config       Config
	now          func() time.Time
	activitySink ActivitySink
	logger       Logger
	provider     LoggerProvider
	useHashid    bool
}

var _ Registry = (*registry)(nil)

func (r *registry) Register(ctx context.Context, username, password string, age int) error {
	if _, exists := r.users[username]; exists {
		return r.reject(ctx, username, ErrDuplicateUser)
	}

	if err := validation.Validate(password,
		validation.Required,
		minUTF16Length(r.config.GetMinPasswordLength()),
	); err != nil {
		return r.reject(ctx, username, ErrWeakPassword)
	}

	if err := validation.Validate(age,
		validation.Required,
		validation.Min(r.config.GetMinAge()),
	); err != nil {
		return r.reject(ctx, username, ErrUnderage)
	}

	user := &User{
		ID:        r.newID(username),
		Username:  username,
		Password:  password,
		Age:       age,
		Active:    true,
		CreatedAt: r.now(),
	}
	r.users[username] = user

	r.logger.Debug("user registered", "username", username, "user_id", user.ID.String())
	r.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventUserRegistered,
		Username:  username,
		UserID:    user.ID.String(),
	})

	return nil
}

func (r *registry) Login(ctx context.Context, username, password string) bool {
	user, ok := r.users[username]
	if !ok {
		r.recordActivity(ctx, ActivityEvent{
			EventType: ActivityEventLoginFailure,
			Username:  username,
			Metadata:  map[string]any{"reason": "unknown_user"},
		})
		return false
	}

	if user.Password != password {
		r.recordActivity(ctx, ActivityEvent{
			EventType: ActivityEventLoginFailure,
			Username:  username,
			UserID:    user.ID.String(),
			Metadata:  map[string]any{"reason": "password_mismatch"},
		})
		return false
	}

	r.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventLoginSuccess,
		Username:  username,
		UserID:    user.ID.String(),
		Metadata:  map[string]any{"active": user.Active},
	})
	return true
}

func (r *registry) IsUserActive(username string) bool {
	return r.users[username].IsActive()
}

func (r *registry) DeactivateUser(ctx context.Context, username string) {
	user, ok := r.users[username]
	if !ok {
		return
	}

	if !user.deactivate(r.now()) {
		return
	}

	r.logger.Debug("user deactivated", "username", username)
	r.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventUserDeactivated,
		Username:  username,
		UserID:    user.ID.String(),
	})
}

func (r *registry) ClearAllUsers(ctx context.Context) {
	removed := len(r.users)
	clear(r.users)

	r.logger.Debug("registry cleared", "removed", removed)
	r.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventRegistryCleared,
		Metadata:  map[string]any{"removed": removed},
	})
}

func (r *registry) Lookup(username string) (User, bool) {
	user, ok := r.users[username]
	if !ok {
		return User{}, false
	}
	return user.clone(), true
}

func (r *registry) Len() int {
	return len(r.users)
}

func (r *registry) reject(ctx context.Context, username string, err *goerrors.Error) error {
	r.logger.Debug("user registration rejected", "username", username, "code", err.TextCode)
	r.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventRegisterRejected,
		Username:  username,
		Metadata:  map[string]any{"code": err.TextCode},
	})
	return err
}

// minUTF16Length measures strings in UTF-16 code units, so a character
// outside the BMP counts twice.
func minUTF16Length(minLen int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if len(utf16.Encode([]rune(s))) < minLen {
			return errors.New("too short")
		}
		return nil
	})
}

func (r *registry) newID(username string) uuid.UUID {
	if r.useHashid {
		if id, err := hashid.NewUUID(username); err == nil {
			return id
		}
	}
	return uuid.New()
}

func (r *registry) recordActivity(ctx context.Context, event ActivityEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = r.now()
	}

	if err := r.activitySink.Record(ctx, event); err != nil {
		r.logger.Warn("registry activity sink error", "error", err)
	}
}
