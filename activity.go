package accounts

import (
	"context"
	"time"
)

// ActivityEventType enumerates supported activity categories.
type ActivityEventType string

const (
	ActivityEventUserRegistered   ActivityEventType = "user.registered"
	ActivityEventRegisterRejected ActivityEventType = "user.register.rejected"
	ActivityEventLoginSuccess     ActivityEventType = "auth.login.success"
	ActivityEventLoginFailure     ActivityEventType = "auth.login.failure"
	ActivityEventUserDeactivated  ActivityEventType = "user.deactivated"
	ActivityEventRegistryCleared  ActivityEventType = "registry.cleared"
)

// ActivityEvent captures audit-friendly information about a registry call.
// It never carries passwords.
type ActivityEvent struct {
	EventType  ActivityEventType
	Username   string
	UserID     string
	Metadata   map[string]any
	OccurredAt time.Time
}

// ActivitySink receives registry events. Errors are logged by the registry
// and never reach the caller of the registry operation.
type ActivitySink interface {
	Record(ctx context.Context, event ActivityEvent) error
}

// ActivitySinkFunc lets a plain function serve as an ActivitySink.
type ActivitySinkFunc func(ctx context.Context, event ActivityEvent) error

func (fn ActivitySinkFunc) Record(ctx context.Context, event ActivityEvent) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// discardSink drops every event; it backs registries built without a sink.
type discardSink struct{}

func (discardSink) Record(context.Context, ActivityEvent) error { return nil }

func sinkOrDiscard(sink ActivitySink) ActivitySink {
	if sink == nil {
		return discardSink{}
	}
	return sink
}
