package accounts_test

import (
	"context"

	"github.com/goliatone/go-accounts"
	"github.com/stretchr/testify/mock"
)

// MockActivitySink implements accounts.ActivitySink
type MockActivitySink struct {
	mock.Mock
}

func (m *MockActivitySink) Record(ctx context.Context, event accounts.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockRegistry implements accounts.Registry
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Register(ctx context.Context, username, password string, age int) error {
	args := m.Called(ctx, username, password, age)
	return args.Error(0)
}

func (m *MockRegistry) Login(ctx context.Context, username, password string) bool {
	args := m.Called(ctx, username, password)
	return args.Bool(0)
}

func (m *MockRegistry) IsUserActive(username string) bool {
	args := m.Called(username)
	return args.Bool(0)
}

func (m *MockRegistry) DeactivateUser(ctx context.Context, username string) {
	m.Called(ctx, username)
}

func (m *MockRegistry) ClearAllUsers(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockRegistry) Lookup(username string) (accounts.User, bool) {
	args := m.Called(username)
	return args.Get(0).(accounts.User), args.Bool(1)
}

func (m *MockRegistry) Len() int {
	args := m.Called()
	return args.Int(0)
}

type capturingSink struct {
	events []accounts.ActivityEvent
}

func (c *capturingSink) Record(ctx context.Context, evt accounts.ActivityEvent) error {
	c.events = append(c.events, evt)
	return nil
}

func (c *capturingSink) types() []accounts.ActivityEventType {
	out := make([]accounts.ActivityEventType, 0, len(c.events))
	for _, evt := range c.events {
		out = append(out, evt.EventType)
	}
	return out
}

func eventOfType(t accounts.ActivityEventType) any {
	return mock.MatchedBy(func(evt accounts.ActivityEvent) bool {
		return evt.EventType == t
	})
}
