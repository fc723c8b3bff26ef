package accounts

import (
	"context"
	"sync"
)

// Synchronized guards r with a single RWMutex so it can be shared between
// goroutines. Login holds the write lock since it publishes to the activity
// sink.
func Synchronized(r Registry) Registry {
	if s, ok := r.(*syncRegistry); ok {
		return s
	}
	return &syncRegistry{next: r}
}

type syncRegistry struct {
	mu   sync.RWMutex
	next Registry
}

func (s *syncRegistry) Register(ctx context.Context, username, password string, age int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Register(ctx, username, password, age)
}

func (s *syncRegistry) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Login(ctx, username, password)
}

func (s *syncRegistry) IsUserActive(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next.IsUserActive(username)
}

func (s *syncRegistry) DeactivateUser(ctx context.Context, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next.DeactivateUser(ctx, username)
}

func (s *syncRegistry) ClearAllUsers(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next.ClearAllUsers(ctx)
}

func (s *syncRegistry) Lookup(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next.Lookup(username)
}

func (s *syncRegistry) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next.Len()
}
