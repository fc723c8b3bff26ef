package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-logger/glog"
)

// Logger is the structured logger used across the package
type Logger = glog.Logger

// LoggerProvider resolves named loggers
type LoggerProvider = glog.LoggerProvider

// Registry holds user records keyed by username
type Registry interface {
	Register(ctx context.Context, username, password string, age int) error
	Login(ctx context.Context, username, password string) bool
	IsUserActive(username string) bool
	DeactivateUser(ctx context.Context, username string)
	ClearAllUsers(ctx context.Context)
	Lookup(username string) (User, bool)
	Len() int
}

// ResolveLogger returns the provider and logger to use for the given name.
// The provider wins when it yields a logger, otherwise the given logger is
// used, and as a last resort the default console logger.
func ResolveLogger(name string, provider LoggerProvider, logger Logger) (LoggerProvider, Logger) {
	if scoped, ok := provider.(scopedProvider); ok {
		provider = scoped.base
	}

	fallback := logger
	if fallback == nil {
		fallback = defaultLogger()
	}

	resolved := scopedProvider{base: provider, fallback: fallback}
	return resolved, resolved.GetLogger(name)
}

type scopedProvider struct {
	base     LoggerProvider
	fallback Logger
}

func (p scopedProvider) GetLogger(name string) Logger {
	if p.base != nil {
		if l := p.base.GetLogger(name); l != nil {
			return l
		}
	}
	return p.fallback
}

type defLogger struct{}

func defaultLogger() Logger {
	return defLogger{}
}

// Trace and Debug are dropped by the default logger
func (d defLogger) Trace(string, ...any) {}
func (d defLogger) Debug(string, ...any) {}

func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args...) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args...) }
func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args...) }
func (d defLogger) Fatal(msg string, args ...any) { d.print("FTL", msg, args...) }

func (d defLogger) WithContext(context.Context) Logger {
	return d
}

func (d defLogger) print(level, msg string, args ...any) {
	fmt.Printf("[%s] ACCOUNTS %s%s\n", level, msg, formatPairs(args))
}

func formatPairs(args []any) string {
	if len(args) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
			continue
		}
		fmt.Fprintf(&b, " %v", args[i])
	}
	return b.String()
}
