package accounts_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-accounts"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
)

func TestStructuredErrorProperties(t *testing.T) {
	t.Run("ErrDuplicateUser", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryConflict, accounts.ErrDuplicateUser.Category)
		assert.Equal(t, accounts.TextCodeUserExists, accounts.ErrDuplicateUser.TextCode)
		assert.Equal(t, "user already exists", accounts.ErrDuplicateUser.Message)
	})

	t.Run("ErrWeakPassword", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryValidation, accounts.ErrWeakPassword.Category)
		assert.Equal(t, accounts.TextCodeWeakPassword, accounts.ErrWeakPassword.TextCode)
	})

	t.Run("ErrUnderage", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryValidation, accounts.ErrUnderage.Category)
		assert.Equal(t, accounts.TextCodeUnderage, accounts.ErrUnderage.TextCode)
	})

	t.Run("ErrInvalidUsername", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryBadInput, accounts.ErrInvalidUsername.Category)
		assert.Equal(t, accounts.TextCodeInvalidUsername, accounts.ErrInvalidUsername.TextCode)
	})
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		duplicate bool
		weak      bool
		underage  bool
	}{
		{name: "duplicate", err: accounts.ErrDuplicateUser, duplicate: true},
		{name: "weak password", err: accounts.ErrWeakPassword, weak: true},
		{name: "underage", err: accounts.ErrUnderage, underage: true},
		{name: "unrelated", err: errors.New("user already exists")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.duplicate, accounts.IsDuplicateUser(tt.err))
			assert.Equal(t, tt.weak, accounts.IsWeakPassword(tt.err))
			assert.Equal(t, tt.underage, accounts.IsUnderage(tt.err))
		})
	}
}
