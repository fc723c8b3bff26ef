package accounts

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeUserExists      = "USER_ALREADY_EXISTS"
	TextCodeWeakPassword    = "WEAK_PASSWORD"
	TextCodeUnderage        = "UNDERAGE_USER"
	TextCodeInvalidUsername = "INVALID_USERNAME"
)

// ErrDuplicateUser is returned when the username is already registered
var ErrDuplicateUser = goerrors.New("user already exists", goerrors.CategoryConflict).
	WithTextCode(TextCodeUserExists).
	WithCode(goerrors.CodeConflict)

// ErrWeakPassword is returned when the password is shorter than the
// configured minimum length
var ErrWeakPassword = goerrors.New("password does not meet the minimum length", goerrors.CategoryValidation).
	WithTextCode(TextCodeWeakPassword).
	WithCode(goerrors.CodeBadRequest)

// ErrUnderage is returned when the user is younger than the configured
// minimum age
var ErrUnderage = goerrors.New("user does not meet the minimum age", goerrors.CategoryValidation).
	WithTextCode(TextCodeUnderage).
	WithCode(goerrors.CodeBadRequest)

// ErrInvalidUsername is returned by command validation for blank usernames
var ErrInvalidUsername = goerrors.New("username is required", goerrors.CategoryBadInput).
	WithTextCode(TextCodeInvalidUsername).
	WithCode(goerrors.CodeBadRequest)

// IsDuplicateUser reports whether err is ErrDuplicateUser
func IsDuplicateUser(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsWeakPassword reports whether err is ErrWeakPassword
func IsWeakPassword(err error) bool {
	return errors.Is(err, ErrWeakPassword)
}

// IsUnderage reports whether err is ErrUnderage
func IsUnderage(err error) bool {
	return errors.Is(err, ErrUnderage)
}
