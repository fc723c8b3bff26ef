package pricing

import goerrors "github.com/goliatone/go-errors"

const (
	TextCodeInvalidInput = "INVALID_INPUT"
	TextCodeEmptyList    = "EMPTY_ORDER_LIST"
)

// ErrInvalidInput is returned for negative amounts or out of range percentages
var ErrInvalidInput = goerrors.New("invalid input values", goerrors.CategoryBadInput).
	WithTextCode(TextCodeInvalidInput).
	WithCode(goerrors.CodeBadRequest)

// ErrEmptyList is returned when an average is requested over no orders
var ErrEmptyList = goerrors.New("order list must not be empty", goerrors.CategoryValidation).
	WithTextCode(TextCodeEmptyList).
	WithCode(goerrors.CodeBadRequest)
