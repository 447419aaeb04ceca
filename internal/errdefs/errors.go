package errdefs

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrUnauthorized        = errors.New("unauthorized access")
	ErrForbidden           = errors.New("forbidden access")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrMissingParameter    = errors.New("missing parameter")
	ErrPaymentNotCompleted = errors.New("payment not completed")
)
