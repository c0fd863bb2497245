package common

import "errors"

var (
	// Validation errors raised by feature code before anything is sent.
	ErrorValidation     = errors.New("validation error")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrInvalidArguments = errors.New("invalid arguments")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)
