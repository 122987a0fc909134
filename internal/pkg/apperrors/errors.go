package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel categories. Services wrap these with context via %w so the
// error middleware can map them to HTTP status codes.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrValidation      = errors.New("validation failed")
	ErrExternalService = errors.New("external service failure")
	ErrUnauthorized    = errors.New("unauthorized")
)

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func ExternalService(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrExternalService)...)
}

func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool      { return errors.Is(err, ErrValidation) }
func IsExternalService(err error) bool { return errors.Is(err, ErrExternalService) }
