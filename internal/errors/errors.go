package errors

import (
	"errors"
	"fmt"
)

// Common error types for the portal
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidRole     = errors.New("invalid role")

	// Preference errors
	ErrInvalidVariant = errors.New("invalid theme variant")

	// Backend errors
	ErrBackend       = errors.New("backend request failed")
	ErrChatRejected  = errors.New("chat request rejected")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Storage errors
	ErrNotFound   = errors.New("not found")
	ErrSealBroken = errors.New("sealed value could not be opened")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
