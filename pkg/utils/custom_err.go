package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrValidationFailed    = errors.New("validation failed")
	ErrGenerationExhausted = errors.New("all generation providers failed")
	ErrPersistenceFailed   = errors.New("persisting itinerary failed")
	ErrDatabaseError       = errors.New("database error")
	ErrTripNotFound        = errors.New("trip not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUnauthorized        = errors.New("unauthorized")
)

// ValidationError carries every violated constraint of a request, in check order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// ProviderFailure records why one provider attempt was rejected.
type ProviderFailure struct {
	Provider string `json:"provider"`
	Error    string `json:"error"`
}

// GenerationExhaustedError is returned when every provider in the chain failed.
type GenerationExhaustedError struct {
	Destination string
	Days        int
	Attempts    []ProviderFailure
}

func (e *GenerationExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, a.Provider+": "+a.Error)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("generation for %q (%d days): no providers configured", e.Destination, e.Days)
	}
	return fmt.Sprintf("generation for %q (%d days): %s", e.Destination, e.Days, strings.Join(parts, "; "))
}

func (e *GenerationExhaustedError) Unwrap() error { return ErrGenerationExhausted }

// PersistenceError keeps the unsaved record so the caller can resubmit it to the save endpoint.
type PersistenceError struct {
	Payload any
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting itinerary: %v", e.Err)
}

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistenceFailed, e.Err} }
