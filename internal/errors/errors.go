// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrEmptyHistory  = errors.New("no historical data found for this symbol")
	ErrAgentNotReady = errors.New("agent not initialized")
	ErrConfigInvalid = errors.New("invalid configuration")
)

// FetchError represents a failure while fetching market data.
type FetchError struct {
	Symbol string
	Period string
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch error [%s %s]: %s: %v", e.Symbol, e.Period, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch error [%s %s]: %s", e.Symbol, e.Period, e.Reason)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(symbol, period, reason string, err error) *FetchError {
	return &FetchError{
		Symbol: symbol,
		Period: period,
		Reason: reason,
		Err:    err,
	}
}

// AgentError represents an error from the news summarization agent.
type AgentError struct {
	Operation string
	Err       error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("agent error [%s]: %v", e.Operation, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

// NewAgentError creates a new AgentError.
func NewAgentError(operation string, err error) *AgentError {
	return &AgentError{
		Operation: operation,
		Err:       err,
	}
}

// ValidationError represents a user input validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
