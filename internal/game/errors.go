package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownCard     = errors.New("card not found in catalog")
	ErrUnknownFactory  = errors.New("unknown card factory")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// ValidationError reports a card constructor argument outside its allowed range.
// It matches ErrInvalidArgument under errors.Is.
type ValidationError struct {
	Field string
	Value any
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s, got %v", e.Field, e.Rule, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func nonNegative(field string, v int) error {
	if v < 0 {
		return &ValidationError{Field: field, Value: v, Rule: "must be a non-negative integer"}
	}
	return nil
}
