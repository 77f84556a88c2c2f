package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a numeric input is outside its domain.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingJoin marks an area present in one catalog table but not another.
	ErrMissingJoin = errors.New("missing join")
)

func invalidInput(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, fmt.Sprintf(format, args...))
}
