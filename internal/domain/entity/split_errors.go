package entity

import (
	"errors"
	"fmt"
)

// Configuration failures detected when a split is initialized.
var (
	ErrTooFewPanes     = errors.New("too few panes")
	ErrPercentageCount = errors.New("percentage count mismatch")
	ErrPercentageSum   = errors.New("percentages do not add up")
	ErrPercentageRange = errors.New("percentage out of range")
)

// ConfigurationError is returned when a split cannot be built from the
// requested pane count and sizes. It is fatal for the instance being built.
type ConfigurationError struct {
	Reason error
	Detail string
}

func newConfigurationError(reason error, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid split configuration: %v: %s", e.Reason, e.Detail)
}

// Unwrap lets errors.Is match the sentinel reason.
func (e *ConfigurationError) Unwrap() error {
	return e.Reason
}
