package motion

import (
	"errors"
	"fmt"
)

// Sentinel errors for timeline construction and execution. Every typed error
// below unwraps to one of these, so callers can match with errors.Is.
var (
	// ErrConfig indicates a timeline or directive was built with invalid
	// parameters (non-positive duration, malformed path, negative delta).
	ErrConfig = errors.New("invalid configuration")
	// ErrPath indicates a property path did not resolve against a target.
	ErrPath = errors.New("unresolved property path")
	// ErrUsage indicates the builder API was used in an unsupported order,
	// such as appending a directive after a Manual directive.
	ErrUsage = errors.New("invalid usage")
)

// ConfigError records a configuration problem found while building a timeline.
type ConfigError struct {
	Op     string // builder call or operation that rejected the value
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("motion: %s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrConfig.
func (e *ConfigError) Unwrap() error { return ErrConfig }

// PathError records a property path that failed to resolve. TargetType is the
// dynamic type of the target the path was resolved against.
type PathError struct {
	Path       string
	TargetType string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("motion: property %q does not exist on target %s", e.Path, e.TargetType)
}

// Unwrap returns ErrPath.
func (e *PathError) Unwrap() error { return ErrPath }

// UsageError records a builder call that makes part of a program unreachable
// or mutates a program that is already running.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "motion: " + e.Reason
}

// Unwrap returns ErrUsage.
func (e *UsageError) Unwrap() error { return ErrUsage }

func configErrorf(op, format string, args ...any) error {
	return &ConfigError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
