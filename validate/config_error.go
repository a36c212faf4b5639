package validate

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
)

// ConfigError reports an internally inconsistent rule: an invalid regular
// expression, a minimum greater than a maximum, a non-positive multiple_of
// factor. It indicates an authoring bug rather than bad input data, so it
// is never folded into the violation tree. Every ConfigError is logged at
// Error level through the package logger when it is created.
type ConfigError struct {
	// Rule names the misconfigured constraint, e.g. "pattern" or "range".
	Rule string

	// Reason describes what is inconsistent about the parameters.
	Reason string

	// Err carries the underlying cause when one exists, such as the
	// regexp compile error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s rule: %s: %v", e.Rule, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s rule: %s", e.Rule, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// logger is swapped atomically so SetLogger is safe to call while
// validations run on other goroutines.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger routes rule misconfiguration reports to the given logger. The
// default logger discards everything; applications that want authoring
// bugs surfaced prominently should install their own.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

func newConfigError(rule, reason string, err error) *ConfigError {
	ce := &ConfigError{Rule: rule, Reason: reason, Err: err}
	logger.Load().Error("rule misconfiguration detected",
		slog.String("rule", rule),
		slog.String("reason", reason),
		slog.Any("error", err),
	)
	return ce
}
