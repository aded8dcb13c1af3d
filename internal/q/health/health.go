package health

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// HealthErr is an error with slog-style key/value attributes attached.
type HealthErr struct {
	Message string
	wrapped error
	attrs   []any
}

// Error satisfies the error interface. All aspects are serialized: msg, attrs, and the wrapped error.
func (e *HealthErr) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.attrs) > 0 {
		b.WriteString("[")
		for i := 0; i+1 < len(e.attrs); i += 2 {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%v=%v", e.attrs[i], e.attrs[i+1])
		}
		b.WriteString("]")
	}

	if e.wrapped != nil {
		b.WriteString(" via ")
		b.WriteString(e.wrapped.Error())
	}

	return b.String()
}

func (e *HealthErr) Unwrap() error {
	return e.wrapped
}

// NewErr returns a new error (unlogged). args is in the same format as slog's args to Info: key/value pairs.
// NOTE: to wrap an error, use Wrap.
func NewErr(msg string, args ...any) error {
	return &HealthErr{Message: msg, attrs: args}
}

// Wrap returns a new error that wraps `wrapped`.
func Wrap(msg string, wrapped error, args ...any) error {
	if wrapped == nil {
		// Footgun, but don't panic; an error makes it likely the caller can fix their code.
		wrapped = errors.New("nil wrapped error. WARNING: you should not call Wrap with a nil error")
	}
	return &HealthErr{Message: msg, wrapped: wrapped, attrs: args}
}

// LogNewErr creates a new error with msg and args, logs it, and returns it.
func LogNewErr(logger *slog.Logger, msg string, args ...any) error {
	return LogErr(logger, NewErr(msg, args...))
}

// LogWrappedErr creates a new error wrapping `wrapped`, logs it, and returns it.
func LogWrappedErr(logger *slog.Logger, msg string, wrapped error, args ...any) error {
	return LogErr(logger, Wrap(msg, wrapped, args...))
}

// LogErr logs err to logger (if it's not nil) and returns the error. It enables logging and returning
// an error in one line:
//
//	return health.LogErr(logger, health.NewErr("myerr", "errkv", v))
//
// When err was created via NewErr or Wrap, its attrs are logged first, then args; the wrapped error
// is logged under a "via" key.
func LogErr(logger *slog.Logger, err error, args ...any) error {
	if logger == nil || err == nil {
		return err
	}

	h, isHealthErr := err.(*HealthErr)
	if !isHealthErr {
		logger.Error(err.Error(), args...)
		return err
	}

	allArgs := make([]any, 0, len(h.attrs)+len(args)+1)
	allArgs = append(allArgs, h.attrs...)
	if h.wrapped != nil {
		allArgs = append(allArgs, slog.String("via", h.wrapped.Error()))
	}
	allArgs = append(allArgs, args...)

	logger.Error(h.Message, allArgs...)
	return err
}
