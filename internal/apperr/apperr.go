// Package apperr defines the error classes the CLI distinguishes and maps
// them to process exit codes and stderr reports.
package apperr

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes returned by the CLI.
const (
	ExitOK      = 0
	ExitFailure = 1 // HTTP, network, or unexpected errors
	ExitUsage   = 2 // argument or configuration errors
)

// ConfigError reports a missing or invalid argument, flag, or credential.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// HTTPError reports a non-2xx response from the API.
type HTTPError struct {
	StatusCode int
	Reason     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Reason)
}

// NetworkError reports a transport-level failure: refused connection, DNS
// failure, timeout, or cancellation.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// UnexpectedError reports anything else, for example a body that is not JSON.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return e.Err.Error() }
func (e *UnexpectedError) Unwrap() error { return e.Err }

// Config wraps err as a ConfigError. A nil err stays nil.
func Config(err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Err: err}
}

// Configf builds a ConfigError from a format string. %w is honored.
func Configf(format string, args ...any) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

// Network wraps err as a NetworkError. A nil err stays nil.
func Network(err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{Err: err}
}

// Unexpected wraps err as an UnexpectedError. A nil err stays nil.
func Unexpected(err error) error {
	if err == nil {
		return nil
	}
	return &UnexpectedError{Err: err}
}

// IsConfig reports whether err is, or wraps, a ConfigError.
func IsConfig(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsConfig(err) {
		return ExitUsage
	}
	return ExitFailure
}

// Report writes the user-facing description of err to w.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}

	var (
		httpErr *HTTPError
		netErr  *NetworkError
		cfgErr  *ConfigError
	)
	switch {
	case errors.As(err, &httpErr):
		fmt.Fprintf(w, "HTTP error %d: %s\n%s\n", httpErr.StatusCode, httpErr.Reason, httpErr.Body)
	case errors.As(err, &netErr):
		fmt.Fprintf(w, "Network error: %v\n", netErr.Err)
	case errors.As(err, &cfgErr):
		fmt.Fprintf(w, "Argument/config error: %v\n", cfgErr.Err)
	default:
		fmt.Fprintf(w, "Execution error: %v\n", err)
	}
}
