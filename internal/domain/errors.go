package domain

import (
	"errors"
	"fmt"
)

// ConfigError marks a fetch cycle that could not start because a
// credential is not configured. Terminal for the cycle; the next timer
// or manual trigger re-attempts it.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func NewConfigError(msg string) error { return &ConfigError{Msg: msg} }

// IsConfig reports whether err wraps a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// ErrNoData marks a cycle where every upstream call failed or returned
// nothing usable.
var ErrNoData = errors.New("no data available")

// UpstreamError is a non-2xx response from a third-party provider.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.Service, e.Status, e.Body)
}

// IsUpstream reports whether err wraps an UpstreamError and returns it.
func IsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
