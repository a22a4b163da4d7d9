package configuration

import (
	"errors"
	"fmt"
)

// DecodeError reports malformed or structurally mismatched input: a missing
// or unparsable template document, or a custom resource whose shape does not
// decode. It is unrecoverable for the current pass; the caller should mark
// the installation degraded instead of retrying blindly.
type DecodeError struct {
	// Source names the input that failed to decode.
	Source string

	// Err is the underlying decode failure.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RouteNotFoundError reports that no route exists yet for the installation
// and no hostname override was supplied. This is an expected transient state
// early in an installation's lifecycle; the caller retries on a later pass.
type RouteNotFoundError struct {
	// Namespace and Name identify the route that was looked up.
	Namespace string
	Name      string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("route %s/%s not found", e.Namespace, e.Name)
}

// IsRouteNotFound reports whether err is, or wraps, a *RouteNotFoundError.
func IsRouteNotFound(err error) bool {
	var notFound *RouteNotFoundError
	return errors.As(err, &notFound)
}
