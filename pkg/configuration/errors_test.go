package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestDecodeError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &DecodeError{Source: "configuration template", Err: fs.ErrNotExist}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("DecodeError should unwrap to its cause")
	}
	if got := err.Error(); got != "failed to decode configuration template: file does not exist" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsRouteNotFound(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want bool
	}{
		"Nil":            {err: nil, want: false},
		"Other Error":    {err: errors.New("boom"), want: false},
		"Direct":         {err: &RouteNotFoundError{Namespace: "ns", Name: "syndesis"}, want: true},
		"Wrapped":        {err: fmt.Errorf("resolving: %w", &RouteNotFoundError{}), want: true},
		"Deeply Wrapped": {err: fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", &RouteNotFoundError{})), want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := IsRouteNotFound(tc.err); got != tc.want {
				t.Errorf("IsRouteNotFound() = %v, want %v", got, tc.want)
			}
		})
	}
}
