package ai

import (
	"context"
	"errors"
	"fmt"
)

// Backend is a chat-completion service: one user message in, the first
// choice's text out.
type Backend interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// BackendError is any failure reported by a Backend: transport, auth,
// quota or content policy.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

var errNoChoices = errors.New("response has no choices")

func backendError(backend, op string, err error) error {
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Backend: backend, Op: op, Err: err}
}
