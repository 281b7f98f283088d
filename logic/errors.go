package logic

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn      = errors.New("social client is not logged in")
	ErrNoChatProvider   = errors.New("no text generation provider is configured")
	ErrEmptyGeneration  = errors.New("provider returned empty text")
	ErrUnknownJob       = errors.New("no such job")
	ErrUnknownWorkflow  = errors.New("unknown workflow")
	ErrUnknownPersona   = errors.New("configured persona does not exist")
	ErrMalformedPayload = errors.New("unexpected response shape")
)

// UpstreamError is a non-success HTTP status from one of the remote services.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	body := e.Body
	if len(body) > 300 {
		body = body[:300] + "..."
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Status, body)
}
