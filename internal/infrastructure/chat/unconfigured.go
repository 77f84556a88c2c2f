package chat

import (
	"context"
	"errors"

	"github.com/suhailre/suhail/internal/domain/port"
)

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("chat completion api key is not configured")

// Unconfigured stands in for the API client when no key is set, so that
// conversations still receive the fallback reply.
type Unconfigured struct{}

// Complete always fails with a transport outcome.
func (Unconfigured) Complete(context.Context, []port.ChatMessage) port.ChatResult {
	return port.ChatResult{Outcome: port.ChatTransport, Err: ErrNotConfigured}
}
