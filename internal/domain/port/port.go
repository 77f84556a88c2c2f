package port

import (
	"context"
	"errors"

	"github.com/suhailre/suhail/internal/domain/event"
	"github.com/suhailre/suhail/internal/domain/model"
)

// ErrNotFound is returned by catalog lookups for unknown keys.
var ErrNotFound = errors.New("not found")

// ---------------------------------------------------------------------------
// Catalog port (driven/secondary adapter)
// ---------------------------------------------------------------------------

// Catalog is the read-only store of listings and area statistics. Returned
// slices are copies in catalog order.
type Catalog interface {
	Properties(ctx context.Context) ([]model.Property, error)
	Property(ctx context.Context, id string) (model.Property, error)
	Neighborhoods(ctx context.Context) ([]model.Neighborhood, error)
	Neighborhood(ctx context.Context, area string) (model.Neighborhood, error)
	EnvironmentalRisks(ctx context.Context) ([]model.EnvironmentalRisk, error)
	EnvironmentalRisk(ctx context.Context, area string) (model.EnvironmentalRisk, error)
	FinancingOffers(ctx context.Context) ([]model.FinancingOffer, error)
	Consultants(ctx context.Context) ([]model.Consultant, error)
	Inspectors(ctx context.Context) ([]model.Inspector, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatOutcome classifies how a completion request ended.
type ChatOutcome string

const (
	ChatOK         ChatOutcome = "ok"
	ChatTimeout    ChatOutcome = "timeout"
	ChatHTTPError  ChatOutcome = "http_error"
	ChatParseError ChatOutcome = "parse_error"
	ChatTransport  ChatOutcome = "transport"
)

// ChatResult is the outcome of a completion request. Text is set only when
// Outcome is ChatOK; Err carries the cause otherwise.
type ChatResult struct {
	Err        error
	Outcome    ChatOutcome
	Text       string
	StatusCode int
}

// ChatCompleter sends a conversation to a chat-completion API.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []ChatMessage) ChatResult
}
