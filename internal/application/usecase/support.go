package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/suhailre/suhail/internal/domain/event"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// Instruments holds the counters recorded by the use cases. A nil
// *Instruments records nothing.
type Instruments struct {
	calculations metric.Int64Counter
	chatRequests metric.Int64Counter
}

// NewInstruments registers the use-case counters on meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	calculations, err := meter.Int64Counter("suhail.calculations",
		metric.WithDescription("Engine calculations served, by kind"))
	if err != nil {
		return nil, fmt.Errorf("create calculations counter: %w", err)
	}
	chatRequests, err := meter.Int64Counter("suhail.chat.requests",
		metric.WithDescription("Chat completions attempted, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("create chat counter: %w", err)
	}
	return &Instruments{calculations: calculations, chatRequests: chatRequests}, nil
}

func (i *Instruments) calculated(ctx context.Context, kind string) {
	if i == nil {
		return
	}
	i.calculations.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (i *Instruments) chatted(ctx context.Context, outcome port.ChatOutcome) {
	if i == nil {
		return
	}
	i.chatRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

// publish emits events on a best-effort basis: the computed answer is still
// returned when the event trail is unavailable.
func publish(ctx context.Context, publisher port.EventPublisher, logger *slog.Logger, events ...event.DomainEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.WarnContext(ctx, "publish events failed", "error", err, "count", len(events))
	}
}

func parseLanguage(s string) (valueobject.Language, error) {
	lang, err := valueobject.NewLanguage(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return lang, nil
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
