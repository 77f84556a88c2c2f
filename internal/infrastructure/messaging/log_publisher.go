package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/suhailre/suhail/internal/domain/event"
)

// LogEventPublisher implements port.EventPublisher by logging events. It is
// used when no Kafka brokers are configured.
type LogEventPublisher struct {
	logger *slog.Logger
}

// NewLogEventPublisher creates a publisher writing to logger.
func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish logs each event with its serialised size.
func (p *LogEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.InfoContext(ctx, "domain event",
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
			"aggregate_id", evt.AggregateID(),
			"aggregate_type", evt.AggregateType(),
			"payload_size", len(payload),
		)
	}
	return nil
}
