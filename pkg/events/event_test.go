package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("advisor.mortgage.calculated", "req-1", "MortgageQuote")
	after := time.Now().UTC()

	if _, err := uuid.Parse(event.EventID()); err != nil {
		t.Errorf("event ID is not a UUID: %v", err)
	}
	if event.EventType() != "advisor.mortgage.calculated" {
		t.Errorf("unexpected event type %q", event.EventType())
	}
	if event.AggregateID() != "req-1" {
		t.Errorf("unexpected aggregate ID %q", event.AggregateID())
	}
	if event.AggregateType() != "MortgageQuote" {
		t.Errorf("unexpected aggregate type %q", event.AggregateType())
	}
	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("occurredAt %v outside [%v, %v]", event.OccurredAt(), before, after)
	}
}

func TestNewBaseEvent_GeneratesAggregateID(t *testing.T) {
	a := NewBaseEvent("x", "", "Chat")
	b := NewBaseEvent("x", "", "Chat")
	if a.AggregateID() == "" || a.AggregateID() == b.AggregateID() {
		t.Errorf("expected distinct generated aggregate IDs, got %q and %q", a.AggregateID(), b.AggregateID())
	}
	if a.EventID() == b.EventID() {
		t.Error("expected unique event IDs")
	}
}

func TestBaseEvent_EmbeddedJSON(t *testing.T) {
	type rankingDone struct {
		BaseEvent
		Top string `json:"top"`
	}
	evt := rankingDone{BaseEvent: NewBaseEvent("advisor.neighborhoods.ranked", "r-9", "Ranking"), Top: "Al Olaya"}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"event_id", "event_type", "aggregate_id", "aggregate_type", "occurred_at", "top"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
}

var _ DomainEvent = BaseEvent{}
