package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhailre/suhail/internal/domain/event"
)

func TestLogEventPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	pub := NewLogEventPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	evt := event.NewFinancingOffersRanked("Al Rajhi Bank", 80, 5)
	require.NoError(t, pub.Publish(context.Background(), evt))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "domain event", entry["msg"])
	assert.Equal(t, "suhail.financing.ranked", entry["event_type"])
	assert.Equal(t, "Al Rajhi Bank", entry["aggregate_id"])
	assert.Equal(t, evt.EventID(), entry["event_id"])
}
