package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suhailre/suhail/internal/domain/event"
	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/infrastructure/catalog"
)

// --- Mock implementations ---

// mockCatalog serves the embedded seed unless an override is set.
type mockCatalog struct {
	port.Catalog
	propertiesFunc    func(ctx context.Context) ([]model.Property, error)
	neighborhoodsFunc func(ctx context.Context) ([]model.Neighborhood, error)
	risksFunc         func(ctx context.Context) ([]model.EnvironmentalRisk, error)
	offersFunc        func(ctx context.Context) ([]model.FinancingOffer, error)
}

func newMockCatalog(t *testing.T) *mockCatalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return &mockCatalog{Catalog: c}
}

func (m *mockCatalog) Properties(ctx context.Context) ([]model.Property, error) {
	if m.propertiesFunc != nil {
		return m.propertiesFunc(ctx)
	}
	return m.Catalog.Properties(ctx)
}

func (m *mockCatalog) Neighborhoods(ctx context.Context) ([]model.Neighborhood, error) {
	if m.neighborhoodsFunc != nil {
		return m.neighborhoodsFunc(ctx)
	}
	return m.Catalog.Neighborhoods(ctx)
}

func (m *mockCatalog) EnvironmentalRisks(ctx context.Context) ([]model.EnvironmentalRisk, error) {
	if m.risksFunc != nil {
		return m.risksFunc(ctx)
	}
	return m.Catalog.EnvironmentalRisks(ctx)
}

func (m *mockCatalog) FinancingOffers(ctx context.Context) ([]model.FinancingOffer, error) {
	if m.offersFunc != nil {
		return m.offersFunc(ctx)
	}
	return m.Catalog.FinancingOffers(ctx)
}

type mockPublisher struct {
	mu     sync.Mutex
	err    error
	events []event.DomainEvent
}

func (m *mockPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, events...)
	return nil
}

func (m *mockPublisher) published() []event.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}

type mockCompleter struct {
	completeFunc func(ctx context.Context, messages []port.ChatMessage) port.ChatResult
	lastMessages []port.ChatMessage
}

func (m *mockCompleter) Complete(ctx context.Context, messages []port.ChatMessage) port.ChatResult {
	m.lastMessages = messages
	if m.completeFunc != nil {
		return m.completeFunc(ctx, messages)
	}
	return port.ChatResult{Outcome: port.ChatOK, Text: "ok"}
}

var errBrokerDown = errors.New("broker down")
