package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhailre/suhail/internal/application/usecase"
	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/infrastructure/catalog"
	"github.com/suhailre/suhail/internal/presentation/rest"
)

type stubCompleter struct {
	result port.ChatResult
}

func (s stubCompleter) Complete(context.Context, []port.ChatMessage) port.ChatResult {
	return s.result
}

// brokenCatalog fails listing loads.
type brokenCatalog struct {
	port.Catalog
}

func (brokenCatalog) Properties(context.Context) ([]model.Property, error) {
	return nil, errors.New("disk on fire")
}

func (brokenCatalog) Neighborhoods(context.Context) ([]model.Neighborhood, error) {
	return nil, errors.New("disk on fire")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

func newServer(t *testing.T, cat port.Catalog, completer port.ChatCompleter) *httptest.Server {
	t.Helper()
	set := usecase.NewSet(usecase.Dependencies{Catalog: cat, Completer: completer, Logger: discardLogger()})

	mux := http.NewServeMux()
	rest.NewHealthHandler(cat, discardLogger()).RegisterRoutes(mux)
	rest.NewHandler(set, discardLogger()).RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func doList(t *testing.T, srv *httptest.Server, path string) []map[string]any {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func ids(t *testing.T, results any) []string {
	t.Helper()
	items, ok := results.([]any)
	require.True(t, ok)
	out := []string{}
	for _, it := range items {
		out = append(out, it.(map[string]any)["id"].(string))
	}
	return out
}

func TestHealth(t *testing.T) {
	srv := newServer(t, seedCatalog(t), nil)

	status, body := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = do(t, srv, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	broken := newServer(t, brokenCatalog{Catalog: seedCatalog(t)}, nil)
	status, _ = do(t, broken, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestMortgageRoutes(t *testing.T) {
	srv := newServer(t, seedCatalog(t), nil)

	t.Run("summary", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/api/v1/mortgage/summary",
			`{"price": 2000000, "down_payment_percent": 20, "annual_rate_percent": 3.5, "term_years": 25}`)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "8009.98", body["monthly_payment"])
		assert.Equal(t, "1600000", body["loan_amount"])
		assert.Equal(t, "8,009.98 SAR", body["monthly_payment_display"])
	})

	t.Run("schedule", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/api/v1/mortgage/schedule",
			`{"price": "1000000", "down_payment_percent": "0", "annual_rate_percent": "0", "term_years": 10}`)

		require.Equal(t, http.StatusOK, status)
		years, ok := body["years"].([]any)
		require.True(t, ok)
		assert.Len(t, years, 10)
		assert.Equal(t, "0", years[9].(map[string]any)["remaining_balance"])
	})

	t.Run("affordability", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/api/v1/mortgage/affordability?lang=ar",
			`{"monthly_payment": 6000, "monthly_income": 30000, "language": "ar"}`)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "AFFORDABLE", body["level"])
		assert.Equal(t, "ميسور التكلفة", body["label"])
	})

	t.Run("bad input is 400", func(t *testing.T) {
		bodies := []string{
			`{"price": 2000000, "down_payment_percent": 20, "annual_rate_percent": 3.5, "term_years": 0}`,
			`{"price": 2000000, "unexpected": true}`,
			`{not json`,
		}
		for _, b := range bodies {
			status, body := do(t, srv, http.MethodPost, "/api/v1/mortgage/summary", b)
			assert.Equal(t, http.StatusBadRequest, status, b)
			assert.NotEmpty(t, body["error"])
		}
	})

	t.Run("unknown property is 404", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/api/v1/mortgage/summary",
			`{"property_id": "RYD999", "down_payment_percent": 20, "annual_rate_percent": 3.5, "term_years": 25}`)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body["error"], "not found")
	})
}

func TestNeighborhoodRoutes(t *testing.T) {
	srv := newServer(t, seedCatalog(t), nil)

	t.Run("rank", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/api/v1/neighborhoods/rank",
			`{"weights": {"safety": 1, "schools": 1, "healthcare": 1, "shopping": 1, "transportation": 1, "environmental": 1}, "limit": 2}`)

		require.Equal(t, http.StatusOK, status)
		results := body["results"].([]any)
		require.Len(t, results, 2)
		assert.Equal(t, "Al Olaya", results[0].(map[string]any)["area"])
	})

	t.Run("rank with zero weights is 400", func(t *testing.T) {
		status, _ := do(t, srv, http.MethodPost, "/api/v1/neighborhoods/rank", `{}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("compare", func(t *testing.T) {
		status, body := do(t, srv, http.MethodGet, "/api/v1/neighborhoods/compare?areas=Hittin,Al%20Olaya&areas=Atlantis", "")

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Al Olaya", body["best"])
		assert.Equal(t, []any{"Atlantis"}, body["missing"])
	})
}

func TestFinancingRoutes(t *testing.T) {
	srv := newServer(t, seedCatalog(t), nil)

	status, body := do(t, srv, http.MethodPost, "/api/v1/financing/rank", `{
		"preferred_term_years": 25,
		"preferred_down_payment_percent": 20,
		"rate_preference": "ISLAMIC",
		"employment_type": "GOVERNMENT",
		"purchase_purpose": "FIRST_HOME",
		"price": "1000000"
	}`)
	require.Equal(t, http.StatusOK, status)
	first := body["results"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 80, first["score"])
	assert.Equal(t, "Best match", first["label"])
	assert.NotEmpty(t, first["estimated_monthly_payment"])

	offers := doList(t, srv, "/api/v1/financing/offers?lang=ar")
	require.Len(t, offers, 5)
	assert.Equal(t, "مصرف الراجحي", offers[0]["bank"])
}

func TestPropertyRoutes(t *testing.T) {
	srv := newServer(t, seedCatalog(t), nil)

	t.Run("search with multi-valued filters", func(t *testing.T) {
		status, body := do(t, srv, http.MethodGet, "/api/v1/properties?bedrooms=3,4&type=Apartment&type=Penthouse", "")

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []string{"RYD002", "RYD003"}, ids(t, body["results"]))
	})

	t.Run("invalid filter is 400", func(t *testing.T) {
		status, _ := do(t, srv, http.MethodGet, "/api/v1/properties?bedrooms=many", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("detail", func(t *testing.T) {
		status, body := do(t, srv, http.MethodGet, "/api/v1/properties/RYD005", "")

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Hittin", body["area"])
		assert.InDelta(t, 68.125, body["neighborhood_overall"], 0.001)
	})

	t.Run("missing detail is 404", func(t *testing.T) {
		status, _ := do(t, srv, http.MethodGet, "/api/v1/properties/RYD404", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("catalog failure is 500", func(t *testing.T) {
		broken := newServer(t, brokenCatalog{Catalog: seedCatalog(t)}, nil)
		status, body := do(t, broken, http.MethodGet, "/api/v1/properties", "")

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal error", body["error"])
	})
}

func TestEnvironmentAndDirectoryRoutes(t *testing.T) {
	srv := newServer(t, seedCatalog(t), nil)

	status, body := do(t, srv, http.MethodGet, "/api/v1/environment/Al%20Malaz", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Al Malaz", body["area"])
	assert.InDelta(t, 45.0, body["environmental_score"], 1e-9)

	status, body = do(t, srv, http.MethodGet, "/api/v1/environment/compare/air-pollution", "")
	require.Equal(t, http.StatusOK, status)
	first := body["results"].([]any)[0].(map[string]any)
	assert.Equal(t, "Al Malaz", first["area"])

	status, _ = do(t, srv, http.MethodGet, "/api/v1/environment/compare/earthquake", "")
	assert.Equal(t, http.StatusBadRequest, status)

	consultants := doList(t, srv, "/api/v1/consultants?specialization=villa")
	require.Len(t, consultants, 1)
	assert.Equal(t, "CNS001", consultants[0]["id"])

	inspectors := doList(t, srv, "/api/v1/inspectors?area=Al%20Malaz")
	require.Len(t, inspectors, 1)
	assert.Equal(t, "INS001", inspectors[0]["id"])
}

func TestChatRoutes(t *testing.T) {
	t.Run("reply", func(t *testing.T) {
		srv := newServer(t, seedCatalog(t), stubCompleter{result: port.ChatResult{Outcome: port.ChatOK, Text: "أهلاً\n\nHi"}})

		status, body := do(t, srv, http.MethodPost, "/api/v1/chat",
			`{"message": "Hi", "history": [{"role": "user", "content": "earlier"}]}`)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "أهلاً\n\nHi", body["reply"])
		assert.Equal(t, false, body["fallback"])
		assert.NotEmpty(t, body["session_id"])
	})

	t.Run("fallback is still 200", func(t *testing.T) {
		srv := newServer(t, seedCatalog(t), stubCompleter{result: port.ChatResult{Outcome: port.ChatTimeout}})

		status, body := do(t, srv, http.MethodPost, "/api/v1/chat", `{"message": "Hi"}`)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["fallback"])
		assert.Equal(t, "timeout", body["outcome"])
	})

	t.Run("insight", func(t *testing.T) {
		srv := newServer(t, seedCatalog(t), stubCompleter{result: port.ChatResult{Outcome: port.ChatOK, Text: "analysis"}})

		status, body := do(t, srv, http.MethodPost, "/api/v1/insights/comparison", `{"areas": ["Al Olaya", "Hittin"]}`)

		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body["prompt"], "Al Olaya, Hittin")
		assert.Equal(t, "analysis", body["answer"].(map[string]any)["reply"])
	})

	t.Run("welcome", func(t *testing.T) {
		srv := newServer(t, seedCatalog(t), stubCompleter{})

		status, body := do(t, srv, http.MethodGet, "/api/v1/chat/welcome", "")

		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body["reply"], "Suhail")
	})

	t.Run("unconfigured", func(t *testing.T) {
		srv := newServer(t, seedCatalog(t), nil)

		status, _ := do(t, srv, http.MethodPost, "/api/v1/chat", `{"message": "Hi"}`)
		assert.Equal(t, http.StatusServiceUnavailable, status)
	})
}
