package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/application/usecase"
)

var errChatUnavailable = errors.New("chat is not configured")

// Handler exposes the advisor use cases as JSON over HTTP.
type Handler struct {
	uc     *usecase.Set
	logger *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(uc *usecase.Set, logger *slog.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// RegisterRoutes attaches the API routes to mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/mortgage/summary", postJSON(h, h.uc.CalculateMortgage.Execute))
	mux.HandleFunc("POST /api/v1/mortgage/schedule", postJSON(h, h.uc.GenerateSchedule.Execute))
	mux.HandleFunc("POST /api/v1/mortgage/affordability", postJSON(h, h.uc.CheckAffordability.Execute))

	mux.HandleFunc("POST /api/v1/neighborhoods/rank", postJSON(h, h.uc.RankNeighborhoods.Execute))
	mux.HandleFunc("GET /api/v1/neighborhoods/compare", h.compareNeighborhoods)

	mux.HandleFunc("POST /api/v1/financing/rank", postJSON(h, h.uc.RankFinancingOffers.Execute))
	mux.HandleFunc("GET /api/v1/financing/offers", h.listOffers)

	mux.HandleFunc("GET /api/v1/properties", h.searchProperties)
	mux.HandleFunc("GET /api/v1/properties/{id}", h.getProperty)

	mux.HandleFunc("GET /api/v1/environment/{area}", h.analyzeEnvironment)
	mux.HandleFunc("GET /api/v1/environment/compare/{riskType}", h.compareRisk)

	mux.HandleFunc("GET /api/v1/consultants", h.listConsultants)
	mux.HandleFunc("GET /api/v1/inspectors", h.listInspectors)

	mux.HandleFunc("GET /api/v1/chat/welcome", h.chatWelcome)
	mux.HandleFunc("POST /api/v1/chat", h.chat)
	mux.HandleFunc("POST /api/v1/insights/{kind}", h.insight)
}

// postJSON decodes the request body into Req and writes the result.
func postJSON[Req, Resp any](h *Handler, exec func(context.Context, Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		h.respond(w, r)(exec(r.Context(), req))
	}
}

// respond writes resp, or the mapped error when err is set.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request) func(any, error) {
	return func(resp any, err error) {
		if err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *Handler) compareNeighborhoods(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.uc.CompareNeighborhoods.Execute(r.Context(), dto.CompareNeighborhoodsRequest{
		Areas: listParam(r, "areas"),
	}))
}

func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.uc.ListFinancingOffers.Execute(r.Context(), dto.ListOffersRequest{Language: language(r)}))
}

func (h *Handler) searchProperties(w http.ResponseWriter, r *http.Request) {
	req := dto.SearchPropertiesRequest{
		Types:    listParam(r, "type"),
		Areas:    listParam(r, "area"),
		Language: language(r),
	}
	var err error
	if req.MinPrice, err = decimalParam(r, "min_price"); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.MaxPrice, err = decimalParam(r, "max_price"); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.Bedrooms, err = intListParam(r, "bedrooms"); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.Bathrooms, err = intListParam(r, "bathrooms"); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.respond(w, r)(h.uc.SearchProperties.Execute(r.Context(), req))
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.uc.GetProperty.Execute(r.Context(), dto.GetPropertyRequest{
		ID:       r.PathValue("id"),
		Language: language(r),
	}))
}

func (h *Handler) analyzeEnvironment(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.uc.AnalyzeEnvironment.Execute(r.Context(), dto.EnvironmentRequest{
		Area:     r.PathValue("area"),
		Language: language(r),
	}))
}

func (h *Handler) compareRisk(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.uc.CompareRisk.Execute(r.Context(), dto.CompareRiskRequest{
		RiskType: r.PathValue("riskType"),
		Language: language(r),
	}))
}

func (h *Handler) listConsultants(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.uc.ListConsultants.Execute(r.Context(), dto.ListConsultantsRequest{
		Specialization: r.URL.Query().Get("specialization"),
		Language:       language(r),
	}))
}

func (h *Handler) listInspectors(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.uc.ListInspectors.Execute(r.Context(), dto.ListInspectorsRequest{
		Area:     r.URL.Query().Get("area"),
		Language: language(r),
	}))
}

func (h *Handler) chatWelcome(w http.ResponseWriter, r *http.Request) {
	if h.uc.Chat == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: errChatUnavailable.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": h.uc.Chat.Welcome()})
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	if h.uc.Chat == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: errChatUnavailable.Error()})
		return
	}
	postJSON(h, h.uc.Chat.Execute)(w, r)
}

func (h *Handler) insight(w http.ResponseWriter, r *http.Request) {
	if h.uc.GenerateInsight == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: errChatUnavailable.Error()})
		return
	}
	var req dto.InsightRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, h.logger, err)
			return
		}
	}
	req.Kind = r.PathValue("kind")
	h.respond(w, r)(h.uc.GenerateInsight.Execute(r.Context(), req))
}
