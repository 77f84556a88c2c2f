package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/application/usecase"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
)

// AdvisorHandler serves AdvisorService from the use-case set.
type AdvisorHandler struct {
	UnimplementedAdvisorServiceServer
	uc     *usecase.Set
	logger *slog.Logger
}

// NewAdvisorHandler creates the gRPC handler.
func NewAdvisorHandler(uc *usecase.Set, logger *slog.Logger) *AdvisorHandler {
	return &AdvisorHandler{uc: uc, logger: logger}
}

func (h *AdvisorHandler) CalculateMortgage(ctx context.Context, req *dto.MortgageRequest) (*dto.MortgageSummaryResponse, error) {
	resp, err := h.uc.CalculateMortgage.Execute(ctx, *req)
	return respond(ctx, h.logger, resp, err)
}

func (h *AdvisorHandler) GenerateSchedule(ctx context.Context, req *dto.MortgageRequest) (*dto.ScheduleResponse, error) {
	resp, err := h.uc.GenerateSchedule.Execute(ctx, *req)
	return respond(ctx, h.logger, resp, err)
}

func (h *AdvisorHandler) RankNeighborhoods(ctx context.Context, req *dto.RankNeighborhoodsRequest) (*dto.RankNeighborhoodsResponse, error) {
	resp, err := h.uc.RankNeighborhoods.Execute(ctx, *req)
	return respond(ctx, h.logger, resp, err)
}

func (h *AdvisorHandler) RankFinancingOffers(ctx context.Context, req *dto.RankFinancingRequest) (*dto.RankFinancingResponse, error) {
	resp, err := h.uc.RankFinancingOffers.Execute(ctx, *req)
	return respond(ctx, h.logger, resp, err)
}

func (h *AdvisorHandler) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if h.uc.Chat == nil {
		return nil, status.Error(codes.Unavailable, "chat is not configured")
	}
	resp, err := h.uc.Chat.Execute(ctx, *req)
	return respond(ctx, h.logger, resp, err)
}

func respond[T any](ctx context.Context, logger *slog.Logger, resp T, err error) (*T, error) {
	if err != nil {
		return nil, toStatus(ctx, logger, err)
	}
	return &resp, nil
}

// toStatus maps domain errors to gRPC codes. Internal errors are logged and
// not echoed to the caller.
func toStatus(ctx context.Context, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		logger.ErrorContext(ctx, "rpc failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
