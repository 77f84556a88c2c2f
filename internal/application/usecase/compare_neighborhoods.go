package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
)

// CompareNeighborhoodsUseCase ranks a set of areas by combined quality and
// environmental safety.
type CompareNeighborhoodsUseCase struct {
	catalog port.Catalog
	scorer  *service.ScoringEngine
	metrics *Instruments
	logger  *slog.Logger
}

// NewCompareNeighborhoodsUseCase wires dependencies.
func NewCompareNeighborhoodsUseCase(
	catalog port.Catalog,
	scorer *service.ScoringEngine,
	metrics *Instruments,
	logger *slog.Logger,
) *CompareNeighborhoodsUseCase {
	return &CompareNeighborhoodsUseCase{catalog: catalog, scorer: scorer, metrics: metrics, logger: loggerOrDefault(logger)}
}

// Execute compares req.Areas, or every neighborhood when none are named.
func (uc *CompareNeighborhoodsUseCase) Execute(ctx context.Context, req dto.CompareNeighborhoodsRequest) (dto.CompareNeighborhoodsResponse, error) {
	neighborhoods, err := uc.catalog.Neighborhoods(ctx)
	if err != nil {
		return dto.CompareNeighborhoodsResponse{}, fmt.Errorf("load neighborhoods: %w", err)
	}
	risks, err := uc.catalog.EnvironmentalRisks(ctx)
	if err != nil {
		return dto.CompareNeighborhoodsResponse{}, fmt.Errorf("load environmental risks: %w", err)
	}

	ranked, missing := uc.scorer.CompareNeighborhoods(neighborhoods, risks, req.Areas)
	if len(missing) > 0 {
		uc.logger.InfoContext(ctx, "comparison skipped areas without data", "areas", missing)
	}

	resp := dto.CompareNeighborhoodsResponse{
		Results: make([]dto.NeighborhoodComparisonResponse, 0, len(ranked)),
		Missing: missing,
	}
	for _, c := range ranked {
		resp.Results = append(resp.Results, toComparisonResponse(c))
	}
	if len(ranked) > 0 {
		resp.Best = ranked[0].Neighborhood.Area
	}

	uc.metrics.calculated(ctx, "neighborhood_compare")
	return resp, nil
}
