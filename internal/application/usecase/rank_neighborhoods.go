package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/event"
	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
)

// Preference bonuses awarded per area.
const (
	ReasonPriceTier  = "price_tier"
	ReasonFamilySize = "family_size"

	preferenceBonus = 5.0
)

// RankNeighborhoodsUseCase recommends areas for a set of priorities.
type RankNeighborhoodsUseCase struct {
	catalog   port.Catalog
	scorer    *service.ScoringEngine
	publisher port.EventPublisher
	metrics   *Instruments
	logger    *slog.Logger
}

// NewRankNeighborhoodsUseCase wires dependencies.
func NewRankNeighborhoodsUseCase(
	catalog port.Catalog,
	scorer *service.ScoringEngine,
	publisher port.EventPublisher,
	metrics *Instruments,
	logger *slog.Logger,
) *RankNeighborhoodsUseCase {
	return &RankNeighborhoodsUseCase{
		catalog:   catalog,
		scorer:    scorer,
		publisher: publisher,
		metrics:   metrics,
		logger:    loggerOrDefault(logger),
	}
}

// Execute ranks every catalog neighborhood, best first.
func (uc *RankNeighborhoodsUseCase) Execute(ctx context.Context, req dto.RankNeighborhoodsRequest) (dto.RankNeighborhoodsResponse, error) {
	if req.Budget.IsNegative() {
		return dto.RankNeighborhoodsResponse{}, fmt.Errorf("%w: budget must not be negative", service.ErrInvalidInput)
	}
	if req.MinBedrooms < 0 {
		return dto.RankNeighborhoodsResponse{}, fmt.Errorf("%w: min_bedrooms must not be negative", service.ErrInvalidInput)
	}

	neighborhoods, err := uc.catalog.Neighborhoods(ctx)
	if err != nil {
		return dto.RankNeighborhoodsResponse{}, fmt.Errorf("load neighborhoods: %w", err)
	}
	risks, err := uc.catalog.EnvironmentalRisks(ctx)
	if err != nil {
		return dto.RankNeighborhoodsResponse{}, fmt.Errorf("load environmental risks: %w", err)
	}

	var adjustments []service.ScoreAdjustment
	if req.Budget.IsPositive() || req.MinBedrooms > 0 {
		props, err := uc.catalog.Properties(ctx)
		if err != nil {
			return dto.RankNeighborhoodsResponse{}, fmt.Errorf("load properties: %w", err)
		}
		adjustments = preferenceAdjustments(props, req.Budget, req.MinBedrooms)
	}

	scores, err := uc.scorer.ScoreNeighborhoods(neighborhoods, risks, req.Weights, adjustments)
	if err != nil {
		return dto.RankNeighborhoodsResponse{}, fmt.Errorf("score neighborhoods: %w", err)
	}
	for _, s := range scores {
		if s.EnvironmentDefaulted {
			uc.logger.WarnContext(ctx, "neighborhood has no risk record, using midpoint", "area", s.Neighborhood.Area)
		}
	}

	if req.Limit > 0 && req.Limit < len(scores) {
		scores = scores[:req.Limit]
	}

	resp := dto.RankNeighborhoodsResponse{Results: make([]dto.NeighborhoodScoreResponse, 0, len(scores))}
	for i, s := range scores {
		resp.Results = append(resp.Results, toNeighborhoodScoreResponse(i+1, s))
	}

	uc.metrics.calculated(ctx, "neighborhood_rank")
	if len(scores) > 0 {
		publish(ctx, uc.publisher, uc.logger,
			event.NewNeighborhoodsRanked(scores[0].Neighborhood.Area, scores[0].Score, len(neighborhoods)))
	}

	return resp, nil
}

// preferenceAdjustments awards each area at most one price-tier bonus (a
// listing priced within budget) and one family-size bonus (a listing with at
// least minBedrooms bedrooms).
func preferenceAdjustments(props []model.Property, budget decimal.Decimal, minBedrooms int) []service.ScoreAdjustment {
	var out []service.ScoreAdjustment
	awarded := make(map[[2]string]bool)
	award := func(area, reason string) {
		key := [2]string{area, reason}
		if awarded[key] {
			return
		}
		awarded[key] = true
		out = append(out, service.ScoreAdjustment{Area: area, Reason: reason, Points: preferenceBonus})
	}

	for _, p := range props {
		if budget.IsPositive() && p.Price.Amount().LessThanOrEqual(budget) {
			award(p.Area, ReasonPriceTier)
		}
		if minBedrooms > 0 && p.Bedrooms >= minBedrooms {
			award(p.Area, ReasonFamilySize)
		}
	}
	return out
}
