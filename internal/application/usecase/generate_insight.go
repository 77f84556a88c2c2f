package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// Insight kinds.
const (
	InsightRiskMitigation = "risk_mitigation"
	InsightNeighborhood   = "neighborhood"
	InsightComparison     = "comparison"
)

// GenerateInsightUseCase builds an analysis prompt from catalog data and
// sends it through the chat use case.
type GenerateInsightUseCase struct {
	catalog port.Catalog
	scorer  *service.ScoringEngine
	chat    *ChatUseCase
}

// NewGenerateInsightUseCase wires dependencies.
func NewGenerateInsightUseCase(catalog port.Catalog, scorer *service.ScoringEngine, chat *ChatUseCase) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{catalog: catalog, scorer: scorer, chat: chat}
}

func (uc *GenerateInsightUseCase) Execute(ctx context.Context, req dto.InsightRequest) (dto.InsightResponse, error) {
	var (
		prompt string
		err    error
	)
	switch req.Kind {
	case InsightRiskMitigation:
		prompt, err = uc.riskPrompt(ctx, req.Area)
	case InsightNeighborhood:
		prompt, err = uc.neighborhoodPrompt(ctx, req.Area)
	case InsightComparison:
		prompt, err = uc.comparisonPrompt(ctx, req.Areas)
	default:
		err = fmt.Errorf("%w: unknown insight kind %q", service.ErrInvalidInput, req.Kind)
	}
	if err != nil {
		return dto.InsightResponse{}, err
	}

	answer, err := uc.chat.Execute(ctx, dto.ChatRequest{SessionID: req.SessionID, Message: prompt})
	if err != nil {
		return dto.InsightResponse{}, fmt.Errorf("generate insight: %w", err)
	}
	return dto.InsightResponse{Prompt: prompt, Answer: answer}, nil
}

// riskPrompt asks for mitigation of the area's highest risk.
func (uc *GenerateInsightUseCase) riskPrompt(ctx context.Context, area string) (string, error) {
	risk, err := uc.catalog.EnvironmentalRisk(ctx, area)
	if err != nil {
		return "", fmt.Errorf("find environmental risk: %w", err)
	}
	highest := service.AnalyzeEnvironment(risk).Highest
	return fmt.Sprintf(
		"What are the best ways to mitigate %s in %s, Riyadh, which has a risk level of %g%%? "+
			"Give 4-5 specific recommendations. Be concise.",
		highest.Type.Label().In(valueobject.English), risk.Area, highest.Value,
	), nil
}

func (uc *GenerateInsightUseCase) neighborhoodPrompt(ctx context.Context, area string) (string, error) {
	n, err := uc.catalog.Neighborhood(ctx, area)
	if err != nil {
		return "", fmt.Errorf("find neighborhood: %w", err)
	}
	return fmt.Sprintf(
		"Give a detailed analysis of the %s neighborhood in Riyadh for a potential property buyer or renter. "+
			"Include information about the lifestyle, typical residents, nearby attractions, and investment potential. "+
			"The neighborhood has safety rating of %g%%, schools rating of %g%%, healthcare rating of %g%%, "+
			"shopping rating of %g%%, and transportation rating of %g%%. Be concise but specific.",
		n.Area, n.Safety, n.Schools, n.Healthcare, n.Shopping, n.Transportation,
	), nil
}

func (uc *GenerateInsightUseCase) comparisonPrompt(ctx context.Context, areas []string) (string, error) {
	if len(areas) < 2 {
		return "", fmt.Errorf("%w: comparison needs at least two areas", service.ErrInvalidInput)
	}
	neighborhoods, err := uc.catalog.Neighborhoods(ctx)
	if err != nil {
		return "", fmt.Errorf("load neighborhoods: %w", err)
	}
	risks, err := uc.catalog.EnvironmentalRisks(ctx)
	if err != nil {
		return "", fmt.Errorf("load environmental risks: %w", err)
	}

	ranked, missing := uc.scorer.CompareNeighborhoods(neighborhoods, risks, areas)
	if len(missing) > 0 {
		return "", fmt.Errorf("compare neighborhoods %s: %w", strings.Join(missing, ", "), port.ErrNotFound)
	}

	var table strings.Builder
	for _, c := range ranked {
		n := c.Neighborhood
		fmt.Fprintf(&table, "%s: safety %g, schools %g, healthcare %g, shopping %g, transportation %g, "+
			"quality %.1f, environmental safety %.1f, overall %.1f. ",
			n.Area, n.Safety, n.Schools, n.Healthcare, n.Shopping, n.Transportation,
			c.Quality, c.EnvironmentalSafety, c.Overall)
	}

	return fmt.Sprintf(
		"Compare these neighborhoods in Riyadh as potential areas to buy or rent property: %s. "+
			"Consider lifestyle differences, investment potential, and suitability for different types of residents "+
			"(families, singles, professionals, etc.). Based on the data: %s Be concise but specific.",
		strings.Join(areas, ", "), strings.TrimSpace(table.String()),
	), nil
}
