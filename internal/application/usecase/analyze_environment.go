package usecase

import (
	"context"
	"fmt"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// AnalyzeEnvironmentUseCase reports the environmental risks of one area.
type AnalyzeEnvironmentUseCase struct {
	catalog port.Catalog
	metrics *Instruments
}

// NewAnalyzeEnvironmentUseCase wires dependencies.
func NewAnalyzeEnvironmentUseCase(catalog port.Catalog, metrics *Instruments) *AnalyzeEnvironmentUseCase {
	return &AnalyzeEnvironmentUseCase{catalog: catalog, metrics: metrics}
}

// Execute returns every risk of req.Area with its level and advice.
func (uc *AnalyzeEnvironmentUseCase) Execute(ctx context.Context, req dto.EnvironmentRequest) (dto.EnvironmentResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return dto.EnvironmentResponse{}, err
	}

	risk, err := uc.catalog.EnvironmentalRisk(ctx, req.Area)
	if err != nil {
		return dto.EnvironmentResponse{}, fmt.Errorf("find environmental risk: %w", err)
	}

	report := service.AnalyzeEnvironment(risk)
	resp := dto.EnvironmentResponse{
		Area:               report.Area,
		EnvironmentalScore: report.EnvironmentalScore,
		Risks:              make([]dto.RiskResponse, 0, len(report.Risks)),
		Highest:            toRiskResponse(report.Highest, lang),
	}
	for _, r := range report.Risks {
		resp.Risks = append(resp.Risks, toRiskResponse(r, lang))
	}

	uc.metrics.calculated(ctx, "environment_report")
	return resp, nil
}

// CompareRiskUseCase lists one risk type across every area.
type CompareRiskUseCase struct {
	catalog port.Catalog
	metrics *Instruments
}

// NewCompareRiskUseCase wires dependencies.
func NewCompareRiskUseCase(catalog port.Catalog, metrics *Instruments) *CompareRiskUseCase {
	return &CompareRiskUseCase{catalog: catalog, metrics: metrics}
}

// Execute returns the areas ordered from highest to lowest risk.
func (uc *CompareRiskUseCase) Execute(ctx context.Context, req dto.CompareRiskRequest) (dto.CompareRiskResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return dto.CompareRiskResponse{}, err
	}
	riskType, err := valueobject.NewRiskType(req.RiskType)
	if err != nil {
		return dto.CompareRiskResponse{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}

	risks, err := uc.catalog.EnvironmentalRisks(ctx)
	if err != nil {
		return dto.CompareRiskResponse{}, fmt.Errorf("load environmental risks: %w", err)
	}

	compared := service.CompareRisk(risks, riskType)
	resp := dto.CompareRiskResponse{
		RiskType: riskType.String(),
		Label:    riskType.Label().In(lang),
		Results:  make([]dto.RiskResponse, 0, len(compared)),
	}
	for _, r := range compared {
		resp.Results = append(resp.Results, toRiskResponse(r, lang))
	}

	uc.metrics.calculated(ctx, "risk_compare")
	return resp, nil
}
