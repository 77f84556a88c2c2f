package usecase

import (
	"context"
	"fmt"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/service"
)

// CheckAffordabilityUseCase classifies a payment against an income.
type CheckAffordabilityUseCase struct {
	engine  *service.FinancialEngine
	metrics *Instruments
}

// NewCheckAffordabilityUseCase wires dependencies.
func NewCheckAffordabilityUseCase(engine *service.FinancialEngine, metrics *Instruments) *CheckAffordabilityUseCase {
	return &CheckAffordabilityUseCase{engine: engine, metrics: metrics}
}

// Execute returns the affordability verdict for req.
func (uc *CheckAffordabilityUseCase) Execute(ctx context.Context, req dto.AffordabilityRequest) (dto.AffordabilityResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return dto.AffordabilityResponse{}, err
	}

	aff, err := uc.engine.ClassifyAffordability(req.MonthlyPayment, req.MonthlyIncome)
	if err != nil {
		return dto.AffordabilityResponse{}, fmt.Errorf("classify affordability: %w", err)
	}

	uc.metrics.calculated(ctx, "affordability")
	return *toAffordabilityResponse(aff, lang), nil
}
