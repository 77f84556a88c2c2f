package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/event"
	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
)

// CalculateMortgageUseCase computes a mortgage summary, optionally with an
// affordability verdict.
type CalculateMortgageUseCase struct {
	catalog   port.Catalog
	engine    *service.FinancialEngine
	publisher port.EventPublisher
	metrics   *Instruments
	logger    *slog.Logger
}

// NewCalculateMortgageUseCase wires dependencies.
func NewCalculateMortgageUseCase(
	catalog port.Catalog,
	engine *service.FinancialEngine,
	publisher port.EventPublisher,
	metrics *Instruments,
	logger *slog.Logger,
) *CalculateMortgageUseCase {
	return &CalculateMortgageUseCase{
		catalog:   catalog,
		engine:    engine,
		publisher: publisher,
		metrics:   metrics,
		logger:    loggerOrDefault(logger),
	}
}

// Execute computes the summary for req.
func (uc *CalculateMortgageUseCase) Execute(ctx context.Context, req dto.MortgageRequest) (dto.MortgageSummaryResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return dto.MortgageSummaryResponse{}, err
	}

	terms, err := resolveTerms(ctx, uc.catalog, req)
	if err != nil {
		return dto.MortgageSummaryResponse{}, err
	}

	summary, err := uc.engine.ComputeAmortization(terms)
	if err != nil {
		return dto.MortgageSummaryResponse{}, fmt.Errorf("compute amortization: %w", err)
	}
	resp := toSummaryResponse(summary)

	var level string
	if !req.MonthlyIncome.IsZero() {
		aff, err := uc.engine.ClassifyAffordability(summary.MonthlyPayment, req.MonthlyIncome)
		if err != nil {
			return dto.MortgageSummaryResponse{}, fmt.Errorf("classify affordability: %w", err)
		}
		resp.Affordability = toAffordabilityResponse(aff, lang)
		level = aff.Level.String()
	}

	uc.metrics.calculated(ctx, "mortgage_summary")
	publish(ctx, uc.publisher, uc.logger, event.NewMortgageCalculated(
		req.PropertyID, terms.Price, summary.LoanAmount, summary.MonthlyPayment,
		terms.AnnualRatePercent, terms.TermYears, level,
	))

	return resp, nil
}

// resolveTerms builds mortgage terms from req, taking the price from the
// catalog when a property is named.
func resolveTerms(ctx context.Context, catalog port.Catalog, req dto.MortgageRequest) (model.MortgageTerms, error) {
	terms := model.MortgageTerms{
		Price:              req.Price,
		DownPaymentPercent: req.DownPaymentPercent,
		AnnualRatePercent:  req.AnnualRatePercent,
		TermYears:          req.TermYears,
	}
	if req.PropertyID == "" {
		return terms, nil
	}

	p, err := catalog.Property(ctx, req.PropertyID)
	if err != nil {
		return model.MortgageTerms{}, fmt.Errorf("find property: %w", err)
	}
	terms.Price = p.Price.Amount()
	return terms, nil
}
