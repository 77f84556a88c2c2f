package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/event"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
)

// GenerateScheduleUseCase computes a mortgage summary and its yearly
// amortization schedule.
type GenerateScheduleUseCase struct {
	catalog   port.Catalog
	engine    *service.FinancialEngine
	publisher port.EventPublisher
	metrics   *Instruments
	logger    *slog.Logger
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(
	catalog port.Catalog,
	engine *service.FinancialEngine,
	publisher port.EventPublisher,
	metrics *Instruments,
	logger *slog.Logger,
) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{
		catalog:   catalog,
		engine:    engine,
		publisher: publisher,
		metrics:   metrics,
		logger:    loggerOrDefault(logger),
	}
}

// Execute returns the summary and one entry per loan year.
func (uc *GenerateScheduleUseCase) Execute(ctx context.Context, req dto.MortgageRequest) (dto.ScheduleResponse, error) {
	terms, err := resolveTerms(ctx, uc.catalog, req)
	if err != nil {
		return dto.ScheduleResponse{}, err
	}

	summary, err := uc.engine.ComputeAmortization(terms)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("compute amortization: %w", err)
	}
	schedule, err := uc.engine.AmortizationSchedule(terms)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("build schedule: %w", err)
	}

	resp := dto.ScheduleResponse{
		Summary: toSummaryResponse(summary),
		Years:   make([]dto.YearlyBreakdownResponse, 0, terms.TermYears),
	}
	for y := range schedule {
		resp.Years = append(resp.Years, toYearResponse(y))
	}

	uc.metrics.calculated(ctx, "mortgage_schedule")
	publish(ctx, uc.publisher, uc.logger, event.NewMortgageCalculated(
		req.PropertyID, terms.Price, summary.LoanAmount, summary.MonthlyPayment,
		terms.AnnualRatePercent, terms.TermYears, "",
	))

	return resp, nil
}
