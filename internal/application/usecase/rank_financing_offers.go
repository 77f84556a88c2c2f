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
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// RankFinancingOffersUseCase recommends bank offers for a borrower.
type RankFinancingOffersUseCase struct {
	catalog   port.Catalog
	scorer    *service.ScoringEngine
	engine    *service.FinancialEngine
	publisher port.EventPublisher
	metrics   *Instruments
	logger    *slog.Logger
}

// NewRankFinancingOffersUseCase wires dependencies.
func NewRankFinancingOffersUseCase(
	catalog port.Catalog,
	scorer *service.ScoringEngine,
	engine *service.FinancialEngine,
	publisher port.EventPublisher,
	metrics *Instruments,
	logger *slog.Logger,
) *RankFinancingOffersUseCase {
	return &RankFinancingOffersUseCase{
		catalog:   catalog,
		scorer:    scorer,
		engine:    engine,
		publisher: publisher,
		metrics:   metrics,
		logger:    loggerOrDefault(logger),
	}
}

// Execute ranks every catalog offer, best first. The top three carry an
// ordinal label.
func (uc *RankFinancingOffersUseCase) Execute(ctx context.Context, req dto.RankFinancingRequest) (dto.RankFinancingResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return dto.RankFinancingResponse{}, err
	}
	prefs, err := toPreferences(req)
	if err != nil {
		return dto.RankFinancingResponse{}, err
	}

	offers, err := uc.catalog.FinancingOffers(ctx)
	if err != nil {
		return dto.RankFinancingResponse{}, fmt.Errorf("load financing offers: %w", err)
	}

	scores, err := uc.scorer.ScoreFinancingOffers(offers, prefs)
	if err != nil {
		return dto.RankFinancingResponse{}, fmt.Errorf("score financing offers: %w", err)
	}

	resp := dto.RankFinancingResponse{Results: make([]dto.OfferScoreResponse, 0, len(scores))}
	for i, s := range scores {
		r := dto.OfferScoreResponse{
			Rank:    i + 1,
			Label:   valueobject.OrdinalLabel(i).In(lang),
			Score:   s.Score,
			Reasons: make([]string, 0, len(s.Reasons)),
			Offer:   toOfferResponse(s.Offer, lang),
		}
		for _, reason := range s.Reasons {
			r.Reasons = append(r.Reasons, reason.Code)
		}
		if req.Price.IsPositive() {
			r.EstimatedMonthlyPayment = uc.estimatePayment(ctx, req.Price, prefs, s.Offer)
		}
		resp.Results = append(resp.Results, r)
	}

	uc.metrics.calculated(ctx, "financing_rank")
	if len(scores) > 0 {
		publish(ctx, uc.publisher, uc.logger,
			event.NewFinancingOffersRanked(scores[0].Offer.Bank.EN, scores[0].Score, len(offers)))
	}

	return resp, nil
}

// estimatePayment prices the loan at the offer's rate, using the larger of
// the preferred and required down payment and the shorter of the preferred
// and maximum term. Offers the engine cannot price get no estimate.
func (uc *RankFinancingOffersUseCase) estimatePayment(ctx context.Context, price decimal.Decimal, prefs service.FinancingPreferences, o model.FinancingOffer) *decimal.Decimal {
	down := max(prefs.PreferredDownPaymentPercent, o.MinDownPaymentPercent)
	term := min(prefs.PreferredTermYears, o.MaxTermYears)

	summary, err := uc.engine.ComputeAmortization(model.MortgageTerms{
		Price:              price,
		DownPaymentPercent: decimal.NewFromFloat(down),
		AnnualRatePercent:  decimal.NewFromFloat(o.InterestRate),
		TermYears:          term,
	})
	if err != nil {
		uc.logger.DebugContext(ctx, "estimate payment skipped", "bank", o.Bank.EN, "error", err)
		return nil
	}
	return &summary.MonthlyPayment
}

func toPreferences(req dto.RankFinancingRequest) (service.FinancingPreferences, error) {
	prefs := service.FinancingPreferences{
		PreferredTermYears:          req.PreferredTermYears,
		PreferredDownPaymentPercent: req.PreferredDownPaymentPercent,
	}

	var err error
	if req.RatePreference != "" {
		if prefs.RatePreference, err = valueobject.NewRatePreference(req.RatePreference); err != nil {
			return service.FinancingPreferences{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
		}
	}
	if req.EmploymentType != "" {
		if prefs.EmploymentType, err = valueobject.NewEmploymentType(req.EmploymentType); err != nil {
			return service.FinancingPreferences{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
		}
	}
	if req.PurchasePurpose != "" {
		if prefs.PurchasePurpose, err = valueobject.NewPurchasePurpose(req.PurchasePurpose); err != nil {
			return service.FinancingPreferences{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
		}
	}
	return prefs, nil
}
