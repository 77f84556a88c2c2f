package service

import (
	"slices"

	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// Match reasons reported by ScoreFinancingOffers.
const (
	ReasonTermFits         = "term_fits"
	ReasonDownPaymentFits  = "down_payment_fits"
	ReasonShariaCompliant  = "sharia_compliant"
	ReasonEmploymentOffer  = "employment_offer"
	ReasonPurposeOffer     = "purpose_offer"
	ReasonBelowAverageRate = "below_average_rate"
)

// Points awarded per matched predicate.
const (
	pointsTermFits         = 10
	pointsDownPaymentFits  = 10
	pointsShariaCompliant  = 20
	pointsEmploymentOffer  = 15
	pointsPurposeOffer     = 15
	pointsBelowAverageRate = 10
)

// FinancingPreferences describe what the borrower is looking for.
type FinancingPreferences struct {
	RatePreference              valueobject.RatePreference
	EmploymentType              valueobject.EmploymentType
	PurchasePurpose             valueobject.PurchasePurpose
	PreferredDownPaymentPercent float64
	PreferredTermYears          int
}

// MatchReason is one predicate an offer satisfied.
type MatchReason struct {
	Code   string
	Points int
}

// OfferScore is one ranked financing offer.
type OfferScore struct {
	Offer   model.FinancingOffer
	Reasons []MatchReason
	Score   int
}

// ScoreFinancingOffers sums fixed bonuses for each predicate an offer meets
// and ranks offers by descending total. Equal totals keep input order. The
// rate comparison uses the mean interest rate of the given offers.
func (e *ScoringEngine) ScoreFinancingOffers(
	offers []model.FinancingOffer,
	prefs FinancingPreferences,
) ([]OfferScore, error) {
	if prefs.PreferredTermYears <= 0 {
		return nil, invalidInput("preferred_term_years", "must be positive, got %d", prefs.PreferredTermYears)
	}
	if !finite(prefs.PreferredDownPaymentPercent) ||
		prefs.PreferredDownPaymentPercent < 0 || prefs.PreferredDownPaymentPercent > 100 {
		return nil, invalidInput("preferred_down_payment_percent", "must be within [0,100], got %v", prefs.PreferredDownPaymentPercent)
	}
	if len(offers) == 0 {
		return []OfferScore{}, nil
	}

	var rateSum float64
	for _, o := range offers {
		if !finite(o.InterestRate) || !finite(o.MinDownPaymentPercent) {
			return nil, invalidInput("offer", "%s has non-finite terms", o.Bank.EN)
		}
		rateSum += o.InterestRate
	}
	avgRate := rateSum / float64(len(offers))

	scores := make([]OfferScore, 0, len(offers))
	for _, o := range offers {
		s := OfferScore{Offer: o}
		add := func(ok bool, code string, points int) {
			if ok {
				s.Reasons = append(s.Reasons, MatchReason{Code: code, Points: points})
				s.Score += points
			}
		}

		add(o.MaxTermYears >= prefs.PreferredTermYears, ReasonTermFits, pointsTermFits)
		add(o.MinDownPaymentPercent <= prefs.PreferredDownPaymentPercent, ReasonDownPaymentFits, pointsDownPaymentFits)
		add(prefs.RatePreference.Equal(valueobject.RatePreferenceIslamic) && o.ShariaCompliant,
			ReasonShariaCompliant, pointsShariaCompliant)
		add(o.HasSpecialOffer(prefs.EmploymentType.SpecialOffer()), ReasonEmploymentOffer, pointsEmploymentOffer)
		add(o.HasSpecialOffer(prefs.PurchasePurpose.SpecialOffer()), ReasonPurposeOffer, pointsPurposeOffer)
		add(o.InterestRate < avgRate, ReasonBelowAverageRate, pointsBelowAverageRate)

		scores = append(scores, s)
	}

	slices.SortStableFunc(scores, func(a, b OfferScore) int { return b.Score - a.Score })
	return scores, nil
}
