package event

import (
	"github.com/shopspring/decimal"

	"github.com/suhailre/suhail/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// MortgageCalculated is raised after a mortgage summary or schedule is computed.
type MortgageCalculated struct {
	events.BaseEvent
	Price          decimal.Decimal `json:"price"`
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	AnnualRate     decimal.Decimal `json:"annual_rate_percent"`
	TermYears      int             `json:"term_years"`
	Affordability  string          `json:"affordability,omitempty"`
}

func NewMortgageCalculated(
	propertyID string,
	price, loan, payment, rate decimal.Decimal,
	termYears int, affordability string,
) MortgageCalculated {
	return MortgageCalculated{
		BaseEvent:      events.NewBaseEvent("suhail.mortgage.calculated", propertyID, "Mortgage"),
		Price:          price,
		LoanAmount:     loan,
		MonthlyPayment: payment,
		AnnualRate:     rate,
		TermYears:      termYears,
		Affordability:  affordability,
	}
}

// NeighborhoodsRanked is raised after a neighborhood recommendation.
type NeighborhoodsRanked struct {
	events.BaseEvent
	TopArea   string  `json:"top_area"`
	TopScore  float64 `json:"top_score"`
	Candidate int     `json:"candidates"`
}

func NewNeighborhoodsRanked(topArea string, topScore float64, candidates int) NeighborhoodsRanked {
	return NeighborhoodsRanked{
		BaseEvent: events.NewBaseEvent("suhail.neighborhoods.ranked", topArea, "Neighborhood"),
		TopArea:   topArea,
		TopScore:  topScore,
		Candidate: candidates,
	}
}

// FinancingOffersRanked is raised after a financing recommendation.
type FinancingOffersRanked struct {
	events.BaseEvent
	TopBank   string `json:"top_bank"`
	TopScore  int    `json:"top_score"`
	Candidate int    `json:"candidates"`
}

func NewFinancingOffersRanked(topBank string, topScore, candidates int) FinancingOffersRanked {
	return FinancingOffersRanked{
		BaseEvent: events.NewBaseEvent("suhail.financing.ranked", topBank, "FinancingOffer"),
		TopBank:   topBank,
		TopScore:  topScore,
		Candidate: candidates,
	}
}

// ChatAnswered is raised for every chat turn, including fallbacks.
type ChatAnswered struct {
	events.BaseEvent
	Outcome      string `json:"outcome"`
	HistoryTurns int    `json:"history_turns"`
	Fallback     bool   `json:"fallback"`
}

func NewChatAnswered(sessionID, outcome string, historyTurns int, fallback bool) ChatAnswered {
	return ChatAnswered{
		BaseEvent:    events.NewBaseEvent("suhail.chat.answered", sessionID, "ChatSession"),
		Outcome:      outcome,
		HistoryTurns: historyTurns,
		Fallback:     fallback,
	}
}
