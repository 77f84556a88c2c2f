package dto

import (
	"github.com/shopspring/decimal"

	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Mortgage
// ---------------------------------------------------------------------------

// MortgageRequest describes a fixed-rate mortgage. When PropertyID is set the
// listing price replaces Price. MonthlyIncome is optional; when positive the
// response carries an affordability verdict.
type MortgageRequest struct {
	PropertyID         string          `json:"property_id,omitempty"`
	Price              decimal.Decimal `json:"price"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent"`
	AnnualRatePercent  decimal.Decimal `json:"annual_rate_percent"`
	TermYears          int             `json:"term_years"`
	MonthlyIncome      decimal.Decimal `json:"monthly_income"`
	Language           string          `json:"language,omitempty"`
}

// AffordabilityRequest asks for a debt-to-income verdict.
type AffordabilityRequest struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	Language       string          `json:"language,omitempty"`
}

// AffordabilityResponse is a debt-to-income verdict.
type AffordabilityResponse struct {
	Level        string          `json:"level"`
	Label        string          `json:"label"`
	DebtToIncome decimal.Decimal `json:"debt_to_income_percent"`
}

// MortgageSummaryResponse is the external form of a mortgage summary.
type MortgageSummaryResponse struct {
	Price                 decimal.Decimal        `json:"price"`
	LoanAmount            decimal.Decimal        `json:"loan_amount"`
	DownPayment           decimal.Decimal        `json:"down_payment"`
	MonthlyPayment        decimal.Decimal        `json:"monthly_payment"`
	TotalPayment          decimal.Decimal        `json:"total_payment"`
	TotalInterest         decimal.Decimal        `json:"total_interest"`
	LoanToValue           decimal.Decimal        `json:"loan_to_value_percent"`
	NumPayments           int                    `json:"num_payments"`
	MonthlyPaymentDisplay string                 `json:"monthly_payment_display"`
	Affordability         *AffordabilityResponse `json:"affordability,omitempty"`
}

// YearlyBreakdownResponse is one loan year of a schedule.
type YearlyBreakdownResponse struct {
	Year             int             `json:"year"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ScheduleResponse is a summary with its yearly schedule.
type ScheduleResponse struct {
	Summary MortgageSummaryResponse   `json:"summary"`
	Years   []YearlyBreakdownResponse `json:"years"`
}

// ---------------------------------------------------------------------------
// Neighborhoods
// ---------------------------------------------------------------------------

// RankNeighborhoodsRequest carries priority weights and optional household
// preferences. A positive Budget awards a price-tier bonus to areas with a
// listing at or below it; a positive MinBedrooms awards a family-size bonus
// to areas with a listing that large.
type RankNeighborhoodsRequest struct {
	Weights     valueobject.PriorityWeights `json:"weights"`
	Budget      decimal.Decimal             `json:"budget"`
	MinBedrooms int                         `json:"min_bedrooms"`
	Limit       int                         `json:"limit,omitempty"`
}

// AdjustmentResponse is one bonus applied to an area.
type AdjustmentResponse struct {
	Reason string  `json:"reason"`
	Points float64 `json:"points"`
}

// NeighborhoodScoreResponse is one ranked area.
type NeighborhoodScoreResponse struct {
	Rank                 int                  `json:"rank"`
	Area                 string               `json:"area"`
	Score                float64              `json:"score"`
	BaseScore            float64              `json:"base_score"`
	EnvironmentalScore   float64              `json:"environmental_score"`
	Bonus                float64              `json:"bonus"`
	Adjustments          []AdjustmentResponse `json:"adjustments,omitempty"`
	EnvironmentDefaulted bool                 `json:"environment_defaulted,omitempty"`
	AboveScale           bool                 `json:"above_scale,omitempty"`
}

// RankNeighborhoodsResponse lists areas best first.
type RankNeighborhoodsResponse struct {
	Results []NeighborhoodScoreResponse `json:"results"`
}

// CompareNeighborhoodsRequest names the areas to compare; empty means all.
type CompareNeighborhoodsRequest struct {
	Areas []string `json:"areas"`
}

// NeighborhoodComparisonResponse is one area in a comparison.
type NeighborhoodComparisonResponse struct {
	Area                string  `json:"area"`
	Safety              float64 `json:"safety"`
	Schools             float64 `json:"schools"`
	Healthcare          float64 `json:"healthcare"`
	Shopping            float64 `json:"shopping"`
	Transportation      float64 `json:"transportation"`
	Quality             float64 `json:"quality"`
	EnvironmentalSafety float64 `json:"environmental_safety"`
	Overall             float64 `json:"overall"`
}

// CompareNeighborhoodsResponse ranks compared areas. Missing lists requested
// areas that lack neighborhood or risk data.
type CompareNeighborhoodsResponse struct {
	Results []NeighborhoodComparisonResponse `json:"results"`
	Best    string                           `json:"best,omitempty"`
	Missing []string                         `json:"missing,omitempty"`
}

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

// EnvironmentRequest selects an area.
type EnvironmentRequest struct {
	Area     string `json:"area"`
	Language string `json:"language,omitempty"`
}

// RiskResponse is one risk value with its level and advice.
type RiskResponse struct {
	Area           string  `json:"area"`
	Type           string  `json:"type"`
	TypeLabel      string  `json:"type_label"`
	Value          float64 `json:"value"`
	Level          string  `json:"level"`
	LevelLabel     string  `json:"level_label"`
	Recommendation string  `json:"recommendation"`
	Description    string  `json:"description"`
}

// EnvironmentResponse is the risk report of one area.
type EnvironmentResponse struct {
	Area               string         `json:"area"`
	EnvironmentalScore float64        `json:"environmental_score"`
	Risks              []RiskResponse `json:"risks"`
	Highest            RiskResponse   `json:"highest"`
}

// CompareRiskRequest selects a risk type.
type CompareRiskRequest struct {
	RiskType string `json:"risk_type"`
	Language string `json:"language,omitempty"`
}

// CompareRiskResponse lists one risk type across areas, worst first.
type CompareRiskResponse struct {
	RiskType string         `json:"risk_type"`
	Label    string         `json:"label"`
	Results  []RiskResponse `json:"results"`
}

// ---------------------------------------------------------------------------
// Financing
// ---------------------------------------------------------------------------

// RankFinancingRequest carries borrower preferences. When Price is positive
// each result includes an estimated monthly payment at the offer's rate.
type RankFinancingRequest struct {
	PreferredTermYears          int             `json:"preferred_term_years"`
	PreferredDownPaymentPercent float64         `json:"preferred_down_payment_percent"`
	RatePreference              string          `json:"rate_preference"`
	EmploymentType              string          `json:"employment_type"`
	PurchasePurpose             string          `json:"purchase_purpose"`
	Price                       decimal.Decimal `json:"price"`
	Language                    string          `json:"language,omitempty"`
}

// FinancingOfferResponse is the external form of a bank offer.
type FinancingOfferResponse struct {
	Bank                  string   `json:"bank"`
	InterestRate          float64  `json:"interest_rate"`
	MaxTermYears          int      `json:"max_term_years"`
	MinDownPaymentPercent float64  `json:"min_down_payment_percent"`
	ProcessingFeePercent  float64  `json:"processing_fee_percent"`
	ShariaCompliant       bool     `json:"sharia_compliant"`
	SpecialOffers         []string `json:"special_offers,omitempty"`
	Requirements          []string `json:"requirements,omitempty"`
}

// OfferScoreResponse is one ranked offer. Label is set for the top three.
type OfferScoreResponse struct {
	Rank                    int                    `json:"rank"`
	Label                   string                 `json:"label,omitempty"`
	Score                   int                    `json:"score"`
	Reasons                 []string               `json:"reasons"`
	Offer                   FinancingOfferResponse `json:"offer"`
	EstimatedMonthlyPayment *decimal.Decimal       `json:"estimated_monthly_payment,omitempty"`
}

// RankFinancingResponse lists offers best first.
type RankFinancingResponse struct {
	Results []OfferScoreResponse `json:"results"`
}

// ListOffersRequest selects the language of bank names.
type ListOffersRequest struct {
	Language string `json:"language,omitempty"`
}

// ---------------------------------------------------------------------------
// Properties and directories
// ---------------------------------------------------------------------------

// SearchPropertiesRequest filters listings. Zero values do not filter.
type SearchPropertiesRequest struct {
	MinPrice  decimal.Decimal `json:"min_price"`
	MaxPrice  decimal.Decimal `json:"max_price"`
	Bedrooms  []int           `json:"bedrooms,omitempty"`
	Bathrooms []int           `json:"bathrooms,omitempty"`
	Types     []string        `json:"types,omitempty"`
	Areas     []string        `json:"areas,omitempty"`
	Language  string          `json:"language,omitempty"`
}

// GetPropertyRequest identifies a listing.
type GetPropertyRequest struct {
	ID       string `json:"id"`
	Language string `json:"language,omitempty"`
}

// PropertyResponse is the external form of a listing. NeighborhoodOverall is
// only filled on the detail endpoint.
type PropertyResponse struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Features            []string        `json:"features"`
	Price               decimal.Decimal `json:"price"`
	PriceDisplay        string          `json:"price_display"`
	SizeSqm             float64         `json:"size_sqm"`
	Bedrooms            int             `json:"bedrooms"`
	Bathrooms           int             `json:"bathrooms"`
	Type                string          `json:"type"`
	Area                string          `json:"area"`
	Rating              float64         `json:"rating"`
	Verified            bool            `json:"verified"`
	DateAdded           string          `json:"date_added,omitempty"`
	ROI                 string          `json:"roi,omitempty"`
	Lat                 float64         `json:"lat"`
	Lng                 float64         `json:"lng"`
	NeighborhoodOverall *float64        `json:"neighborhood_overall,omitempty"`
}

// SearchPropertiesResponse lists matching listings in catalog order.
type SearchPropertiesResponse struct {
	Results []PropertyResponse `json:"results"`
}

// ListConsultantsRequest filters consultants by specialization substring.
type ListConsultantsRequest struct {
	Specialization string `json:"specialization,omitempty"`
	Language       string `json:"language,omitempty"`
}

// ConsultantResponse is the external form of a consultant.
type ConsultantResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Languages       []string `json:"languages"`
	YearsExperience int      `json:"years_experience"`
	Rating          float64  `json:"rating"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
}

// ListInspectorsRequest filters inspectors by service area.
type ListInspectorsRequest struct {
	Area     string `json:"area,omitempty"`
	Language string `json:"language,omitempty"`
}

// InspectorResponse is the external form of an inspector.
type InspectorResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Company        string          `json:"company"`
	ServiceAreas   []string        `json:"service_areas"`
	Certifications []string        `json:"certifications"`
	Rating         float64         `json:"rating"`
	BaseFee        decimal.Decimal `json:"base_fee"`
	BaseFeeDisplay string          `json:"base_fee_display"`
}

// ---------------------------------------------------------------------------
// Chat
// ---------------------------------------------------------------------------

// ChatTurn is one prior message of a conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a user message plus the client-held history.
type ChatRequest struct {
	SessionID string     `json:"session_id,omitempty"`
	Message   string     `json:"message"`
	History   []ChatTurn `json:"history,omitempty"`
}

// ChatResponse carries the reply. Fallback is set when the completion
// failed and Reply holds the static apology.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Outcome   string `json:"outcome"`
	Fallback  bool   `json:"fallback"`
}

// InsightRequest asks for a generated insight. Kind is one of
// "risk_mitigation" and "neighborhood" (both use Area) or "comparison"
// (uses Areas, at least two).
type InsightRequest struct {
	Kind      string   `json:"kind"`
	Area      string   `json:"area,omitempty"`
	Areas     []string `json:"areas,omitempty"`
	SessionID string   `json:"session_id,omitempty"`
}

// InsightResponse is a generated insight and the prompt that produced it.
type InsightResponse struct {
	Prompt string       `json:"prompt"`
	Answer ChatResponse `json:"answer"`
}
