package service

import (
	"iter"
	"math"

	"github.com/shopspring/decimal"

	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// Affordability thresholds on the debt-to-income ratio, in percent.
var (
	affordableMaxDTI = decimal.NewFromInt(30)
	moderateMaxDTI   = decimal.NewFromInt(40)
)

// FinancialEngine performs fixed-rate mortgage arithmetic. It holds no state
// and is safe for concurrent use.
type FinancialEngine struct{}

// NewFinancialEngine returns a new engine instance.
func NewFinancialEngine() *FinancialEngine {
	return &FinancialEngine{}
}

// ComputeAmortization returns the payment summary for terms.
//
//	loan    = price * (1 - down/100)
//	r       = rate / 100 / 12
//	payment = loan * r * (1+r)^n / ((1+r)^n - 1), rounded up to the cent
//
// A zero rate repays the loan in equal unrounded installments and carries no
// interest.
func (e *FinancialEngine) ComputeAmortization(terms model.MortgageTerms) (model.MortgageSummary, error) {
	if err := validateTerms(terms); err != nil {
		return model.MortgageSummary{}, err
	}

	downPayment := terms.Price.Mul(terms.DownPaymentPercent).Div(hundred)
	loan := terms.Price.Sub(downPayment)
	n := terms.NumPayments()

	payment, err := monthlyPayment(loan, terms.AnnualRatePercent, n)
	if err != nil {
		return model.MortgageSummary{}, err
	}

	total := payment.Mul(decimal.NewFromInt(int64(n)))
	interest := total.Sub(loan)
	if terms.AnnualRatePercent.IsZero() {
		total = loan
		interest = decimal.Zero
	}

	return model.MortgageSummary{
		Terms:          terms,
		LoanAmount:     loan,
		DownPayment:    downPayment,
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  interest,
		LoanToValue:    loan.Div(terms.Price).Mul(hundred),
		NumPayments:    n,
	}, nil
}

// AmortizationSchedule returns a lazy sequence of one YearlyBreakdown per loan
// year. The sequence can be ranged over any number of times. Monthly interest
// is rounded to 2 places and the final month pays off whatever balance remains.
func (e *FinancialEngine) AmortizationSchedule(terms model.MortgageTerms) (iter.Seq[model.YearlyBreakdown], error) {
	summary, err := e.ComputeAmortization(terms)
	if err != nil {
		return nil, err
	}

	loan := summary.LoanAmount
	payment := summary.MonthlyPayment
	rate := terms.AnnualRatePercent.Div(hundred).Div(monthsPerYear)
	months := summary.NumPayments

	return func(yield func(model.YearlyBreakdown) bool) {
		balance := loan
		var year model.YearlyBreakdown

		for month := 1; month <= months; month++ {
			interest := balance.Mul(rate).Round(2)
			principal := payment.Sub(interest)
			if month == months || principal.GreaterThan(balance) {
				principal = balance
			}

			balance = balance.Sub(principal)
			if balance.IsNegative() {
				balance = decimal.Zero
			}

			year.Principal = year.Principal.Add(principal)
			year.Interest = year.Interest.Add(interest)
			year.TotalPaid = year.TotalPaid.Add(principal).Add(interest)

			if month%12 == 0 {
				year.Year = month / 12
				year.RemainingBalance = balance
				if !yield(year) {
					return
				}
				year = model.YearlyBreakdown{}
			}
		}
	}, nil
}

// Affordability is the outcome of ClassifyAffordability.
type Affordability struct {
	Level valueobject.AffordabilityLevel
	// DebtToIncome is the payment as a percentage of income.
	DebtToIncome decimal.Decimal
}

// ClassifyAffordability buckets the debt-to-income ratio of a monthly payment:
// at most 30% is affordable, at most 40% moderately affordable, anything
// higher potentially unaffordable.
func (e *FinancialEngine) ClassifyAffordability(monthlyPayment, monthlyIncome decimal.Decimal) (Affordability, error) {
	if !monthlyIncome.IsPositive() {
		return Affordability{}, invalidInput("monthly_income", "must be positive, got %s", monthlyIncome)
	}
	if monthlyPayment.IsNegative() {
		return Affordability{}, invalidInput("monthly_payment", "must not be negative, got %s", monthlyPayment)
	}

	dti := monthlyPayment.Div(monthlyIncome).Mul(hundred)

	level := valueobject.AffordabilityPotentiallyUnaffordable
	switch {
	case dti.LessThanOrEqual(affordableMaxDTI):
		level = valueobject.AffordabilityAffordable
	case dti.LessThanOrEqual(moderateMaxDTI):
		level = valueobject.AffordabilityModeratelyAffordable
	}

	return Affordability{Level: level, DebtToIncome: dti}, nil
}

func validateTerms(t model.MortgageTerms) error {
	if !t.Price.IsPositive() {
		return invalidInput("price", "must be positive, got %s", t.Price)
	}
	if t.DownPaymentPercent.IsNegative() || t.DownPaymentPercent.GreaterThan(hundred) {
		return invalidInput("down_payment_percent", "must be within [0,100], got %s", t.DownPaymentPercent)
	}
	if t.AnnualRatePercent.IsNegative() {
		return invalidInput("annual_rate_percent", "must not be negative, got %s", t.AnnualRatePercent)
	}
	if t.TermYears <= 0 {
		return invalidInput("term_years", "must be positive, got %d", t.TermYears)
	}
	return nil
}

// monthlyPayment evaluates the growth term in float64 and returns to decimal
// for the money arithmetic. The payment is rounded up to the cent so that n
// payments always cover the loan. Expm1/Log1p keep (1+r)^n - 1 accurate for
// rates too small for math.Pow to distinguish from zero.
func monthlyPayment(loan, annualRatePercent decimal.Decimal, n int) (decimal.Decimal, error) {
	if annualRatePercent.IsZero() {
		return loan.Div(decimal.NewFromInt(int64(n))), nil
	}

	r := annualRatePercent.InexactFloat64() / 100 / 12
	growth := math.Expm1(float64(n) * math.Log1p(r))
	p := loan.InexactFloat64() * r * (growth + 1) / growth
	if growth == 0 {
		p = loan.InexactFloat64() / float64(n)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return decimal.Zero, invalidInput("terms", "produce a non-finite payment (rate %s, %d payments)", annualRatePercent, n)
	}
	return decimal.NewFromFloat(p).RoundCeil(2), nil
}
