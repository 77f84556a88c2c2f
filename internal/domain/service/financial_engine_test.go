package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/service"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func terms(price, down, rate string, years int) model.MortgageTerms {
	return model.MortgageTerms{
		Price:              d(price),
		DownPaymentPercent: d(down),
		AnnualRatePercent:  d(rate),
		TermYears:          years,
	}
}

func TestComputeAmortization_StandardMortgage(t *testing.T) {
	engine := service.NewFinancialEngine()

	summary, err := engine.ComputeAmortization(terms("2000000", "20", "3.5", 25))
	require.NoError(t, err)

	assert.True(t, summary.LoanAmount.Equal(d("1600000")), "loan %s", summary.LoanAmount)
	assert.True(t, summary.DownPayment.Equal(d("400000")), "down payment %s", summary.DownPayment)
	assert.Equal(t, 300, summary.NumPayments)
	// 1,600,000 * r(1+r)^300 / ((1+r)^300 - 1) with r = 0.035/12.
	assert.True(t, summary.MonthlyPayment.Equal(d("8009.98")), "monthly %s", summary.MonthlyPayment)
	assert.True(t, summary.TotalPayment.Equal(d("2402994")), "total %s", summary.TotalPayment)
	assert.True(t, summary.TotalInterest.Equal(d("802994")), "interest %s", summary.TotalInterest)
	assert.True(t, summary.LoanToValue.Equal(d("80")), "ltv %s", summary.LoanToValue)
}

func TestComputeAmortization_ZeroRate(t *testing.T) {
	engine := service.NewFinancialEngine()

	summary, err := engine.ComputeAmortization(terms("1000000", "0", "0", 10))
	require.NoError(t, err)

	assert.True(t, summary.MonthlyPayment.Equal(summary.LoanAmount.Div(decimal.NewFromInt(120))))
	assert.Equal(t, "8333.33", summary.MonthlyPayment.StringFixed(2))
	assert.True(t, summary.TotalInterest.IsZero())
	assert.True(t, summary.TotalPayment.Equal(d("1000000")))
}

func TestComputeAmortization_PaymentInvariant(t *testing.T) {
	engine := service.NewFinancialEngine()
	tolerance := d("0.000001")

	for _, price := range []string{"650000", "1200000", "7500000"} {
		for _, down := range []string{"0", "10", "30", "99.5"} {
			for _, rate := range []string{"0.5", "3.5", "7.25"} {
				for _, years := range []int{1, 5, 25, 30} {
					s, err := engine.ComputeAmortization(terms(price, down, rate, years))
					require.NoError(t, err)

					assert.True(t, s.MonthlyPayment.IsPositive(), "payment for %s/%s/%s/%d", price, down, rate, years)
					expected := s.MonthlyPayment.Mul(decimal.NewFromInt(int64(years * 12)))
					assert.True(t, s.TotalPayment.Sub(expected).Abs().LessThan(tolerance))
					assert.False(t, s.TotalInterest.IsNegative())
				}
			}
		}
	}
}

func TestComputeAmortization_SmallLoansAndTinyRates(t *testing.T) {
	engine := service.NewFinancialEngine()

	tests := []struct {
		name  string
		terms model.MortgageTerms
	}{
		{"one riyal over 30 years", terms("1", "0", "3.5", 30)},
		{"ten riyals over 25 years", terms("10", "0", "0.5", 25)},
		{"almost fully paid down", terms("1000", "99.9", "4", 30)},
		{"rate of a billionth percent", terms("1000000", "0", "0.000000001", 10)},
		{"rate below float resolution", terms("1000000", "0", "0.0000000000001", 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := engine.ComputeAmortization(tt.terms)
			require.NoError(t, err)

			assert.True(t, s.MonthlyPayment.IsPositive(), "monthly %s", s.MonthlyPayment)
			assert.False(t, s.TotalInterest.IsNegative(), "interest %s", s.TotalInterest)
			assert.True(t, s.TotalPayment.GreaterThanOrEqual(s.LoanAmount), "total %s", s.TotalPayment)
		})
	}
}

func TestComputeAmortization_InvalidInput(t *testing.T) {
	engine := service.NewFinancialEngine()

	tests := []struct {
		name  string
		terms model.MortgageTerms
		field string
	}{
		{"zero price", terms("0", "20", "3.5", 25), "price"},
		{"negative price", terms("-1", "20", "3.5", 25), "price"},
		{"negative down payment", terms("1000000", "-5", "3.5", 25), "down_payment_percent"},
		{"down payment over 100", terms("1000000", "101", "3.5", 25), "down_payment_percent"},
		{"negative rate", terms("1000000", "20", "-1", 25), "annual_rate_percent"},
		{"zero term", terms("1000000", "20", "3.5", 0), "term_years"},
		{"non-finite payment", terms("1000000", "20", "1000000", 100), "terms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ComputeAmortization(tt.terms)
			require.ErrorIs(t, err, service.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestAmortizationSchedule_Invariants(t *testing.T) {
	engine := service.NewFinancialEngine()
	in := terms("2000000", "20", "3.5", 25)

	seq, err := engine.AmortizationSchedule(in)
	require.NoError(t, err)

	var years []model.YearlyBreakdown
	for y := range seq {
		years = append(years, y)
	}
	require.Len(t, years, 25)

	principal := decimal.Zero
	for i, y := range years {
		assert.Equal(t, i+1, y.Year)
		assert.False(t, y.RemainingBalance.IsNegative())
		assert.True(t, y.TotalPaid.Equal(y.Principal.Add(y.Interest)))
		principal = principal.Add(y.Principal)
	}
	assert.True(t, principal.Equal(d("1600000")), "principal sum %s", principal)
	assert.True(t, years[24].RemainingBalance.IsZero())

	// Balances fall year over year and interest shrinks as principal grows.
	assert.True(t, years[0].RemainingBalance.GreaterThan(years[1].RemainingBalance))
	assert.True(t, years[0].Interest.GreaterThan(years[24].Interest))
}

func TestAmortizationSchedule_Restartable(t *testing.T) {
	engine := service.NewFinancialEngine()
	seq, err := engine.AmortizationSchedule(terms("850000", "10", "4.1", 15))
	require.NoError(t, err)

	collect := func() []model.YearlyBreakdown {
		var out []model.YearlyBreakdown
		for y := range seq {
			out = append(out, y)
		}
		return out
	}
	assert.Equal(t, collect(), collect())

	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestAmortizationSchedule_ZeroRate(t *testing.T) {
	engine := service.NewFinancialEngine()
	seq, err := engine.AmortizationSchedule(terms("1000000", "0", "0", 10))
	require.NoError(t, err)

	principal := decimal.Zero
	var last model.YearlyBreakdown
	for y := range seq {
		assert.True(t, y.Interest.IsZero())
		principal = principal.Add(y.Principal)
		last = y
	}
	assert.Equal(t, 10, last.Year)
	assert.True(t, principal.Equal(d("1000000")))
	assert.True(t, last.RemainingBalance.IsZero())
}

func TestAmortizationSchedule_InvalidInput(t *testing.T) {
	_, err := service.NewFinancialEngine().AmortizationSchedule(terms("0", "0", "3", 10))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestClassifyAffordability(t *testing.T) {
	engine := service.NewFinancialEngine()
	income := d("20000")

	tests := []struct {
		payment string
		want    valueobject.AffordabilityLevel
		dti     string
	}{
		{"0", valueobject.AffordabilityAffordable, "0"},
		{"6000", valueobject.AffordabilityAffordable, "30"},
		{"6000.02", valueobject.AffordabilityModeratelyAffordable, "30.0001"},
		{"8000", valueobject.AffordabilityModeratelyAffordable, "40"},
		{"8002", valueobject.AffordabilityPotentiallyUnaffordable, "40.01"},
		{"25000", valueobject.AffordabilityPotentiallyUnaffordable, "125"},
	}
	for _, tt := range tests {
		t.Run(tt.payment, func(t *testing.T) {
			got, err := engine.ClassifyAffordability(d(tt.payment), income)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Level)
			assert.True(t, got.DebtToIncome.Equal(d(tt.dti)), "dti %s", got.DebtToIncome)
		})
	}
}

func TestClassifyAffordability_Monotonic(t *testing.T) {
	engine := service.NewFinancialEngine()
	income := d("15000")

	prev := -1
	for payment := int64(0); payment <= 15000; payment += 250 {
		got, err := engine.ClassifyAffordability(decimal.NewFromInt(payment), income)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Level.Severity(), prev, "payment %d", payment)
		prev = got.Level.Severity()
	}
}

func TestClassifyAffordability_InvalidIncome(t *testing.T) {
	engine := service.NewFinancialEngine()

	for _, income := range []string{"0", "-100"} {
		_, err := engine.ClassifyAffordability(d("5000"), d(income))
		require.ErrorIs(t, err, service.ErrInvalidInput)
	}

	_, err := engine.ClassifyAffordability(d("-1"), d("5000"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
