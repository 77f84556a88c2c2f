package model

import "github.com/shopspring/decimal"

// MortgageTerms are the inputs of a fixed-rate mortgage calculation.
type MortgageTerms struct {
	Price              decimal.Decimal
	DownPaymentPercent decimal.Decimal
	AnnualRatePercent  decimal.Decimal
	TermYears          int
}

// NumPayments is the number of monthly installments.
func (t MortgageTerms) NumPayments() int { return t.TermYears * 12 }

// MortgageSummary is the result of an amortization calculation.
type MortgageSummary struct {
	Terms          MortgageTerms
	LoanAmount     decimal.Decimal
	DownPayment    decimal.Decimal
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
	// LoanToValue is the loan as a percentage of the price.
	LoanToValue decimal.Decimal
	NumPayments int
}

// YearlyBreakdown aggregates one loan year of an amortization schedule.
type YearlyBreakdown struct {
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	TotalPaid        decimal.Decimal
	RemainingBalance decimal.Decimal
	Year             int
}
