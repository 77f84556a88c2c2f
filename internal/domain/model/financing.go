package model

import "slices"

// FinancingOffer is a bank's published home-financing product.
type FinancingOffer struct {
	Bank                  LocalizedText
	SpecialOffers         []string
	Requirements          []string
	InterestRate          float64
	MinDownPaymentPercent float64
	ProcessingFeePercent  float64
	MaxTermYears          int
	ShariaCompliant       bool
}

// HasSpecialOffer reports whether the offer carries the given special-offer key.
func (o FinancingOffer) HasSpecialOffer(key string) bool {
	return key != "" && slices.Contains(o.SpecialOffers, key)
}
