package model

import (
	"slices"
	"strings"
	"time"

	"github.com/suhailre/suhail/internal/domain/valueobject"
	"github.com/suhailre/suhail/pkg/money"
)

// LocalizedText holds the English and Arabic forms of a free-text field.
type LocalizedText struct {
	EN string
	AR string
}

// In returns the text in lang, falling back to English when the Arabic form
// is missing.
func (t LocalizedText) In(lang valueobject.Language) string {
	if lang == valueobject.Arabic && t.AR != "" {
		return t.AR
	}
	return t.EN
}

// Location is a WGS84 coordinate.
type Location struct {
	Lat float64
	Lng float64
}

// Property is a listed property. Properties are loaded once and never mutated.
type Property struct {
	DateAdded   time.Time
	Price       money.Money
	ID          string
	Category    string
	Area        string
	ROI         string
	Title       LocalizedText
	Description LocalizedText
	FeaturesEN  []string
	FeaturesAR  []string
	Location    Location
	SizeSqm     float64
	Rating      float64
	Bedrooms    int
	Bathrooms   int
	Verified    bool
}

// Features returns the feature list in lang.
func (p Property) Features(lang valueobject.Language) []string {
	if lang == valueobject.Arabic && len(p.FeaturesAR) > 0 {
		return p.FeaturesAR
	}
	return p.FeaturesEN
}

// PropertyFilter narrows a property listing. Empty fields do not filter;
// multi-valued fields match any of their values.
type PropertyFilter struct {
	MinPrice   money.Money
	MaxPrice   money.Money
	Bedrooms   []int
	Bathrooms  []int
	Categories []string
	Areas      []string
}

// Matches reports whether p satisfies every populated criterion.
func (f PropertyFilter) Matches(p Property) bool {
	if !p.Price.Between(f.MinPrice.Amount(), f.MaxPrice.Amount()) {
		return false
	}
	if len(f.Bedrooms) > 0 && !slices.Contains(f.Bedrooms, p.Bedrooms) {
		return false
	}
	if len(f.Bathrooms) > 0 && !slices.Contains(f.Bathrooms, p.Bathrooms) {
		return false
	}
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if len(f.Areas) > 0 && !containsFold(f.Areas, p.Area) {
		return false
	}
	return true
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
