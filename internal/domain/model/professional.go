package model

import (
	"strings"

	"github.com/suhailre/suhail/pkg/money"
)

// Consultant is a real-estate advisor listed in the directory.
type Consultant struct {
	ID              string
	Name            LocalizedText
	Specialization  string
	Phone           string
	Email           string
	Languages       []string
	Rating          float64
	YearsExperience int
}

// Specializes reports whether the consultant's specialization contains s,
// ignoring case. An empty s matches every consultant.
func (c Consultant) Specializes(s string) bool {
	return s == "" || strings.Contains(strings.ToLower(c.Specialization), strings.ToLower(s))
}

// Inspector is a property inspection provider.
type Inspector struct {
	BaseFee        money.Money
	ID             string
	Name           LocalizedText
	Company        string
	ServiceAreas   []string
	Certifications []string
	Rating         float64
}

// Serves reports whether the inspector covers area. An empty area matches
// every inspector.
func (i Inspector) Serves(area string) bool {
	if area == "" {
		return true
	}
	for _, a := range i.ServiceAreas {
		if SameArea(a, area) {
			return true
		}
	}
	return false
}
