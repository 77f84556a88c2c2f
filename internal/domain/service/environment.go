package service

import (
	"slices"

	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// RiskAssessment is one risk value with its level.
type RiskAssessment struct {
	Area  string
	Type  valueobject.RiskType
	Level valueobject.RiskLevel
	Value float64
}

// EnvironmentReport summarizes the risks of one area.
type EnvironmentReport struct {
	Area               string
	Risks              []RiskAssessment
	Highest            RiskAssessment
	EnvironmentalScore float64
}

// AnalyzeEnvironment classifies every risk of an area and picks the highest.
func AnalyzeEnvironment(r model.EnvironmentalRisk) EnvironmentReport {
	report := EnvironmentReport{Area: r.Area, EnvironmentalScore: r.SafetyScore()}
	for _, t := range valueobject.RiskTypes {
		report.Risks = append(report.Risks, assess(r, t))
	}
	highest, _ := r.Highest()
	report.Highest = assess(r, highest)
	return report
}

// CompareRisk lists one risk type across areas, highest value first.
func CompareRisk(risks []model.EnvironmentalRisk, t valueobject.RiskType) []RiskAssessment {
	out := make([]RiskAssessment, 0, len(risks))
	for _, r := range risks {
		out = append(out, assess(r, t))
	}
	slices.SortStableFunc(out, func(a, b RiskAssessment) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})
	return out
}

func assess(r model.EnvironmentalRisk, t valueobject.RiskType) RiskAssessment {
	v := r.Value(t)
	return RiskAssessment{Area: r.Area, Type: t, Level: valueobject.ClassifyRisk(v), Value: v}
}
