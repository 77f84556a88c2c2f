package service

import (
	"math"
	"slices"
	"strings"

	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// defaultEnvironmentalScore stands in for an area without a risk record.
const defaultEnvironmentalScore = 50.0

// ScoreAdjustment is a flat bonus added to one area's weighted score.
type ScoreAdjustment struct {
	Area   string
	Reason string
	Points float64
}

// NeighborhoodScore is one ranked area.
type NeighborhoodScore struct {
	Neighborhood       model.Neighborhood
	Adjustments        []ScoreAdjustment
	EnvironmentalScore float64
	BaseScore          float64
	Bonus              float64
	Score              float64
	// EnvironmentDefaulted is set when no risk record matched the area and
	// the environmental score fell back to 50.
	EnvironmentDefaulted bool
	// AboveScale is set when bonuses pushed Score over 100. Scores are
	// never clamped.
	AboveScale bool
}

// ScoringEngine ranks neighborhoods and financing offers. It holds no state
// and is safe for concurrent use.
type ScoringEngine struct{}

// NewScoringEngine returns a new engine instance.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// ScoreNeighborhoods ranks neighborhoods by the weighted mean of their five
// quality scores and their environmental score (100 minus mean risk), plus
// any flat adjustments for the area. Results are sorted by descending score;
// equal scores keep input order.
func (e *ScoringEngine) ScoreNeighborhoods(
	neighborhoods []model.Neighborhood,
	risks []model.EnvironmentalRisk,
	weights valueobject.PriorityWeights,
	adjustments []ScoreAdjustment,
) ([]NeighborhoodScore, error) {
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	for _, a := range adjustments {
		if !finite(a.Points) {
			return nil, invalidInput("adjustment", "%q for %s is not finite", a.Reason, a.Area)
		}
	}

	riskByArea := indexRisks(risks)
	w, totalWeight := normalizedWeights(weights)

	scores := make([]NeighborhoodScore, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		for _, v := range n.Values() {
			if !finite(v) {
				return nil, invalidInput("neighborhood", "%s has a non-finite score", n.Area)
			}
		}

		s := NeighborhoodScore{Neighborhood: n, EnvironmentalScore: defaultEnvironmentalScore}
		if r, ok := riskByArea[areaKey(n.Area)]; ok {
			s.EnvironmentalScore = r.SafetyScore()
			if !finite(s.EnvironmentalScore) {
				return nil, invalidInput("environmental_risk", "%s has a non-finite score", n.Area)
			}
		} else {
			s.EnvironmentDefaulted = true
		}

		q := n.Values()
		values := [6]float64{q[0], q[1], q[2], q[3], q[4], s.EnvironmentalScore}
		var weighted float64
		for i, v := range values {
			weighted += w[i] * v
		}
		s.BaseScore = weighted / totalWeight

		for _, a := range adjustments {
			if model.SameArea(a.Area, n.Area) {
				s.Adjustments = append(s.Adjustments, a)
				s.Bonus += a.Points
			}
		}
		s.Score = s.BaseScore + s.Bonus
		if !finite(s.Score) {
			return nil, invalidInput("score", "%s has a non-finite score", n.Area)
		}
		s.AboveScale = s.Score > 100

		scores = append(scores, s)
	}

	slices.SortStableFunc(scores, func(a, b NeighborhoodScore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return scores, nil
}

// NeighborhoodComparison is one area in a side-by-side comparison.
type NeighborhoodComparison struct {
	Neighborhood        model.Neighborhood
	Risk                model.EnvironmentalRisk
	Quality             float64
	EnvironmentalSafety float64
	Overall             float64
}

// CompareNeighborhoods scores each requested area as the average of its mean
// quality and its environmental safety, best first. An empty areas list
// compares every neighborhood. Areas lacking either record are skipped and
// returned in missing.
func (e *ScoringEngine) CompareNeighborhoods(
	neighborhoods []model.Neighborhood,
	risks []model.EnvironmentalRisk,
	areas []string,
) (ranked []NeighborhoodComparison, missing []string) {
	if len(areas) == 0 {
		for _, n := range neighborhoods {
			areas = append(areas, n.Area)
		}
	}

	byArea := make(map[string]model.Neighborhood, len(neighborhoods))
	for _, n := range neighborhoods {
		if _, dup := byArea[areaKey(n.Area)]; !dup {
			byArea[areaKey(n.Area)] = n
		}
	}
	riskByArea := indexRisks(risks)

	for _, area := range areas {
		n, okN := byArea[areaKey(area)]
		r, okR := riskByArea[areaKey(area)]
		if !okN || !okR {
			missing = append(missing, area)
			continue
		}
		c := NeighborhoodComparison{
			Neighborhood:        n,
			Risk:                r,
			Quality:             n.QualityMean(),
			EnvironmentalSafety: r.SafetyScore(),
		}
		c.Overall = (c.Quality + c.EnvironmentalSafety) / 2
		ranked = append(ranked, c)
	}

	slices.SortStableFunc(ranked, func(a, b NeighborhoodComparison) int {
		switch {
		case a.Overall > b.Overall:
			return -1
		case a.Overall < b.Overall:
			return 1
		}
		return 0
	})
	return ranked, missing
}

func validateWeights(w valueobject.PriorityWeights) error {
	for _, v := range w.Values() {
		if !finite(v) || v < 0 {
			return invalidInput("weights", "must be finite and non-negative, got %v", v)
		}
	}
	if w.Sum() == 0 {
		return invalidInput("weights", "must not all be zero")
	}
	return nil
}

// normalizedWeights scales the weights so the largest is 1. Only ratios
// matter, and the sum of huge finite weights would otherwise overflow.
func normalizedWeights(weights valueobject.PriorityWeights) ([6]float64, float64) {
	w := weights.Values()
	largest := slices.Max(w[:])
	var total float64
	for i := range w {
		w[i] /= largest
		total += w[i]
	}
	return w, total
}

func indexRisks(risks []model.EnvironmentalRisk) map[string]model.EnvironmentalRisk {
	m := make(map[string]model.EnvironmentalRisk, len(risks))
	for _, r := range risks {
		if _, dup := m[areaKey(r.Area)]; !dup {
			m[areaKey(r.Area)] = r
		}
	}
	return m
}

func areaKey(area string) string {
	return strings.ToLower(strings.TrimSpace(area))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
