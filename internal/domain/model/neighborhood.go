package model

import (
	"strings"

	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// Neighborhood holds the quality scores of an area, each in [0,100].
type Neighborhood struct {
	Area           string
	Safety         float64
	Schools        float64
	Healthcare     float64
	Shopping       float64
	Transportation float64
}

// Values returns the five quality scores in dimension order.
func (n Neighborhood) Values() [5]float64 {
	return [5]float64{n.Safety, n.Schools, n.Healthcare, n.Shopping, n.Transportation}
}

// QualityMean is the plain average of the five quality scores.
func (n Neighborhood) QualityMean() float64 {
	var sum float64
	for _, v := range n.Values() {
		sum += v
	}
	return sum / 5
}

// EnvironmentalRisk holds the risk scores of an area, each in [0,100] where
// higher is worse.
type EnvironmentalRisk struct {
	Area         string
	Flood        float64
	AirPollution float64
	HeatIsland   float64
	WaterQuality float64
}

// Value returns the score for one risk type.
func (r EnvironmentalRisk) Value(t valueobject.RiskType) float64 {
	switch t {
	case valueobject.RiskTypeFlood:
		return r.Flood
	case valueobject.RiskTypeAirPollution:
		return r.AirPollution
	case valueobject.RiskTypeHeatIsland:
		return r.HeatIsland
	case valueobject.RiskTypeWaterQuality:
		return r.WaterQuality
	}
	return 0
}

// Mean is the average of the four risk scores.
func (r EnvironmentalRisk) Mean() float64 {
	return (r.Flood + r.AirPollution + r.HeatIsland + r.WaterQuality) / 4
}

// SafetyScore is 100 minus the mean risk, so higher is better.
func (r EnvironmentalRisk) SafetyScore() float64 {
	return 100 - r.Mean()
}

// Highest returns the risk type with the largest score. Ties keep the first
// type in display order.
func (r EnvironmentalRisk) Highest() (valueobject.RiskType, float64) {
	best := valueobject.RiskTypes[0]
	bestVal := r.Value(best)
	for _, t := range valueobject.RiskTypes[1:] {
		if v := r.Value(t); v > bestVal {
			best, bestVal = t, v
		}
	}
	return best, bestVal
}

// SameArea compares area names case-insensitively.
func SameArea(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
