package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskType
// ---------------------------------------------------------------------------

// RiskType names one environmental risk dimension of an area.
type RiskType struct {
	value string
}

const (
	riskTypeFlood        = "FLOOD"
	riskTypeAirPollution = "AIR_POLLUTION"
	riskTypeHeatIsland   = "HEAT_ISLAND"
	riskTypeWaterQuality = "WATER_QUALITY"
)

var (
	RiskTypeFlood        = RiskType{value: riskTypeFlood}
	RiskTypeAirPollution = RiskType{value: riskTypeAirPollution}
	RiskTypeHeatIsland   = RiskType{value: riskTypeHeatIsland}
	RiskTypeWaterQuality = RiskType{value: riskTypeWaterQuality}
)

// RiskTypes lists every risk type in display order.
var RiskTypes = []RiskType{RiskTypeFlood, RiskTypeAirPollution, RiskTypeHeatIsland, RiskTypeWaterQuality}

var validRiskTypes = map[string]RiskType{
	riskTypeFlood:        RiskTypeFlood,
	riskTypeAirPollution: RiskTypeAirPollution,
	riskTypeHeatIsland:   RiskTypeHeatIsland,
	riskTypeWaterQuality: RiskTypeWaterQuality,
}

// NewRiskType parses a risk type. Lower-case and hyphenated forms such as
// "air-pollution" are accepted.
func NewRiskType(s string) (RiskType, error) {
	v, ok := validRiskTypes[normalizeEnum(s)]
	if !ok {
		return RiskType{}, fmt.Errorf("invalid risk type: %q", s)
	}
	return v, nil
}

func (r RiskType) String() string { return r.value }

func (r RiskType) IsZero() bool { return r.value == "" }

func (r RiskType) Equal(other RiskType) bool { return r.value == other.value }

// Label returns the localizable label for the risk type.
func (r RiskType) Label() Label {
	switch r.value {
	case riskTypeAirPollution:
		return LabelAirPollution
	case riskTypeHeatIsland:
		return LabelHeatIsland
	case riskTypeWaterQuality:
		return LabelWaterQuality
	default:
		return LabelFlood
	}
}

// ---------------------------------------------------------------------------
// RiskLevel
// ---------------------------------------------------------------------------

// RiskLevel buckets a 0..100 risk value.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow    = "LOW"
	riskLevelMedium = "MEDIUM"
	riskLevelHigh   = "HIGH"
)

var (
	RiskLevelLow    = RiskLevel{value: riskLevelLow}
	RiskLevelMedium = RiskLevel{value: riskLevelMedium}
	RiskLevelHigh   = RiskLevel{value: riskLevelHigh}
)

// ClassifyRisk maps a risk value to its level: below 30 is low, below 60 is
// medium, anything else is high.
func ClassifyRisk(value float64) RiskLevel {
	switch {
	case value < 30:
		return RiskLevelLow
	case value < 60:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

func (r RiskLevel) String() string { return r.value }

func (r RiskLevel) IsZero() bool { return r.value == "" }

func (r RiskLevel) Equal(other RiskLevel) bool { return r.value == other.value }

// Label returns the localizable label for the level.
func (r RiskLevel) Label() Label {
	switch r.value {
	case riskLevelMedium:
		return LabelRiskMedium
	case riskLevelHigh:
		return LabelRiskHigh
	default:
		return LabelRiskLow
	}
}

// Recommendation returns the advice label attached to the level.
func (r RiskLevel) Recommendation() Label {
	switch r.value {
	case riskLevelMedium:
		return LabelAdviceBasicPrecautions
	case riskLevelHigh:
		return LabelAdviceSpecialMeasures
	default:
		return LabelAdviceNoMeasures
	}
}

// Description returns the longer description label attached to the level.
func (r RiskLevel) Description() Label {
	switch r.value {
	case riskLevelMedium:
		return LabelRiskMediumDescription
	case riskLevelHigh:
		return LabelRiskHighDescription
	default:
		return LabelRiskLowDescription
	}
}
