package valueobject

import "fmt"

// AffordabilityLevel classifies a mortgage payment against monthly income.
type AffordabilityLevel struct {
	value string
}

const (
	affordabilityAffordable              = "AFFORDABLE"
	affordabilityModeratelyAffordable    = "MODERATELY_AFFORDABLE"
	affordabilityPotentiallyUnaffordable = "POTENTIALLY_UNAFFORDABLE"
)

var (
	AffordabilityAffordable              = AffordabilityLevel{value: affordabilityAffordable}
	AffordabilityModeratelyAffordable    = AffordabilityLevel{value: affordabilityModeratelyAffordable}
	AffordabilityPotentiallyUnaffordable = AffordabilityLevel{value: affordabilityPotentiallyUnaffordable}
)

var validAffordabilityLevels = map[string]AffordabilityLevel{
	affordabilityAffordable:              AffordabilityAffordable,
	affordabilityModeratelyAffordable:    AffordabilityModeratelyAffordable,
	affordabilityPotentiallyUnaffordable: AffordabilityPotentiallyUnaffordable,
}

// NewAffordabilityLevel parses a level from its string form.
func NewAffordabilityLevel(s string) (AffordabilityLevel, error) {
	v, ok := validAffordabilityLevels[s]
	if !ok {
		return AffordabilityLevel{}, fmt.Errorf("invalid affordability level: %q", s)
	}
	return v, nil
}

func (a AffordabilityLevel) String() string { return a.value }

func (a AffordabilityLevel) IsZero() bool { return a.value == "" }

func (a AffordabilityLevel) Equal(other AffordabilityLevel) bool { return a.value == other.value }

// Severity orders the levels from 0 (affordable) to 2 (potentially unaffordable).
func (a AffordabilityLevel) Severity() int {
	switch a.value {
	case affordabilityModeratelyAffordable:
		return 1
	case affordabilityPotentiallyUnaffordable:
		return 2
	default:
		return 0
	}
}

// Label returns the localizable label for the level.
func (a AffordabilityLevel) Label() Label {
	switch a.value {
	case affordabilityModeratelyAffordable:
		return LabelModeratelyAffordable
	case affordabilityPotentiallyUnaffordable:
		return LabelPotentiallyUnaffordable
	default:
		return LabelAffordable
	}
}
