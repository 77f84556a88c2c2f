package valueobject

import (
	"fmt"
	"strings"
)

func normalizeEnum(s string) string {
	s = strings.TrimSpace(strings.ToUpper(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// ---------------------------------------------------------------------------
// RatePreference
// ---------------------------------------------------------------------------

// RatePreference is the borrower's preferred financing structure.
type RatePreference struct {
	value string
}

const (
	ratePreferenceFixed    = "FIXED"
	ratePreferenceVariable = "VARIABLE"
	ratePreferenceIslamic  = "ISLAMIC"
)

var (
	RatePreferenceFixed    = RatePreference{value: ratePreferenceFixed}
	RatePreferenceVariable = RatePreference{value: ratePreferenceVariable}
	RatePreferenceIslamic  = RatePreference{value: ratePreferenceIslamic}
)

var validRatePreferences = map[string]RatePreference{
	ratePreferenceFixed:    RatePreferenceFixed,
	ratePreferenceVariable: RatePreferenceVariable,
	ratePreferenceIslamic:  RatePreferenceIslamic,
}

// NewRatePreference parses a rate preference.
func NewRatePreference(s string) (RatePreference, error) {
	v, ok := validRatePreferences[normalizeEnum(s)]
	if !ok {
		return RatePreference{}, fmt.Errorf("invalid rate preference: %q", s)
	}
	return v, nil
}

func (r RatePreference) String() string { return r.value }

func (r RatePreference) IsZero() bool { return r.value == "" }

func (r RatePreference) Equal(other RatePreference) bool { return r.value == other.value }

// ---------------------------------------------------------------------------
// EmploymentType
// ---------------------------------------------------------------------------

// EmploymentType is the borrower's employment category. Banks publish special
// offers keyed on it.
type EmploymentType struct {
	value string
}

const (
	employmentGovernment   = "GOVERNMENT"
	employmentPrivate      = "PRIVATE"
	employmentSelfEmployed = "SELF_EMPLOYED"
	employmentRetired      = "RETIRED"
)

var (
	EmploymentGovernment   = EmploymentType{value: employmentGovernment}
	EmploymentPrivate      = EmploymentType{value: employmentPrivate}
	EmploymentSelfEmployed = EmploymentType{value: employmentSelfEmployed}
	EmploymentRetired      = EmploymentType{value: employmentRetired}
)

var validEmploymentTypes = map[string]EmploymentType{
	employmentGovernment:   EmploymentGovernment,
	employmentPrivate:      EmploymentPrivate,
	employmentSelfEmployed: EmploymentSelfEmployed,
	employmentRetired:      EmploymentRetired,
}

// NewEmploymentType parses an employment type.
func NewEmploymentType(s string) (EmploymentType, error) {
	v, ok := validEmploymentTypes[normalizeEnum(s)]
	if !ok {
		return EmploymentType{}, fmt.Errorf("invalid employment type: %q", s)
	}
	return v, nil
}

func (e EmploymentType) String() string { return e.value }

func (e EmploymentType) IsZero() bool { return e.value == "" }

func (e EmploymentType) Equal(other EmploymentType) bool { return e.value == other.value }

// SpecialOffer is the special-offer key a bank uses for this employment type.
func (e EmploymentType) SpecialOffer() string {
	switch e.value {
	case employmentGovernment:
		return SpecialOfferGovernmentEmployee
	case employmentPrivate:
		return SpecialOfferPrivateSector
	case employmentSelfEmployed:
		return SpecialOfferSelfEmployed
	case employmentRetired:
		return SpecialOfferRetiree
	}
	return ""
}

// ---------------------------------------------------------------------------
// PurchasePurpose
// ---------------------------------------------------------------------------

// PurchasePurpose is why the borrower is buying.
type PurchasePurpose struct {
	value string
}

const (
	purposeFirstHome  = "FIRST_HOME"
	purposeInvestment = "INVESTMENT"
	purposeUpgrade    = "UPGRADE"
	purposeVacation   = "VACATION"
)

var (
	PurposeFirstHome  = PurchasePurpose{value: purposeFirstHome}
	PurposeInvestment = PurchasePurpose{value: purposeInvestment}
	PurposeUpgrade    = PurchasePurpose{value: purposeUpgrade}
	PurposeVacation   = PurchasePurpose{value: purposeVacation}
)

var validPurchasePurposes = map[string]PurchasePurpose{
	purposeFirstHome:  PurposeFirstHome,
	purposeInvestment: PurposeInvestment,
	purposeUpgrade:    PurposeUpgrade,
	purposeVacation:   PurposeVacation,
}

// NewPurchasePurpose parses a purchase purpose.
func NewPurchasePurpose(s string) (PurchasePurpose, error) {
	v, ok := validPurchasePurposes[normalizeEnum(s)]
	if !ok {
		return PurchasePurpose{}, fmt.Errorf("invalid purchase purpose: %q", s)
	}
	return v, nil
}

func (p PurchasePurpose) String() string { return p.value }

func (p PurchasePurpose) IsZero() bool { return p.value == "" }

func (p PurchasePurpose) Equal(other PurchasePurpose) bool { return p.value == other.value }

// SpecialOffer is the special-offer key a bank uses for this purpose.
func (p PurchasePurpose) SpecialOffer() string {
	switch p.value {
	case purposeFirstHome:
		return SpecialOfferFirstHome
	case purposeInvestment:
		return SpecialOfferInvestor
	case purposeUpgrade:
		return SpecialOfferUpgrade
	case purposeVacation:
		return SpecialOfferSecondHome
	}
	return ""
}

// Special-offer keys as they appear in the bank catalog.
const (
	SpecialOfferGovernmentEmployee = "government_employee"
	SpecialOfferPrivateSector      = "private_sector"
	SpecialOfferSelfEmployed       = "self_employed"
	SpecialOfferRetiree            = "retiree"
	SpecialOfferFirstHome          = "first_home"
	SpecialOfferInvestor           = "investor"
	SpecialOfferUpgrade            = "upgrade"
	SpecialOfferSecondHome         = "second_home"
)
