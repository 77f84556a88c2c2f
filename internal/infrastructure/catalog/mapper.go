package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/pkg/money"
)

// ErrInvalidRecord is returned when a seed record fails validation.
var ErrInvalidRecord = errors.New("invalid catalog record")

func invalidField(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidRecord, field, fmt.Sprintf(format, args...))
}

func text(t yamlText) model.LocalizedText {
	return model.LocalizedText{EN: strings.TrimSpace(t.EN), AR: strings.TrimSpace(t.AR)}
}

func percent(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return invalidField(field, "must be within [0,100], got %v", v)
	}
	return nil
}

func mapProperty(i int, p yamlProperty) (model.Property, error) {
	field := fmt.Sprintf("properties[%d]", i)
	if strings.TrimSpace(p.ID) == "" {
		return model.Property{}, invalidField(field+".id", "id is required")
	}
	if strings.TrimSpace(p.Area) == "" {
		return model.Property{}, invalidField(field+".area", "area is required")
	}

	price, err := money.NewFromString(p.Price, money.SAR.Code())
	if err != nil {
		return model.Property{}, invalidField(field+".price", "%v", err)
	}
	if !price.IsPositive() {
		return model.Property{}, invalidField(field+".price", "must be positive, got %s", p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return model.Property{}, invalidField(field+".rating", "must be within [0,5], got %v", p.Rating)
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 || p.SizeSqm < 0 {
		return model.Property{}, invalidField(field, "size and room counts must not be negative")
	}

	var added time.Time
	if p.DateAdded != "" {
		added, err = time.Parse(time.DateOnly, p.DateAdded)
		if err != nil {
			return model.Property{}, invalidField(field+".date_added", "%v", err)
		}
	}

	return model.Property{
		ID:          strings.TrimSpace(p.ID),
		Title:       text(p.Title),
		Description: text(p.Description),
		FeaturesEN:  p.Features.EN,
		FeaturesAR:  p.Features.AR,
		Price:       price,
		SizeSqm:     p.SizeSqm,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Category:    strings.TrimSpace(p.Type),
		Area:        strings.TrimSpace(p.Area),
		Rating:      p.Rating,
		Verified:    p.Verified,
		DateAdded:   added,
		ROI:         p.ROI,
		Location:    model.Location{Lat: p.Location.Lat, Lng: p.Location.Lng},
	}, nil
}

func mapNeighborhood(i int, n yamlNeighborhood) (model.Neighborhood, error) {
	field := fmt.Sprintf("neighborhoods[%d]", i)
	if strings.TrimSpace(n.Area) == "" {
		return model.Neighborhood{}, invalidField(field+".area", "area is required")
	}
	for name, v := range map[string]float64{
		"safety": n.Safety, "schools": n.Schools, "healthcare": n.Healthcare,
		"shopping": n.Shopping, "transportation": n.Transportation,
	} {
		if err := percent(field+"."+name, v); err != nil {
			return model.Neighborhood{}, err
		}
	}
	return model.Neighborhood{
		Area:           strings.TrimSpace(n.Area),
		Safety:         n.Safety,
		Schools:        n.Schools,
		Healthcare:     n.Healthcare,
		Shopping:       n.Shopping,
		Transportation: n.Transportation,
	}, nil
}

func mapRisk(i int, r yamlRisk) (model.EnvironmentalRisk, error) {
	field := fmt.Sprintf("environmental_risks[%d]", i)
	if strings.TrimSpace(r.Area) == "" {
		return model.EnvironmentalRisk{}, invalidField(field+".area", "area is required")
	}
	for name, v := range map[string]float64{
		"flood": r.Flood, "air_pollution": r.AirPollution,
		"heat_island": r.HeatIsland, "water_quality": r.WaterQuality,
	} {
		if err := percent(field+"."+name, v); err != nil {
			return model.EnvironmentalRisk{}, err
		}
	}
	return model.EnvironmentalRisk{
		Area:         strings.TrimSpace(r.Area),
		Flood:        r.Flood,
		AirPollution: r.AirPollution,
		HeatIsland:   r.HeatIsland,
		WaterQuality: r.WaterQuality,
	}, nil
}

func mapOffer(i int, o yamlOffer) (model.FinancingOffer, error) {
	field := fmt.Sprintf("financing_offers[%d]", i)
	if strings.TrimSpace(o.Bank.EN) == "" {
		return model.FinancingOffer{}, invalidField(field+".bank", "bank name is required")
	}
	for name, v := range map[string]float64{
		"interest_rate": o.InterestRate, "min_down_payment_percent": o.MinDownPaymentPercent,
		"processing_fee_percent": o.ProcessingFeePercent,
	} {
		if err := percent(field+"."+name, v); err != nil {
			return model.FinancingOffer{}, err
		}
	}
	if o.MaxTermYears <= 0 {
		return model.FinancingOffer{}, invalidField(field+".max_term_years", "must be positive, got %d", o.MaxTermYears)
	}
	return model.FinancingOffer{
		Bank:                  text(o.Bank),
		InterestRate:          o.InterestRate,
		MaxTermYears:          o.MaxTermYears,
		MinDownPaymentPercent: o.MinDownPaymentPercent,
		ProcessingFeePercent:  o.ProcessingFeePercent,
		ShariaCompliant:       o.ShariaCompliant,
		SpecialOffers:         o.SpecialOffers,
		Requirements:          o.Requirements,
	}, nil
}

func mapConsultant(i int, c yamlConsultant) (model.Consultant, error) {
	field := fmt.Sprintf("consultants[%d]", i)
	if strings.TrimSpace(c.ID) == "" {
		return model.Consultant{}, invalidField(field+".id", "id is required")
	}
	return model.Consultant{
		ID:              c.ID,
		Name:            text(c.Name),
		Specialization:  c.Specialization,
		Languages:       c.Languages,
		YearsExperience: c.YearsExperience,
		Rating:          c.Rating,
		Phone:           c.Phone,
		Email:           c.Email,
	}, nil
}

func mapInspector(i int, in yamlInspector) (model.Inspector, error) {
	field := fmt.Sprintf("inspectors[%d]", i)
	if strings.TrimSpace(in.ID) == "" {
		return model.Inspector{}, invalidField(field+".id", "id is required")
	}
	fee, err := money.NewFromString(in.BaseFee, money.SAR.Code())
	if err != nil {
		return model.Inspector{}, invalidField(field+".base_fee", "%v", err)
	}
	return model.Inspector{
		ID:             in.ID,
		Name:           text(in.Name),
		Company:        in.Company,
		ServiceAreas:   in.ServiceAreas,
		Certifications: in.Certifications,
		Rating:         in.Rating,
		BaseFee:        fee,
	}, nil
}
