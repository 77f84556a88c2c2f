package usecase

import (
	"time"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/service"
	"github.com/suhailre/suhail/internal/domain/valueobject"
	"github.com/suhailre/suhail/pkg/money"
)

func toSummaryResponse(s model.MortgageSummary) dto.MortgageSummaryResponse {
	return dto.MortgageSummaryResponse{
		Price:                 s.Terms.Price,
		LoanAmount:            s.LoanAmount,
		DownPayment:           s.DownPayment,
		MonthlyPayment:        s.MonthlyPayment,
		TotalPayment:          s.TotalPayment,
		TotalInterest:         s.TotalInterest,
		LoanToValue:           s.LoanToValue,
		NumPayments:           s.NumPayments,
		MonthlyPaymentDisplay: money.NewSAR(s.MonthlyPayment.Round(2)).Display(),
	}
}

func toAffordabilityResponse(a service.Affordability, lang valueobject.Language) *dto.AffordabilityResponse {
	return &dto.AffordabilityResponse{
		Level:        a.Level.String(),
		Label:        a.Level.Label().In(lang),
		DebtToIncome: a.DebtToIncome.Round(2),
	}
}

func toYearResponse(y model.YearlyBreakdown) dto.YearlyBreakdownResponse {
	return dto.YearlyBreakdownResponse{
		Year:             y.Year,
		Principal:        y.Principal.Round(2),
		Interest:         y.Interest.Round(2),
		TotalPaid:        y.TotalPaid.Round(2),
		RemainingBalance: y.RemainingBalance.Round(2),
	}
}

func toNeighborhoodScoreResponse(rank int, s service.NeighborhoodScore) dto.NeighborhoodScoreResponse {
	resp := dto.NeighborhoodScoreResponse{
		Rank:                 rank,
		Area:                 s.Neighborhood.Area,
		Score:                s.Score,
		BaseScore:            s.BaseScore,
		EnvironmentalScore:   s.EnvironmentalScore,
		Bonus:                s.Bonus,
		EnvironmentDefaulted: s.EnvironmentDefaulted,
		AboveScale:           s.AboveScale,
	}
	for _, a := range s.Adjustments {
		resp.Adjustments = append(resp.Adjustments, dto.AdjustmentResponse{Reason: a.Reason, Points: a.Points})
	}
	return resp
}

func toComparisonResponse(c service.NeighborhoodComparison) dto.NeighborhoodComparisonResponse {
	n := c.Neighborhood
	return dto.NeighborhoodComparisonResponse{
		Area:                n.Area,
		Safety:              n.Safety,
		Schools:             n.Schools,
		Healthcare:          n.Healthcare,
		Shopping:            n.Shopping,
		Transportation:      n.Transportation,
		Quality:             c.Quality,
		EnvironmentalSafety: c.EnvironmentalSafety,
		Overall:             c.Overall,
	}
}

func toRiskResponse(r service.RiskAssessment, lang valueobject.Language) dto.RiskResponse {
	return dto.RiskResponse{
		Area:           r.Area,
		Type:           r.Type.String(),
		TypeLabel:      r.Type.Label().In(lang),
		Value:          r.Value,
		Level:          r.Level.String(),
		LevelLabel:     r.Level.Label().In(lang),
		Recommendation: r.Level.Recommendation().In(lang),
		Description:    r.Level.Description().In(lang),
	}
}

func toOfferResponse(o model.FinancingOffer, lang valueobject.Language) dto.FinancingOfferResponse {
	return dto.FinancingOfferResponse{
		Bank:                  o.Bank.In(lang),
		InterestRate:          o.InterestRate,
		MaxTermYears:          o.MaxTermYears,
		MinDownPaymentPercent: o.MinDownPaymentPercent,
		ProcessingFeePercent:  o.ProcessingFeePercent,
		ShariaCompliant:       o.ShariaCompliant,
		SpecialOffers:         o.SpecialOffers,
		Requirements:          o.Requirements,
	}
}

func toPropertyResponse(p model.Property, lang valueobject.Language) dto.PropertyResponse {
	resp := dto.PropertyResponse{
		ID:           p.ID,
		Title:        p.Title.In(lang),
		Description:  p.Description.In(lang),
		Features:     p.Features(lang),
		Price:        p.Price.Amount(),
		PriceDisplay: p.Price.Display(),
		SizeSqm:      p.SizeSqm,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Type:         p.Category,
		Area:         p.Area,
		Rating:       p.Rating,
		Verified:     p.Verified,
		ROI:          p.ROI,
		Lat:          p.Location.Lat,
		Lng:          p.Location.Lng,
	}
	if !p.DateAdded.IsZero() {
		resp.DateAdded = p.DateAdded.Format(time.DateOnly)
	}
	return resp
}

func toConsultantResponse(c model.Consultant, lang valueobject.Language) dto.ConsultantResponse {
	return dto.ConsultantResponse{
		ID:              c.ID,
		Name:            c.Name.In(lang),
		Specialization:  c.Specialization,
		Languages:       c.Languages,
		YearsExperience: c.YearsExperience,
		Rating:          c.Rating,
		Phone:           c.Phone,
		Email:           c.Email,
	}
}

func toInspectorResponse(i model.Inspector, lang valueobject.Language) dto.InspectorResponse {
	return dto.InspectorResponse{
		ID:             i.ID,
		Name:           i.Name.In(lang),
		Company:        i.Company,
		ServiceAreas:   i.ServiceAreas,
		Certifications: i.Certifications,
		Rating:         i.Rating,
		BaseFee:        i.BaseFee.Amount(),
		BaseFeeDisplay: i.BaseFee.Display(),
	}
}
