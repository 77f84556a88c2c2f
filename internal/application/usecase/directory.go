package usecase

import (
	"context"
	"fmt"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/port"
)

// ListConsultantsUseCase lists advisors, optionally by specialization.
type ListConsultantsUseCase struct {
	catalog port.Catalog
}

// NewListConsultantsUseCase wires dependencies.
func NewListConsultantsUseCase(catalog port.Catalog) *ListConsultantsUseCase {
	return &ListConsultantsUseCase{catalog: catalog}
}

func (uc *ListConsultantsUseCase) Execute(ctx context.Context, req dto.ListConsultantsRequest) ([]dto.ConsultantResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return nil, err
	}
	consultants, err := uc.catalog.Consultants(ctx)
	if err != nil {
		return nil, fmt.Errorf("load consultants: %w", err)
	}

	out := []dto.ConsultantResponse{}
	for _, c := range consultants {
		if c.Specializes(req.Specialization) {
			out = append(out, toConsultantResponse(c, lang))
		}
	}
	return out, nil
}

// ListInspectorsUseCase lists inspectors, optionally by service area.
type ListInspectorsUseCase struct {
	catalog port.Catalog
}

// NewListInspectorsUseCase wires dependencies.
func NewListInspectorsUseCase(catalog port.Catalog) *ListInspectorsUseCase {
	return &ListInspectorsUseCase{catalog: catalog}
}

func (uc *ListInspectorsUseCase) Execute(ctx context.Context, req dto.ListInspectorsRequest) ([]dto.InspectorResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return nil, err
	}
	inspectors, err := uc.catalog.Inspectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inspectors: %w", err)
	}

	out := []dto.InspectorResponse{}
	for _, in := range inspectors {
		if in.Serves(req.Area) {
			out = append(out, toInspectorResponse(in, lang))
		}
	}
	return out, nil
}

// ListFinancingOffersUseCase lists every bank offer in catalog order.
type ListFinancingOffersUseCase struct {
	catalog port.Catalog
}

// NewListFinancingOffersUseCase wires dependencies.
func NewListFinancingOffersUseCase(catalog port.Catalog) *ListFinancingOffersUseCase {
	return &ListFinancingOffersUseCase{catalog: catalog}
}

func (uc *ListFinancingOffersUseCase) Execute(ctx context.Context, req dto.ListOffersRequest) ([]dto.FinancingOfferResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return nil, err
	}
	offers, err := uc.catalog.FinancingOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load financing offers: %w", err)
	}

	out := make([]dto.FinancingOfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferResponse(o, lang))
	}
	return out, nil
}
