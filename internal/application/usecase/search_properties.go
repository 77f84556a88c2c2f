package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
	"github.com/suhailre/suhail/pkg/money"
)

// SearchPropertiesUseCase filters the listing catalog.
type SearchPropertiesUseCase struct {
	catalog port.Catalog
}

// NewSearchPropertiesUseCase wires dependencies.
func NewSearchPropertiesUseCase(catalog port.Catalog) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{catalog: catalog}
}

// Execute returns the listings matching every populated filter, in catalog
// order.
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, req dto.SearchPropertiesRequest) (dto.SearchPropertiesResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return dto.SearchPropertiesResponse{}, err
	}
	if req.MinPrice.IsNegative() || req.MaxPrice.IsNegative() {
		return dto.SearchPropertiesResponse{}, fmt.Errorf("%w: price bounds must not be negative", service.ErrInvalidInput)
	}
	if req.MaxPrice.IsPositive() && req.MinPrice.GreaterThan(req.MaxPrice) {
		return dto.SearchPropertiesResponse{}, fmt.Errorf("%w: min_price exceeds max_price", service.ErrInvalidInput)
	}

	props, err := uc.catalog.Properties(ctx)
	if err != nil {
		return dto.SearchPropertiesResponse{}, fmt.Errorf("load properties: %w", err)
	}

	filter := model.PropertyFilter{
		MinPrice:   money.NewSAR(req.MinPrice),
		MaxPrice:   money.NewSAR(req.MaxPrice),
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		Categories: req.Types,
		Areas:      req.Areas,
	}

	resp := dto.SearchPropertiesResponse{Results: []dto.PropertyResponse{}}
	for _, p := range props {
		if filter.Matches(p) {
			resp.Results = append(resp.Results, toPropertyResponse(p, lang))
		}
	}
	return resp, nil
}

// GetPropertyUseCase returns one listing with its neighborhood rating.
type GetPropertyUseCase struct {
	catalog port.Catalog
	scorer  *service.ScoringEngine
}

// NewGetPropertyUseCase wires dependencies.
func NewGetPropertyUseCase(catalog port.Catalog, scorer *service.ScoringEngine) *GetPropertyUseCase {
	return &GetPropertyUseCase{catalog: catalog, scorer: scorer}
}

// Execute returns the listing. The neighborhood overall rating is omitted
// when the area lacks neighborhood or risk data.
func (uc *GetPropertyUseCase) Execute(ctx context.Context, req dto.GetPropertyRequest) (dto.PropertyResponse, error) {
	lang, err := parseLanguage(req.Language)
	if err != nil {
		return dto.PropertyResponse{}, err
	}

	p, err := uc.catalog.Property(ctx, req.ID)
	if err != nil {
		return dto.PropertyResponse{}, fmt.Errorf("find property: %w", err)
	}
	resp := toPropertyResponse(p, lang)

	n, err := uc.catalog.Neighborhood(ctx, p.Area)
	if errors.Is(err, port.ErrNotFound) {
		return resp, nil
	} else if err != nil {
		return dto.PropertyResponse{}, fmt.Errorf("find neighborhood: %w", err)
	}
	r, err := uc.catalog.EnvironmentalRisk(ctx, p.Area)
	if errors.Is(err, port.ErrNotFound) {
		return resp, nil
	} else if err != nil {
		return dto.PropertyResponse{}, fmt.Errorf("find environmental risk: %w", err)
	}

	ranked, _ := uc.scorer.CompareNeighborhoods([]model.Neighborhood{n}, []model.EnvironmentalRisk{r}, nil)
	if len(ranked) == 1 {
		overall := ranked[0].Overall
		resp.NeighborhoodOverall = &overall
	}
	return resp, nil
}
