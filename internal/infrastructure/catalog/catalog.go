// Package catalog provides the in-memory, read-only listing catalog loaded
// from a YAML seed.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/suhailre/suhail/internal/domain/model"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
)

//go:embed seed.yaml
var seedYAML []byte

// Catalog implements port.Catalog over records held in memory. It is
// immutable after construction and safe for concurrent use.
type Catalog struct {
	properties    []model.Property
	neighborhoods []model.Neighborhood
	risks         []model.EnvironmentalRisk
	offers        []model.FinancingOffer
	consultants   []model.Consultant
	inspectors    []model.Inspector
}

var _ port.Catalog = (*Catalog)(nil)

// Load reads a catalog from path, or the embedded Riyadh seed when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(seedYAML)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML seed document. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var seed yamlSeed
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{}
	seen := make(map[string]bool)
	for i, p := range seed.Properties {
		m, err := mapProperty(i, p)
		if err != nil {
			return nil, err
		}
		if seen[m.ID] {
			return nil, invalidField(fmt.Sprintf("properties[%d].id", i), "duplicate id %q", m.ID)
		}
		seen[m.ID] = true
		c.properties = append(c.properties, m)
	}
	for i, n := range seed.Neighborhoods {
		m, err := mapNeighborhood(i, n)
		if err != nil {
			return nil, err
		}
		c.neighborhoods = append(c.neighborhoods, m)
	}
	for i, r := range seed.EnvironmentalRisks {
		m, err := mapRisk(i, r)
		if err != nil {
			return nil, err
		}
		c.risks = append(c.risks, m)
	}
	for i, o := range seed.FinancingOffers {
		m, err := mapOffer(i, o)
		if err != nil {
			return nil, err
		}
		c.offers = append(c.offers, m)
	}
	for i, cs := range seed.Consultants {
		m, err := mapConsultant(i, cs)
		if err != nil {
			return nil, err
		}
		c.consultants = append(c.consultants, m)
	}
	for i, in := range seed.Inspectors {
		m, err := mapInspector(i, in)
		if err != nil {
			return nil, err
		}
		c.inspectors = append(c.inspectors, m)
	}
	return c, nil
}

// Validate checks the joins between tables: every neighborhood needs a risk
// record and vice versa, and every property must sit in a known
// neighborhood. Each broken join is reported as an error wrapping
// service.ErrMissingJoin; the result is nil when all joins hold.
func (c *Catalog) Validate() error {
	var errs []error
	hasNeighborhood := func(area string) bool {
		return slices.ContainsFunc(c.neighborhoods, func(n model.Neighborhood) bool { return model.SameArea(n.Area, area) })
	}
	hasRisk := func(area string) bool {
		return slices.ContainsFunc(c.risks, func(r model.EnvironmentalRisk) bool { return model.SameArea(r.Area, area) })
	}

	for _, n := range c.neighborhoods {
		if !hasRisk(n.Area) {
			errs = append(errs, fmt.Errorf("%w: neighborhood %q has no environmental risk record", service.ErrMissingJoin, n.Area))
		}
	}
	for _, r := range c.risks {
		if !hasNeighborhood(r.Area) {
			errs = append(errs, fmt.Errorf("%w: environmental risk %q has no neighborhood record", service.ErrMissingJoin, r.Area))
		}
	}
	for _, p := range c.properties {
		if !hasNeighborhood(p.Area) {
			errs = append(errs, fmt.Errorf("%w: property %s is in unknown area %q", service.ErrMissingJoin, p.ID, p.Area))
		}
	}
	return errors.Join(errs...)
}

func (c *Catalog) Properties(context.Context) ([]model.Property, error) {
	return slices.Clone(c.properties), nil
}

func (c *Catalog) Property(_ context.Context, id string) (model.Property, error) {
	for _, p := range c.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Property{}, fmt.Errorf("property %q: %w", id, port.ErrNotFound)
}

func (c *Catalog) Neighborhoods(context.Context) ([]model.Neighborhood, error) {
	return slices.Clone(c.neighborhoods), nil
}

func (c *Catalog) Neighborhood(_ context.Context, area string) (model.Neighborhood, error) {
	for _, n := range c.neighborhoods {
		if model.SameArea(n.Area, area) {
			return n, nil
		}
	}
	return model.Neighborhood{}, fmt.Errorf("neighborhood %q: %w", area, port.ErrNotFound)
}

func (c *Catalog) EnvironmentalRisks(context.Context) ([]model.EnvironmentalRisk, error) {
	return slices.Clone(c.risks), nil
}

func (c *Catalog) EnvironmentalRisk(_ context.Context, area string) (model.EnvironmentalRisk, error) {
	for _, r := range c.risks {
		if model.SameArea(r.Area, area) {
			return r, nil
		}
	}
	return model.EnvironmentalRisk{}, fmt.Errorf("environmental risk %q: %w", area, port.ErrNotFound)
}

func (c *Catalog) FinancingOffers(context.Context) ([]model.FinancingOffer, error) {
	return slices.Clone(c.offers), nil
}

func (c *Catalog) Consultants(context.Context) ([]model.Consultant, error) {
	return slices.Clone(c.consultants), nil
}

func (c *Catalog) Inspectors(context.Context) ([]model.Inspector, error) {
	return slices.Clone(c.inspectors), nil
}
