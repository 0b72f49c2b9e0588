// Package catalog holds the static pricing catalog compiled into the binary.
package catalog

import (
	_ "embed"
	"fmt"

	"pricing-cms/internal/data/entity"

	"gopkg.in/yaml.v3"
)

//go:embed pricing.yaml
var pricingYAML []byte

// Catalog is an immutable set of plans and add-ons. Reads return copies.
type Catalog struct {
	data entity.PricingCatalog
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(pricingYAML)
}

// Parse decodes a catalog document.
func Parse(raw []byte) (*Catalog, error) {
	var data entity.PricingCatalog
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode pricing catalog: %w", err)
	}

	for i, item := range append(append([]entity.PricingItem{}, data.Plans...), data.AddOns...) {
		if item.Name == "" {
			return nil, fmt.Errorf("pricing item %d has no name", i)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("pricing item %q has negative price", item.Name)
		}
	}

	return &Catalog{data: data}, nil
}

// Snapshot returns a deep copy of the catalog.
func (c *Catalog) Snapshot() entity.PricingCatalog {
	return entity.PricingCatalog{
		Plans:  copyItems(c.data.Plans),
		AddOns: copyItems(c.data.AddOns),
	}
}

func copyItems(items []entity.PricingItem) []entity.PricingItem {
	out := make([]entity.PricingItem, len(items))
	for i, item := range items {
		item.Features = append([]string(nil), item.Features...)
		out[i] = item
	}
	return out
}
