// Package forecast turns an offer into its revenue, cost and profit breakdown.
// Every function in it is pure: no I/O, no shared state, inputs are never modified.
package forecast

import "github.com/de-tools/offer-atlas/pkg/models/domain"

// Classify returns the calculation regime of a product. Categories without a setting,
// or with any type other than post_event, are standard.
func Classify(product domain.Product, settings []domain.CategorySetting) domain.CalculationType {
	for _, s := range settings {
		if s.Category != product.Category {
			continue
		}
		if s.CalculationType == domain.CalculationTypePostEvent {
			return domain.CalculationTypePostEvent
		}
		return domain.CalculationTypeStandard
	}
	return domain.CalculationTypeStandard
}

// Catalog indexes products by id and category settings by category for a single calculation.
type Catalog struct {
	products   map[string]domain.Product
	categories map[string]domain.CalculationType
}

func NewCatalog(products []domain.Product, settings []domain.CategorySetting) *Catalog {
	c := &Catalog{
		products:   make(map[string]domain.Product, len(products)),
		categories: make(map[string]domain.CalculationType, len(settings)),
	}
	for _, p := range products {
		if _, exists := c.products[p.ID]; !exists {
			c.products[p.ID] = p
		}
	}
	// first setting wins, same as the linear lookup in Classify
	for _, s := range settings {
		if _, exists := c.categories[s.Category]; !exists {
			c.categories[s.Category] = s.CalculationType
		}
	}
	return c
}

func (c *Catalog) Product(id string) (domain.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

func (c *Catalog) Classify(product domain.Product) domain.CalculationType {
	if c.categories[product.Category] == domain.CalculationTypePostEvent {
		return domain.CalculationTypePostEvent
	}
	return domain.CalculationTypeStandard
}
