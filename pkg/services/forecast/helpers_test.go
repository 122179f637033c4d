package forecast

import "github.com/de-tools/offer-atlas/pkg/models/domain"

const delta = 1e-9

func ptr[T any](v T) *T {
	return &v
}

func standardProduct(id, category string, costBasis float64) domain.Product {
	return domain.Product{
		ID:        id,
		Category:  category,
		UnitType:  domain.UnitTypePerUnit,
		CostBasis: costBasis,
		KeyFigure: domain.KeyFigureNone,
	}
}

func postEventSettings(categories ...string) []domain.CategorySetting {
	settings := make([]domain.CategorySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, domain.CategorySetting{
			Category:        c,
			CalculationType: domain.CalculationTypePostEvent,
		})
	}
	return settings
}
