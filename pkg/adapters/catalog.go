package adapters

import (
	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/models/store"
	"github.com/samber/lo"
)

func MapStoreProductToDomainProduct(p store.ProductRecord) domain.Product {
	return domain.Product{
		ID:                  p.ID,
		Name:                p.Name,
		Category:            p.Category,
		UnitType:            domain.UnitType(p.UnitType),
		CostBasis:           p.CostBasis,
		DefaultPrice:        cloneFloat(p.DefaultPrice),
		PercentageFee:       cloneFloat(p.PercentageFee),
		PercentageCostBasis: cloneFloat(p.PercentageCostBasis),
		KeyFigure:           domain.KeyFigure(p.KeyFigure),
		KeyFigureMultiplier: cloneFloat(p.KeyFigureMultiplier),
		HasStaffel:          p.HasStaffel,
	}
}

func MapDomainProductToStoreProduct(p domain.Product) store.ProductRecord {
	keyFigure := p.KeyFigure
	if keyFigure.IsNone() {
		keyFigure = domain.KeyFigureNone
	}

	return store.ProductRecord{
		ID:                  p.ID,
		Name:                p.Name,
		Category:            p.Category,
		UnitType:            string(p.UnitType),
		CostBasis:           p.CostBasis,
		DefaultPrice:        cloneFloat(p.DefaultPrice),
		PercentageFee:       cloneFloat(p.PercentageFee),
		PercentageCostBasis: cloneFloat(p.PercentageCostBasis),
		KeyFigure:           string(keyFigure),
		KeyFigureMultiplier: cloneFloat(p.KeyFigureMultiplier),
		HasStaffel:          p.HasStaffel,
	}
}

func MapApiProductToDomainProduct(p api.Product) domain.Product {
	return domain.Product{
		ID:                  p.ID,
		Name:                p.Name,
		Category:            p.Category,
		UnitType:            domain.UnitType(p.UnitType),
		CostBasis:           p.CostBasis,
		DefaultPrice:        cloneFloat(p.DefaultPrice),
		PercentageFee:       cloneFloat(p.PercentageFee),
		PercentageCostBasis: cloneFloat(p.PercentageCostBasis),
		KeyFigure:           domain.KeyFigure(p.KeyFigure),
		KeyFigureMultiplier: cloneFloat(p.KeyFigureMultiplier),
		HasStaffel:          p.HasStaffel,
	}
}

func MapStoreProductsToDomainProducts(records []store.ProductRecord) []domain.Product {
	return lo.Map(records, func(p store.ProductRecord, _ int) domain.Product {
		return MapStoreProductToDomainProduct(p)
	})
}

func MapDomainProductsToStoreProducts(products []domain.Product) []store.ProductRecord {
	return lo.Map(products, func(p domain.Product, _ int) store.ProductRecord {
		return MapDomainProductToStoreProduct(p)
	})
}

func MapApiProductsToDomainProducts(products []api.Product) []domain.Product {
	return lo.Map(products, func(p api.Product, _ int) domain.Product {
		return MapApiProductToDomainProduct(p)
	})
}

func MapStoreSettingsToDomainSettings(records []store.CategorySettingRecord) []domain.CategorySetting {
	return lo.Map(records, func(s store.CategorySettingRecord, _ int) domain.CategorySetting {
		return domain.CategorySetting{
			Category:        s.Category,
			CalculationType: domain.CalculationType(s.CalculationType),
		}
	})
}

func MapDomainSettingsToStoreSettings(settings []domain.CategorySetting) []store.CategorySettingRecord {
	return lo.Map(settings, func(s domain.CategorySetting, _ int) store.CategorySettingRecord {
		return store.CategorySettingRecord{
			Category:        s.Category,
			CalculationType: string(s.CalculationType),
		}
	})
}

func MapApiSettingsToDomainSettings(settings []api.CategorySetting) []domain.CategorySetting {
	return lo.Map(settings, func(s api.CategorySetting, _ int) domain.CategorySetting {
		return domain.CategorySetting{
			Category:        s.Category,
			CalculationType: domain.CalculationType(s.CalculationType),
		}
	})
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
