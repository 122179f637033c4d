package adapters

import (
	"maps"
	"slices"

	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/models/store"
	"github.com/samber/lo"
)

func MapStoreOfferToDomainOffer(o store.OfferRecord) domain.Offer {
	p := o.Payload
	return domain.Offer{
		ID:     o.ID,
		Name:   o.Name,
		Status: domain.OfferStatus(o.Status),
		Lines: lo.Map(p.Lines, func(l store.OfferLinePayload, _ int) domain.OfferLine {
			return domain.OfferLine{
				ProductID:           l.ProductID,
				Quantity:            l.Quantity,
				UnitPrice:           cloneFloat(l.UnitPrice),
				PercentageFee:       cloneFloat(l.PercentageFee),
				PercentageCostBasis: cloneFloat(l.PercentageCostBasis),
			}
		}),
		Showdates:                   slices.Clone(p.Showdates),
		ExpectedVisitorsPerShowdate: maps.Clone(p.ExpectedVisitorsPerShowdate),
		EuroSpendPerPerson:          p.EuroSpendPerPerson,
		BarMeters:                   p.BarMeters,
		FoodSalesPositions:          p.FoodSalesPositions,
		Staffel:                     cloneFloat(p.Staffel),
		TotalVisitorsOverride:       cloneInt(p.TotalVisitorsOverride),
		PostCalcForecasts:           maps.Clone(p.PostCalcForecasts),
		RealizationCosts:            maps.Clone(p.RealizationCosts),
		AdditionalCosts:             maps.Clone(p.AdditionalCosts),
	}
}

func MapDomainOfferToStoreOffer(o domain.Offer) store.OfferRecord {
	return store.OfferRecord{
		ID:     o.ID,
		Name:   o.Name,
		Status: string(o.Status),
		Payload: store.OfferPayload{
			Lines: lo.Map(o.Lines, func(l domain.OfferLine, _ int) store.OfferLinePayload {
				return store.OfferLinePayload{
					ProductID:           l.ProductID,
					Quantity:            l.Quantity,
					UnitPrice:           cloneFloat(l.UnitPrice),
					PercentageFee:       cloneFloat(l.PercentageFee),
					PercentageCostBasis: cloneFloat(l.PercentageCostBasis),
				}
			}),
			Showdates:                   slices.Clone(o.Showdates),
			ExpectedVisitorsPerShowdate: maps.Clone(o.ExpectedVisitorsPerShowdate),
			EuroSpendPerPerson:          o.EuroSpendPerPerson,
			BarMeters:                   o.BarMeters,
			FoodSalesPositions:          o.FoodSalesPositions,
			Staffel:                     cloneFloat(o.Staffel),
			TotalVisitorsOverride:       cloneInt(o.TotalVisitorsOverride),
			PostCalcForecasts:           maps.Clone(o.PostCalcForecasts),
			RealizationCosts:            maps.Clone(o.RealizationCosts),
			AdditionalCosts:             maps.Clone(o.AdditionalCosts),
		},
	}
}

func MapApiOfferToDomainOffer(o api.Offer) domain.Offer {
	return domain.Offer{
		ID:     o.ID,
		Name:   o.Name,
		Status: domain.OfferStatus(o.Status),
		Lines: lo.Map(o.Lines, func(l api.OfferLine, _ int) domain.OfferLine {
			return domain.OfferLine{
				ProductID:           l.ProductID,
				Quantity:            l.Quantity,
				UnitPrice:           cloneFloat(l.UnitPrice),
				PercentageFee:       cloneFloat(l.PercentageFee),
				PercentageCostBasis: cloneFloat(l.PercentageCostBasis),
			}
		}),
		Showdates:                   slices.Clone(o.Showdates),
		ExpectedVisitorsPerShowdate: maps.Clone(o.ExpectedVisitorsPerShowdate),
		EuroSpendPerPerson:          o.EuroSpendPerPerson,
		BarMeters:                   o.BarMeters,
		FoodSalesPositions:          o.FoodSalesPositions,
		Staffel:                     cloneFloat(o.Staffel),
		TotalVisitorsOverride:       cloneInt(o.TotalVisitorsOverride),
		PostCalcForecasts:           maps.Clone(o.PostCalcForecasts),
		RealizationCosts:            maps.Clone(o.RealizationCosts),
		AdditionalCosts:             maps.Clone(o.AdditionalCosts),
	}
}

func MapDomainBreakdownToApiBreakdown(b domain.Breakdown, currency string) api.Breakdown {
	return api.Breakdown{
		Currency:              currency,
		StandardRevenue:       b.StandardRevenue,
		StandardCost:          b.StandardCost,
		StandardProfit:        b.StandardProfit,
		PostCalcRevenue:       b.PostCalcRevenue,
		PostCalcCost:          b.PostCalcCost,
		PostCalcProfit:        b.PostCalcProfit,
		RealizationCorrection: b.RealizationCorrection,
		AdditionalCosts:       b.AdditionalCosts,
		NetProfit:             b.NetProfit,
		Lines: lo.Map(b.Lines, func(l domain.LineResult, _ int) api.LineResult {
			return api.LineResult{
				Index:           l.Index,
				ProductID:       l.ProductID,
				Category:        l.Category,
				CalculationType: string(l.CalculationType),
				Quantity:        l.Quantity,
				Revenue:         l.Revenue,
				Cost:            l.Cost,
				Profit:          l.Profit,
				Skipped:         l.Skipped,
				SkipReason:      l.SkipReason,
			}
		}),
		Categories: lo.Map(b.Categories, func(c domain.CategoryBreakdown, _ int) api.CategoryBreakdown {
			return api.CategoryBreakdown{
				Category:        c.Category,
				CalculationType: string(c.CalculationType),
				Revenue:         c.Revenue,
				Cost:            c.Cost,
				Profit:          c.Profit,
			}
		}),
		Corrections: lo.Map(b.Corrections, func(c domain.RealizationCorrection, _ int) api.RealizationCorrection {
			return api.RealizationCorrection(c)
		}),
	}
}

func MapDomainSnapshotToStoreSnapshot(s domain.Snapshot) store.SnapshotRecord {
	return store.SnapshotRecord{
		ID:            s.ID,
		OfferID:       s.OfferID,
		NetProfit:     s.NetProfit,
		CategoryCosts: maps.Clone(s.CategoryCosts),
		Currency:      s.Currency,
		SignedAt:      s.SignedAt,
	}
}

func MapStoreSnapshotToDomainSnapshot(s store.SnapshotRecord) domain.Snapshot {
	return domain.Snapshot{
		ID:            s.ID,
		OfferID:       s.OfferID,
		SignedAt:      s.SignedAt,
		NetProfit:     s.NetProfit,
		CategoryCosts: maps.Clone(s.CategoryCosts),
		Currency:      s.Currency,
	}
}

func MapDomainSnapshotToApiSnapshot(s domain.Snapshot) api.Snapshot {
	return api.Snapshot{
		ID:            s.ID,
		OfferID:       s.OfferID,
		SignedAt:      s.SignedAt,
		NetProfit:     s.NetProfit,
		CategoryCosts: maps.Clone(s.CategoryCosts),
		Currency:      s.Currency,
	}
}
