package forecast

import (
	"fmt"
	"slices"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

const showdateLayout = "2006-01-02"

// BuildReport renders a breakdown into report sections for the terminal reporters.
func BuildReport(offer domain.Offer, b domain.Breakdown, currency string) *domain.Report {
	title := "Offer forecast"
	if offer.Name != "" {
		title = fmt.Sprintf("Offer forecast: %s", offer.Name)
	}

	return &domain.Report{
		Title:  title,
		Period: showdatePeriod(offer.Showdates),
		Sections: []domain.ReportSection{
			summarySection(b),
			categorySection("Standard items", domain.CalculationTypeStandard, b.Categories, currency),
			categorySection("Post-event items", domain.CalculationTypePostEvent, b.Categories, currency),
			correctionSection(b.Corrections, currency),
			additionalCostSection(offer.AdditionalCosts, currency),
		},
		TotalAmount: RoundCurrency(b.NetProfit),
		Currency:    currency,
	}
}

func showdatePeriod(showdates []string) domain.TimePeriod {
	var period domain.TimePeriod
	for _, s := range showdates {
		d, err := time.Parse(showdateLayout, s)
		if err != nil {
			continue
		}
		if period.Start.IsZero() || d.Before(period.Start) {
			period.Start = d
		}
		if period.End.IsZero() || d.After(period.End) {
			period.End = d
		}
	}
	period.Duration = len(showdates)
	return period
}

func summarySection(b domain.Breakdown) domain.ReportSection {
	skipped := lo.CountBy(b.Lines, func(l domain.LineResult) bool {
		return l.Skipped
	})

	return domain.ReportSection{
		Title: "Summary",
		Summary: map[string]interface{}{
			"lines":   len(b.Lines),
			"skipped": skipped,
		},
		Details: []domain.ReportDetail{
			{Name: "Standard revenue", Value: RoundCurrency(b.StandardRevenue)},
			{Name: "Standard profit", Value: RoundCurrency(b.StandardProfit)},
			{Name: "Post-event revenue", Value: RoundCurrency(b.PostCalcRevenue)},
			{Name: "Post-event profit", Value: RoundCurrency(b.PostCalcProfit)},
			{Name: "Realization correction", Value: RoundCurrency(b.RealizationCorrection)},
			{Name: "Additional costs", Value: RoundCurrency(b.AdditionalCosts)},
			{Name: "Net profit", Value: RoundCurrency(b.NetProfit)},
		},
	}
}

func categorySection(
	title string,
	calcType domain.CalculationType,
	categories []domain.CategoryBreakdown,
	currency string,
) domain.ReportSection {
	section := domain.ReportSection{Title: title}
	for _, c := range categories {
		if c.CalculationType != calcType {
			continue
		}
		desc := fmt.Sprintf("cost %.2f, profit %.2f", RoundCurrency(c.Cost), RoundCurrency(c.Profit))
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        c.Category,
			Value:       RoundCurrency(c.Revenue),
			Unit:        currency,
			Description: desc,
		})
	}
	return section
}

func correctionSection(corrections []domain.RealizationCorrection, currency string) domain.ReportSection {
	section := domain.ReportSection{Title: "Realization corrections"}
	for _, c := range corrections {
		desc := fmt.Sprintf("budgeted %.2f, realized %.2f", RoundCurrency(c.Budgeted), RoundCurrency(c.Realized))
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        c.Category,
			Value:       RoundCurrency(c.Correction),
			Unit:        currency,
			Description: desc,
		})
	}
	return section
}

func additionalCostSection(costs map[string]float64, currency string) domain.ReportSection {
	section := domain.ReportSection{Title: "Additional costs"}
	labels := lo.Keys(costs)
	slices.Sort(labels)
	for _, label := range labels {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  label,
			Value: RoundCurrency(costs[label]),
			Unit:  currency,
		})
	}
	return section
}
