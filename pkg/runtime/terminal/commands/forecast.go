package commands

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/de-tools/offer-atlas/pkg/runtime/terminal/input"
	"github.com/de-tools/offer-atlas/pkg/services/forecast"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const FormatJSON = "json"

type ForecastCmd struct {
	inputPath string
	format    string
	currency  string
	reporters map[string]ReportHandler
}

func NewForecastCmd(reporters map[string]ReportHandler) *cobra.Command {
	fc := &ForecastCmd{reporters: reporters}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Calculate the profit forecast of an offer document",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.inputPath, "input", "", "Path to the offer document (YAML or JSON)")
	cmd.Flags().StringVar(&fc.format, "format", "table", "Output format: table, text or json")
	cmd.Flags().StringVar(&fc.currency, "currency", "EUR", "Currency shown next to amounts")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (fc *ForecastCmd) run(cmd *cobra.Command, _ []string) error {
	reporter, ok := fc.reporters[fc.format]
	if !ok && fc.format != FormatJSON {
		formats := append(lo.Keys(fc.reporters), FormatJSON)
		slices.Sort(formats)
		return fmt.Errorf("unsupported format %q, expected one of %v", fc.format, formats)
	}

	doc, err := input.Load(fc.inputPath)
	if err != nil {
		return err
	}

	offer := adapters.MapApiOfferToDomainOffer(doc.Offer)
	breakdown := forecast.Calculate(
		offer,
		adapters.MapApiProductsToDomainProducts(doc.Products),
		adapters.MapApiSettingsToDomainSettings(doc.CategorySettings),
	)

	if fc.format == FormatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapDomainBreakdownToApiBreakdown(breakdown, fc.currency))
	}
	return reporter.Handle(forecast.BuildReport(offer, breakdown, fc.currency))
}
