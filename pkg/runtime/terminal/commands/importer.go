package commands

import (
	"fmt"

	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/de-tools/offer-atlas/pkg/runtime/terminal/input"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ImportCmd struct {
	inputPath string
	profile   string
	sessions  SessionFactory
}

func NewImportCmd(sessions SessionFactory) *cobra.Command {
	ic := &ImportCmd{sessions: sessions}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store the catalog, category settings and offer of a document",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.inputPath, "input", "", "Path to the offer document (YAML or JSON)")
	cmd.Flags().StringVar(&ic.profile, "profile", "", "Profile selecting the offer database")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	doc, err := input.Load(ic.inputPath)
	if err != nil {
		return err
	}

	session, err := ic.sessions(ctx, ic.profile)
	if err != nil {
		return err
	}
	defer session.Close()

	err = session.Service.Import(ctx,
		adapters.MapApiOfferToDomainOffer(doc.Offer),
		adapters.MapApiProductsToDomainProducts(doc.Products),
		adapters.MapApiSettingsToDomainSettings(doc.CategorySettings),
	)
	if err != nil {
		return fmt.Errorf("failed to import offer %s: %w", doc.Offer.ID, err)
	}

	zerolog.Ctx(ctx).Debug().Str("profile", session.Profile.String()).Msg("offer imported")
	fmt.Fprintf(cmd.OutOrStdout(), "Imported offer %s with %d products into %s\n",
		doc.Offer.ID, len(doc.Products), session.Profile.DatabasePath)
	return nil
}
