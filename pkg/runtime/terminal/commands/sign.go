package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type SignCmd struct {
	offerID  string
	profile  string
	sessions SessionFactory
}

func NewSignCmd(sessions SessionFactory) *cobra.Command {
	sc := &SignCmd{sessions: sessions}
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a stored offer and freeze its financial snapshot",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.offerID, "offer", "", "ID of the stored offer")
	cmd.Flags().StringVar(&sc.profile, "profile", "", "Profile selecting the offer database")

	_ = cmd.MarkFlagRequired("offer")

	return cmd
}

func (sc *SignCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	session, err := sc.sessions(ctx, sc.profile)
	if err != nil {
		return err
	}
	defer session.Close()

	snapshot, err := session.Service.Sign(ctx, sc.offerID)
	if snapshot == nil {
		return fmt.Errorf("failed to sign offer %s: %w", sc.offerID, err)
	}
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("offer", sc.offerID).Msg("offer signed with publishing errors")
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(adapters.MapDomainSnapshotToApiSnapshot(*snapshot))
}
