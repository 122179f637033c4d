package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/offer-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/offer-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/offer-atlas/pkg/services/config"
	"github.com/de-tools/offer-atlas/pkg/services/offer"
	"github.com/de-tools/offer-atlas/pkg/store/duckdb"
	"github.com/de-tools/offer-atlas/pkg/store/duckdb/catalog"
	offerstore "github.com/de-tools/offer-atlas/pkg/store/duckdb/offer"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	profilesPath string
	reporters    map[string]commands.ReportHandler
	sessions     commands.SessionFactory
	rootCmd      *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// ProfilesPath points to the INI file with database profiles
	ProfilesPath string
	// Sessions overrides how profiles are opened
	Sessions commands.SessionFactory
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ProfilesPath == "" {
		opts.ProfilesPath = config.DefaultPath()
	}

	cli := &CLI{
		profilesPath: opts.ProfilesPath,
		reporters: map[string]commands.ReportHandler{
			"table": export.NewReporter(opts.Output),
			"text":  NewReporter(opts.Output),
		},
		sessions: opts.Sessions,
	}
	if cli.sessions == nil {
		cli.sessions = cli.openSession
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "offer",
		Short:         "Offer profit and revenue forecasting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cli.profilesPath, "config", cli.profilesPath,
		"Path to the profiles file (default is $HOME/.offeratlascfg)")

	cmd.AddCommand(commands.NewForecastCmd(cli.reporters))
	cmd.AddCommand(commands.NewImportCmd(cli.sessions))
	cmd.AddCommand(commands.NewSignCmd(cli.sessions))

	return cmd
}

func (cli *CLI) openSession(ctx context.Context, profileName string) (*commands.Session, error) {
	registry, err := config.NewRegistry(cli.profilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", cli.profilesPath, err)
	}

	profile, err := registry.GetProfile(ctx, profileName)
	if err != nil {
		return nil, err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: profile.DatabasePath})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	catalogStore, err := catalog.NewStore(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create catalog store: %w", err)
	}
	offerStore, err := offerstore.NewStore(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create offer store: %w", err)
	}

	return &commands.Session{
		Service: offer.NewService(catalogStore, offerStore, offer.Settings{Currency: profile.Currency}),
		Profile: *profile,
		Close:   db.Close,
	}, nil
}
