package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/de-tools/offer-atlas/pkg/config"
	"github.com/de-tools/offer-atlas/pkg/messaging/amqp"
	"github.com/de-tools/offer-atlas/pkg/server"
	"github.com/de-tools/offer-atlas/pkg/services/offer"
	"github.com/de-tools/offer-atlas/pkg/store/duckdb"
	"github.com/de-tools/offer-atlas/pkg/store/duckdb/catalog"
	offerstore "github.com/de-tools/offer-atlas/pkg/store/duckdb/offer"
	"github.com/de-tools/offer-atlas/pkg/store/s3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Offer Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the service configuration file (defaults and environment only when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.Database.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	catalogStore, err := catalog.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}
	offerStore, err := offerstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create offer store: %w", err)
	}

	publishers, closePublishers, err := snapshotPublishers(ctx, cfg.Snapshots)
	if err != nil {
		return err
	}
	defer closePublishers()

	offers := offer.NewService(catalogStore, offerStore, offer.Settings{Currency: cfg.Currency}, publishers...)

	logger.Info().
		Str("database", cfg.Database.Path).
		Str("currency", cfg.Currency).
		Int("publishers", len(publishers)).
		Msg("configuration loaded")

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Dependencies: server.Dependencies{
			Offers:   offers,
			Currency: cfg.Currency,
		},
	})
	return api.Start()
}

func snapshotPublishers(ctx context.Context, cfg config.SnapshotsConfig) ([]offer.SnapshotPublisher, func(), error) {
	var (
		publishers []offer.SnapshotPublisher
		closers    []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	if cfg.S3.Bucket != "" {
		archive, err := s3.NewArchive(ctx, s3.Settings{
			Bucket:  cfg.S3.Bucket,
			Prefix:  cfg.S3.Prefix,
			Profile: cfg.S3.Profile,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create snapshot archive: %w", err)
		}
		publishers = append(publishers, archive)
	}

	if cfg.AMQP.URL != "" {
		publisher, err := amqp.NewPublisher(amqp.Settings{
			URL:      cfg.AMQP.URL,
			Exchange: cfg.AMQP.Exchange,
			Queue:    cfg.AMQP.Queue,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create snapshot publisher: %w", err)
		}
		publishers = append(publishers, publisher)
		closers = append(closers, publisher.Close)
	}

	return publishers, closeAll, nil
}
