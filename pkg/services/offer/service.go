package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/services/forecast"
	"github.com/de-tools/offer-atlas/pkg/store/duckdb/catalog"
	offerstore "github.com/de-tools/offer-atlas/pkg/store/duckdb/offer"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SnapshotPublisher hands a signed snapshot to a downstream consumer
type SnapshotPublisher interface {
	Publish(ctx context.Context, snapshot domain.Snapshot) error
}

type Service interface {
	// Forecast calculates a stored offer against the stored catalog
	Forecast(ctx context.Context, offerID string) (*domain.Breakdown, error)
	// Preview calculates an unsaved offer against the stored catalog
	Preview(ctx context.Context, offer domain.Offer) (*domain.Breakdown, error)
	// Sign freezes the financial state of a draft offer. When the snapshot was persisted but
	// a publisher failed, both the snapshot and the joined publisher errors are returned.
	Sign(ctx context.Context, offerID string) (*domain.Snapshot, error)
	GetSnapshot(ctx context.Context, offerID string) (*domain.Snapshot, error)
	// Import stores the catalog, category settings and offer of an input document
	Import(ctx context.Context, offer domain.Offer, products []domain.Product, settings []domain.CategorySetting) error
}

type Settings struct {
	Currency string
	Now      func() time.Time
}

type service struct {
	catalog    catalog.Store
	offers     offerstore.Store
	settings   Settings
	publishers []SnapshotPublisher
}

func NewService(
	catalogStore catalog.Store,
	offerStore offerstore.Store,
	settings Settings,
	publishers ...SnapshotPublisher,
) Service {
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &service{
		catalog:    catalogStore,
		offers:     offerStore,
		settings:   settings,
		publishers: publishers,
	}
}

func (s *service) Forecast(ctx context.Context, offerID string) (*domain.Breakdown, error) {
	offer, err := s.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	return s.calculate(ctx, offer)
}

func (s *service) Preview(ctx context.Context, offer domain.Offer) (*domain.Breakdown, error) {
	return s.calculate(ctx, offer)
}

func (s *service) Sign(ctx context.Context, offerID string) (*domain.Snapshot, error) {
	logger := zerolog.Ctx(ctx).With().Str("offer", offerID).Logger()

	offer, err := s.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status == domain.OfferStatusSigned {
		return nil, fmt.Errorf("offer %s: %w", offerID, domain.ErrOfferAlreadySigned)
	}

	breakdown, err := s.calculate(ctx, offer)
	if err != nil {
		return nil, err
	}

	snapshot := forecast.TakeSnapshot(offerID, *breakdown, s.settings.Now(), s.settings.Currency)
	snapshot.ID = uuid.NewString()

	err = s.offers.Transact(ctx, func(ctx context.Context) error {
		if err := s.offers.SaveSnapshot(ctx, adapters.MapDomainSnapshotToStoreSnapshot(snapshot)); err != nil {
			return err
		}
		return s.offers.MarkSigned(ctx, offerID)
	})
	if err != nil {
		return nil, fmt.Errorf("sign offer %s: %w", offerID, err)
	}

	logger.Info().
		Str("snapshot", snapshot.ID).
		Float64("net_profit", snapshot.NetProfit).
		Msg("offer signed")

	var errs []error
	for _, p := range s.publishers {
		if err := p.Publish(ctx, snapshot); err != nil {
			logger.Error().Err(err).Str("snapshot", snapshot.ID).Msg("failed to publish snapshot")
			errs = append(errs, err)
		}
	}
	return &snapshot, errors.Join(errs...)
}

func (s *service) GetSnapshot(ctx context.Context, offerID string) (*domain.Snapshot, error) {
	record, err := s.offers.GetSnapshot(ctx, offerID)
	if err != nil {
		return nil, err
	}
	snapshot := adapters.MapStoreSnapshotToDomainSnapshot(*record)
	return &snapshot, nil
}

func (s *service) Import(
	ctx context.Context,
	offer domain.Offer,
	products []domain.Product,
	settings []domain.CategorySetting,
) error {
	if offer.ID == "" {
		return fmt.Errorf("offer id is empty: %w", domain.ErrInvalidInput)
	}

	return s.offers.Transact(ctx, func(ctx context.Context) error {
		if err := s.catalog.UpsertProducts(ctx, adapters.MapDomainProductsToStoreProducts(products)); err != nil {
			return err
		}
		if err := s.catalog.UpsertCategorySettings(ctx, adapters.MapDomainSettingsToStoreSettings(settings)); err != nil {
			return err
		}

		existing, err := s.offers.GetOffer(ctx, offer.ID)
		switch {
		case err == nil && domain.OfferStatus(existing.Status) == domain.OfferStatusSigned:
			return fmt.Errorf("offer %s: %w", offer.ID, domain.ErrOfferAlreadySigned)
		case err != nil && !errors.Is(err, domain.ErrOfferNotFound):
			return err
		}

		record := adapters.MapDomainOfferToStoreOffer(offer)
		record.Status = string(domain.OfferStatusDraft)
		return s.offers.SaveOffer(ctx, record)
	})
}

func (s *service) loadOffer(ctx context.Context, offerID string) (domain.Offer, error) {
	record, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	return adapters.MapStoreOfferToDomainOffer(*record), nil
}

func (s *service) calculate(ctx context.Context, offer domain.Offer) (*domain.Breakdown, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	settings, err := s.catalog.ListCategorySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load category settings: %w", err)
	}

	breakdown := forecast.Calculate(
		offer,
		adapters.MapStoreProductsToDomainProducts(products),
		adapters.MapStoreSettingsToDomainSettings(settings),
	)

	zerolog.Ctx(ctx).Debug().
		Str("offer", offer.ID).
		Int("lines", len(breakdown.Lines)).
		Float64("net_profit", breakdown.NetProfit).
		Msg("offer calculated")
	return &breakdown, nil
}
