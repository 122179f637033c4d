package offer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/models/store"
	"github.com/de-tools/offer-atlas/pkg/store/duckdb"
)

// Store persists offers and the snapshots frozen when they are signed
type Store interface {
	GetOffer(ctx context.Context, id string) (*store.OfferRecord, error)
	SaveOffer(ctx context.Context, record store.OfferRecord) error
	MarkSigned(ctx context.Context, id string) error
	SaveSnapshot(ctx context.Context, record store.SnapshotRecord) error
	GetSnapshot(ctx context.Context, offerID string) (*store.SnapshotRecord, error)
	// Transact runs fn so that every store call made with its context shares one transaction
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}

type offerStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &offerStore{
		db: db,
	}, nil
}

func (o *offerStore) GetOffer(ctx context.Context, id string) (*store.OfferRecord, error) {
	query := `
		SELECT id, name, status, CAST(payload AS VARCHAR), updated_at
		FROM offers
		WHERE id = ?
	`
	var (
		record  store.OfferRecord
		name    sql.NullString
		payload string
	)
	err := duckdb.Conn(ctx, o.db).QueryRowContext(ctx, query, id).
		Scan(&record.ID, &name, &record.Status, &payload, &record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("offer %s: %w", id, domain.ErrOfferNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query offer %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(payload), &record.Payload); err != nil {
		return nil, fmt.Errorf("decode offer %s payload: %w", id, err)
	}
	record.Name = name.String
	return &record, nil
}

func (o *offerStore) SaveOffer(ctx context.Context, record store.OfferRecord) error {
	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return fmt.Errorf("encode offer %s payload: %w", record.ID, err)
	}

	status := record.Status
	if status == "" {
		status = string(domain.OfferStatusDraft)
	}

	query := `
		INSERT OR REPLACE INTO offers (id, name, status, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = duckdb.Conn(ctx, o.db).ExecContext(ctx, query,
		record.ID, record.Name, status, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save offer %s: %w", record.ID, err)
	}
	return nil
}

func (o *offerStore) MarkSigned(ctx context.Context, id string) error {
	query := `UPDATE offers SET status = ?, updated_at = ? WHERE id = ?`
	res, err := duckdb.Conn(ctx, o.db).ExecContext(ctx, query,
		string(domain.OfferStatusSigned), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark offer %s signed: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark offer %s signed: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("offer %s: %w", id, domain.ErrOfferNotFound)
	}
	return nil
}

func (o *offerStore) SaveSnapshot(ctx context.Context, record store.SnapshotRecord) error {
	costs, err := json.Marshal(record.CategoryCosts)
	if err != nil {
		return fmt.Errorf("encode snapshot costs: %w", err)
	}

	query := `
		INSERT INTO offer_snapshots (offer_id, id, net_profit, category_costs, currency, signed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = duckdb.Conn(ctx, o.db).ExecContext(ctx, query,
		record.OfferID, record.ID, record.NetProfit, string(costs), record.Currency, record.SignedAt.UTC())
	if err != nil {
		return fmt.Errorf("save snapshot for offer %s: %w", record.OfferID, err)
	}
	return nil
}

func (o *offerStore) GetSnapshot(ctx context.Context, offerID string) (*store.SnapshotRecord, error) {
	query := `
		SELECT id, offer_id, net_profit, CAST(category_costs AS VARCHAR), currency, signed_at
		FROM offer_snapshots
		WHERE offer_id = ?
	`
	var (
		record   store.SnapshotRecord
		costs    sql.NullString
		currency sql.NullString
	)
	err := duckdb.Conn(ctx, o.db).QueryRowContext(ctx, query, offerID).
		Scan(&record.ID, &record.OfferID, &record.NetProfit, &costs, &currency, &record.SignedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("offer %s: %w", offerID, domain.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot for offer %s: %w", offerID, err)
	}

	record.CategoryCosts = map[string]float64{}
	if costs.Valid && costs.String != "" {
		if err := json.Unmarshal([]byte(costs.String), &record.CategoryCosts); err != nil {
			return nil, fmt.Errorf("decode snapshot costs: %w", err)
		}
	}
	record.Currency = currency.String
	record.SignedAt = record.SignedAt.UTC()
	return &record, nil
}

func (o *offerStore) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return duckdb.InTransaction(ctx, o.db, fn)
}
