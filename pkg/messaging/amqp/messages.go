package amqp

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// SnapshotSignedMessage announces a signed offer so that project creation can start
type SnapshotSignedMessage struct {
	SnapshotID    string             `json:"snapshot_id"`
	OfferID       string             `json:"offer_id"`
	NetProfit     float64            `json:"net_profit"`
	CategoryCosts map[string]float64 `json:"category_costs"`
	Currency      string             `json:"currency"`
	SignedAt      time.Time          `json:"signed_at"`
	Timestamp     time.Time          `json:"timestamp"`
}

func NewSnapshotSignedMessage(snapshot domain.Snapshot) *SnapshotSignedMessage {
	return &SnapshotSignedMessage{
		SnapshotID:    snapshot.ID,
		OfferID:       snapshot.OfferID,
		NetProfit:     snapshot.NetProfit,
		CategoryCosts: maps.Clone(snapshot.CategoryCosts),
		Currency:      snapshot.Currency,
		SignedAt:      snapshot.SignedAt,
		Timestamp:     time.Now().UTC(),
	}
}

func (m *SnapshotSignedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SnapshotSignedMessageFromJSON(data []byte) (*SnapshotSignedMessage, error) {
	var msg SnapshotSignedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
