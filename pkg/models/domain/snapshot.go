package domain

import "time"

// Snapshot is the financial state frozen when an offer is signed. It stays valid
// after the catalog changes.
type Snapshot struct {
	ID            string
	OfferID       string
	SignedAt      time.Time
	NetProfit     float64
	CategoryCosts map[string]float64
	Currency      string
}
