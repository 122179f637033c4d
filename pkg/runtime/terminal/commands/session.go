package commands

import (
	"context"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/services/offer"
)

// ReportHandler renders a report in one output format
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// Session is an offer service bound to the database of a profile
type Session struct {
	Service offer.Service
	Profile domain.ConfigProfile
	Close   func() error
}

type SessionFactory func(ctx context.Context, profile string) (*Session, error)
