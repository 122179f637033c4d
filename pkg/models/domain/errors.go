package domain

import "errors"

var (
	ErrOfferNotFound      = errors.New("offer not found")
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrOfferAlreadySigned = errors.New("offer already signed")
	ErrInvalidInput       = errors.New("invalid input")
)
