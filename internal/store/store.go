package store

import (
	"context"
	"errors"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

type ListingFilter string

const (
	FilterAll      ListingFilter = "all"
	FilterSale     ListingFilter = "sale"
	FilterDonation ListingFilter = "donation"
	FilterMine     ListingFilter = "mine"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingClosed   = errors.New("listing already closed")
	ErrInvalidStatus   = errors.New("invalid status")
)

// ListingStore owns the listing collection. All mutation goes through it;
// callers never touch the collection directly.
//
// List returns listings most-recent-first. FilterMine compares PostedBy
// against viewer and yields nothing when viewer is empty. SetStatus applies
// the single irreversible transition away from StatusUnset and fails with
// ErrListingClosed once a listing carries a terminal status.
type ListingStore interface {
	List(ctx context.Context, filter ListingFilter, viewer string) ([]model.Listing, error)
	FindByID(ctx context.Context, id uint64) (*model.Listing, error)
	Append(ctx context.Context, listing model.Listing) (*model.Listing, error)
	SetStatus(ctx context.Context, id uint64, status model.ListingStatus) (*model.Listing, error)
}
