package store

import (
	"context"
	"sync"
	"time"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

// Memory is the default ListingStore: a mutex-guarded in-process slice.
// State is lost when the process exits.
type Memory struct {
	mu       sync.Mutex
	nextID   uint64
	listings []model.Listing
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) List(_ context.Context, filter ListingFilter, viewer string) ([]model.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		switch filter {
		case FilterSale:
			if l.IsDonation {
				continue
			}
		case FilterDonation:
			if !l.IsDonation {
				continue
			}
		case FilterMine:
			if viewer == "" || l.PostedBy != viewer {
				continue
			}
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *Memory) FindByID(_ context.Context, id uint64) (*model.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.listings {
		if l.ID == id {
			cp := l
			return &cp, nil
		}
	}
	return nil, ErrListingNotFound
}

func (m *Memory) Append(_ context.Context, listing model.Listing) (*model.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	listing.ID = m.nextID
	if listing.PostedBy == "" {
		listing.PostedBy = "Anonymous"
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	m.listings = append([]model.Listing{listing}, m.listings...)
	cp := listing
	return &cp, nil
}

func (m *Memory) SetStatus(_ context.Context, id uint64, status model.ListingStatus) (*model.Listing, error) {
	if !status.Terminal() {
		return nil, ErrInvalidStatus
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.listings {
		if m.listings[i].ID != id {
			continue
		}
		if m.listings[i].Status.Terminal() {
			return nil, ErrListingClosed
		}
		m.listings[i].Status = status
		cp := m.listings[i]
		return &cp, nil
	}
	return nil, ErrListingNotFound
}
