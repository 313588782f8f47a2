package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecoshare/ecoshare-backend/internal/model"
	"github.com/ecoshare/ecoshare-backend/internal/store"
)

var ErrAlreadyClosed = errors.New("already closed")

// TransactionService finalizes buy/request actions. A submitted request waits
// the configured delay, applies the single status transition and raises one
// toast; the request itself is discarded afterwards.
type TransactionService interface {
	Submit(ctx context.Context, req model.TransactionRequest) (*model.Listing, error)
}

type transactionService struct {
	store  store.ListingStore
	toasts ToastService
	delay  time.Duration
}

func NewTransactionService(st store.ListingStore, toasts ToastService, delay time.Duration) TransactionService {
	return &transactionService{store: st, toasts: toasts, delay: delay}
}

func (s *transactionService) Submit(ctx context.Context, req model.TransactionRequest) (*model.Listing, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	listing, err := s.store.FindByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, store.ErrListingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if listing.Status.Terminal() {
		return nil, ErrAlreadyClosed
	}

	// Cancelling mid-delay aborts before any mutation.
	if err := waitFor(ctx, s.delay); err != nil {
		return nil, err
	}

	status := model.StatusRequested
	if req.Mode == model.ModeBuy {
		status = model.StatusPurchased
	}
	updated, err := s.store.SetStatus(ctx, req.ListingID, status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrListingNotFound):
			return nil, ErrNotFound
		case errors.Is(err, store.ErrListingClosed):
			return nil, ErrAlreadyClosed
		default:
			return nil, err
		}
	}

	if req.Mode == model.ModeBuy {
		s.toasts.Notify("Purchase successful! \""+updated.Title+"\" is yours.", model.NoticeSuccess)
	} else {
		s.toasts.Notify("Request submitted for \""+updated.Title+"\". The donor will contact you.", model.NoticeSuccess)
	}
	return updated, nil
}

func validateRequest(req model.TransactionRequest) error {
	if req.Mode != model.ModeBuy && req.Mode != model.ModeRequest {
		return errors.New("invalid mode")
	}
	name := strings.TrimSpace(req.Name)
	contact := strings.TrimSpace(req.Contact)
	message := strings.TrimSpace(req.Message)
	if name == "" || len(name) > 64 {
		return errors.New("invalid name")
	}
	if contact == "" || len(contact) > 64 {
		return errors.New("invalid contact")
	}
	if len(message) > 220 {
		return errors.New("message too long")
	}
	if req.Mode == model.ModeBuy && message == "" {
		return errors.New("delivery address is required")
	}
	return nil
}
