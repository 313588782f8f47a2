package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/ecoshare/ecoshare-backend/internal/model"
	"github.com/ecoshare/ecoshare-backend/internal/store"
)

var ErrNotFound = errors.New("not found")

// fallbackImageURL is shown for listings submitted without an image.
const fallbackImageURL = "https://images.unsplash.com/photo-1526178613658-3d07e1b13149?auto=format&fit=crop&w=300&q=80"

// ImageUpload is the raw image selection: declared media type plus content.
type ImageUpload struct {
	MediaType string `json:"mediaType"`
	Data      []byte `json:"data"`
}

type CreateListingInput struct {
	Title       string
	Description string
	Category    string
	IsDonation  bool
	Price       *uint
	Image       *ImageUpload
}

type ListingService interface {
	Create(ctx context.Context, postedBy string, in CreateListingInput) (*model.Listing, error)
	Get(ctx context.Context, id uint64) (*model.Listing, error)
	List(ctx context.Context, filter store.ListingFilter, viewer string) ([]model.Listing, error)
}

type listingService struct {
	store         store.ListingStore
	submitDelay   time.Duration
	maxImageBytes int64
}

func NewListingService(st store.ListingStore, submitDelay time.Duration, maxImageBytes int64) ListingService {
	return &listingService{store: st, submitDelay: submitDelay, maxImageBytes: maxImageBytes}
}

func (s *listingService) Create(ctx context.Context, postedBy string, in CreateListingInput) (*model.Listing, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	category := strings.TrimSpace(in.Category)
	if title == "" || len(title) > 64 {
		return nil, errors.New("invalid title")
	}
	if description == "" || len(description) > 220 {
		return nil, errors.New("invalid description")
	}
	if category == "" || len(category) > 36 {
		return nil, errors.New("invalid category")
	}

	price := in.Price
	if in.IsDonation {
		price = nil
	} else if price == nil {
		return nil, errors.New("price is required")
	}

	img, err := s.resolveImage(in.Image)
	if err != nil {
		return nil, err
	}

	if err := waitFor(ctx, s.submitDelay); err != nil {
		return nil, err
	}

	listing := model.Listing{
		Title:       title,
		Description: description,
		Category:    category,
		IsDonation:  in.IsDonation,
		Price:       price,
		PostedBy:    postedBy,
		Img:         img,
		Status:      model.StatusUnset,
	}
	return s.store.Append(ctx, listing)
}

// resolveImage validates an optional upload and packages it as a data URL,
// falling back to a stock photo when nothing was selected.
func (s *listingService) resolveImage(upload *ImageUpload) (*string, error) {
	if upload == nil {
		fb := fallbackImageURL
		return &fb, nil
	}
	if !strings.HasPrefix(upload.MediaType, "image/") {
		return nil, errors.New("file is not an image")
	}
	if int64(len(upload.Data)) > s.maxImageBytes {
		return nil, errors.New("image must be less than 4MB")
	}
	dataURL := "data:" + upload.MediaType + ";base64," + base64.StdEncoding.EncodeToString(upload.Data)
	return &dataURL, nil
}

func (s *listingService) Get(ctx context.Context, id uint64) (*model.Listing, error) {
	listing, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrListingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingService) List(ctx context.Context, filter store.ListingFilter, viewer string) ([]model.Listing, error) {
	switch filter {
	case store.FilterAll, store.FilterSale, store.FilterDonation, store.FilterMine:
	default:
		filter = store.FilterAll
	}
	return s.store.List(ctx, filter, viewer)
}
