package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	appmw "github.com/ecoshare/ecoshare-backend/internal/middleware"
	"github.com/ecoshare/ecoshare-backend/internal/model"
	"github.com/ecoshare/ecoshare-backend/internal/service"
	"github.com/ecoshare/ecoshare-backend/internal/store"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

type ListingResponse struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	IsDonation  bool    `json:"isDonation"`
	Price       *uint   `json:"price,omitempty"`
	PostedBy    string  `json:"postedBy"`
	Img         *string `json:"img,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

type CreateListingRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	IsDonation  bool                 `json:"isDonation"`
	Price       *uint                `json:"price"`
	Image       *service.ImageUpload `json:"image"`
}

func (h *ListingHandler) Create(c echo.Context) error {
	name, _ := c.Get(appmw.SessionNameKey).(string)
	if name == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing session"))
	}
	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	listing, err := h.svc.Create(c.Request().Context(), name, service.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsDonation:  req.IsDonation,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

func (h *ListingHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	listing, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "listing not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch listing"))
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

func (h *ListingHandler) List(c echo.Context) error {
	filter := store.ListingFilter(c.QueryParam("filter"))
	if filter == "" {
		filter = store.FilterAll
	}
	viewer, _ := c.Get(appmw.SessionNameKey).(string)
	listings, err := h.svc.List(c.Request().Context(), filter, viewer)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch listings"))
	}
	resp := ListingListResponse{
		Listings: make([]ListingResponse, 0, len(listings)),
		Total:    len(listings),
	}
	for i := range listings {
		resp.Listings = append(resp.Listings, toListingResponse(&listings[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func toListingResponse(l *model.Listing) ListingResponse {
	return ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Category:    l.Category,
		IsDonation:  l.IsDonation,
		Price:       l.Price,
		PostedBy:    l.PostedBy,
		Img:         l.Img,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}
