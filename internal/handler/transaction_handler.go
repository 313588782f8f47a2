package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecoshare/ecoshare-backend/internal/model"
	"github.com/ecoshare/ecoshare-backend/internal/service"
)

type TransactionHandler struct {
	svc service.TransactionService
}

func NewTransactionHandler(svc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

type TransactionBody struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Message string `json:"message"`
}

func (h *TransactionHandler) Buy(c echo.Context) error {
	return h.submit(c, model.ModeBuy)
}

func (h *TransactionHandler) Request(c echo.Context) error {
	return h.submit(c, model.ModeRequest)
}

func (h *TransactionHandler) submit(c echo.Context, mode model.TransactionMode) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid listing id"))
	}
	var body TransactionBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	listing, err := h.svc.Submit(c.Request().Context(), model.TransactionRequest{
		Mode:      mode,
		ListingID: id,
		Name:      body.Name,
		Contact:   body.Contact,
		Message:   body.Message,
	})
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "listing not found"))
		case service.ErrAlreadyClosed:
			return c.JSON(http.StatusConflict, NewErrorResponse("already_closed", "listing is no longer available"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}
