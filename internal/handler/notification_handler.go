package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecoshare/ecoshare-backend/internal/service"
)

type NotificationHandler struct {
	toasts service.ToastService
}

func NewNotificationHandler(toasts service.ToastService) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

type NoticeResponse struct {
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"createdAt"`
}

func (h *NotificationHandler) Current(c echo.Context) error {
	notice, ok := h.toasts.Current()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, NoticeResponse{
		Message:   notice.Message,
		Kind:      string(notice.Kind),
		CreatedAt: notice.CreatedAt.Format(time.RFC3339),
	})
}

func (h *NotificationHandler) Dismiss(c echo.Context) error {
	h.toasts.Dismiss()
	return c.JSON(http.StatusOK, OK())
}
