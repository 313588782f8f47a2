package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmw "github.com/ecoshare/ecoshare-backend/internal/middleware"
	"github.com/ecoshare/ecoshare-backend/internal/session"
)

type SessionHandler struct {
	holder *session.Holder
}

func NewSessionHandler(holder *session.Holder) *SessionHandler {
	return &SessionHandler{holder: holder}
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

func (h *SessionHandler) Login(c echo.Context) error {
	var creds session.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	sess, err := h.holder.Login(creds)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("invalid_credentials", "invalid credentials"))
	}
	return c.JSON(http.StatusOK, LoginResponse{Token: sess.Token, Name: sess.Name})
}

func (h *SessionHandler) Logout(c echo.Context) error {
	token, _ := c.Get(appmw.SessionTokenKey).(string)
	h.holder.Logout(token)
	return c.JSON(http.StatusOK, OK())
}

func (h *SessionHandler) Me(c echo.Context) error {
	name, _ := c.Get(appmw.SessionNameKey).(string)
	return c.JSON(http.StatusOK, map[string]string{"name": name})
}
