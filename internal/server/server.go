package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ecoshare/ecoshare-backend/internal/config"
	"github.com/ecoshare/ecoshare-backend/internal/handler"
	appmw "github.com/ecoshare/ecoshare-backend/internal/middleware"
	"github.com/ecoshare/ecoshare-backend/internal/service"
	"github.com/ecoshare/ecoshare-backend/internal/session"
	"github.com/ecoshare/ecoshare-backend/internal/store"
)

type Server struct {
	e *echo.Echo
}

func New(cfg *config.Config, listings store.ListingStore, holder *session.Holder) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			return u.Scheme == "http" || u.Scheme == "https", nil
		},
	}))

	toastSvc := service.NewToastService(cfg.ToastTTL())
	listingSvc := service.NewListingService(listings, cfg.SubmitDelay(), cfg.MaxImageBytes)
	txSvc := service.NewTransactionService(listings, toastSvc, cfg.TransactionDelay())

	listingHandler := handler.NewListingHandler(listingSvc)
	txHandler := handler.NewTransactionHandler(txSvc)
	sessionHandler := handler.NewSessionHandler(holder)
	notificationHandler := handler.NewNotificationHandler(toastSvc)

	authMw := appmw.NewAuthMiddleware(holder)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.POST("/login", sessionHandler.Login)
	api.POST("/logout", sessionHandler.Logout, authMw.RequireSession)
	api.GET("/me", sessionHandler.Me, authMw.RequireSession)

	api.GET("/listings", listingHandler.List, authMw.OptionalSession)
	api.GET("/listings/:id", listingHandler.Get)
	api.POST("/listings", listingHandler.Create, authMw.RequireSession)

	api.POST("/listings/:id/buy", txHandler.Buy)
	api.POST("/listings/:id/request", txHandler.Request)

	api.GET("/notifications/current", notificationHandler.Current)
	api.DELETE("/notifications/current", notificationHandler.Dismiss)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
