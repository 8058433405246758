package handler

import (
	"net/http"

	"lookate/internal/delivery/http/response"
	"lookate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PresenceHandler serves presence snapshots to polling clients
type PresenceHandler struct {
	presenceUC usecase.PresenceUsecase
}

// NewPresenceHandler is the constructor for PresenceHandler
func NewPresenceHandler(presenceUC usecase.PresenceUsecase) *PresenceHandler {
	return &PresenceHandler{presenceUC: presenceUC}
}

// GetPresence returns the currently online users
func (h *PresenceHandler) GetPresence(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.presenceUC.ConnectedUsers(c.Request().Context()), "Presence retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
