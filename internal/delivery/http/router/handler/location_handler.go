package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"lookate/internal/delivery/http/middleware"
	"lookate/internal/delivery/http/response"
	domainerrors "lookate/internal/domain/errors"
	"lookate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest represents the request body for reporting a location
type UpdateLocationRequest struct {
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180"`
	City           string  `json:"city" validate:"required"`
	Country        string  `json:"country" validate:"required"`
	CountryCode    string  `json:"countryCode" validate:"required,len=2"`
	AccuracyMeters float64 `json:"accuracy,omitempty" validate:"gte=0"`
}

// GetLocations returns active user locations. With lat, lng and radius query
// parameters it runs a radius search, otherwise it returns the most recent
// snapshot bounded by limit.
func (h *LocationHandler) GetLocations(c echo.Context) error {
	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" || c.QueryParam("radius") != "" {
		return h.getLocationsInRadius(c)
	}

	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "VALIDATION_FAILED", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	locations, err := h.locationUC.ActiveUserLocations(c.Request().Context(), limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Active user locations retrieved successfully")
}

func (h *LocationHandler) getLocationsInRadius(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "lng must be a number")
	}

	radiusKm, err := strconv.ParseFloat(c.QueryParam("radius"), 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "radius must be a number")
	}

	locations, err := h.locationUC.UserLocationsInRadius(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "User locations retrieved successfully")
}

// UpdateLocation handles a location report from the poll transport
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok := h.getUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_FAILED", "Invalid user ID in token")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		City:           req.City,
		Country:        req.Country,
		CountryCode:    req.CountryCode,
		AccuracyMeters: req.AccuracyMeters,
	}

	location, err := h.locationUC.ApplyUpdate(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// DeleteLocation removes the caller's stored location
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	userID, ok := h.getUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_FAILED", "Invalid user ID in token")
	}

	if err := h.locationUC.RemoveLocation(c.Request().Context(), userID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location removed"}, "Location removed successfully")
}

// getUserID extracts the authenticated user ID from the context. The second
// return reports whether the identity was present; callers must stop on false.
func (h *LocationHandler) getUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)

	return userID, ok
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
