package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lookate/internal/delivery/http/middleware"
	"lookate/internal/delivery/http/response"
	"lookate/internal/delivery/http/validator"
	"lookate/internal/domain/entity"
	domainerrors "lookate/internal/domain/errors"
	"lookate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocationUC struct {
	applyErr  error
	queryErr  error
	snapshot  []entity.UserLocation
	removeErr error

	lastLimit  int64
	lastRadius float64
	applied    *usecase.UpdateLocationInput
	removed    bool
}

func (s *stubLocationUC) ApplyUpdate(_ context.Context, userID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	s.applied = input
	if s.applyErr != nil {
		return nil, s.applyErr
	}

	return &entity.Location{
		ID:     uuid.New().String(),
		UserID: userID,
		Coordinates: entity.Coordinates{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		Timestamp: time.Now(),
	}, nil
}

func (s *stubLocationUC) ActiveUserLocations(_ context.Context, limit int64) ([]entity.UserLocation, error) {
	s.lastLimit = limit
	if s.queryErr != nil {
		return nil, s.queryErr
	}

	return s.snapshot, nil
}

func (s *stubLocationUC) UserLocationsInRadius(_ context.Context, _, _, radiusKm float64) ([]entity.UserLocation, error) {
	s.lastRadius = radiusKm
	if s.queryErr != nil {
		return nil, s.queryErr
	}

	return s.snapshot, nil
}

func (s *stubLocationUC) RemoveLocation(context.Context, uuid.UUID) error {
	s.removed = true

	return s.removeErr
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func createTestLocationHandler(uc *stubLocationUC) *LocationHandler {
	return NewLocationHandler(LocationHandlerParams{LocationUC: uc, Logger: slog.Default()})
}

func TestLocationHandler_GetLocationsSnapshot(t *testing.T) {
	uc := &stubLocationUC{snapshot: []entity.UserLocation{{UserID: uuid.New(), UserName: "alice", IsOnline: true}}}
	h := createTestLocationHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/api/locations?limit=25", "")
	require.NoError(t, h.GetLocations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(25), uc.lastLimit)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestLocationHandler_GetLocationsBadLimit(t *testing.T) {
	uc := &stubLocationUC{}
	h := createTestLocationHandler(uc)

	for _, limit := range []string{"abc", "-3", "1.5"} {
		c, rec := newTestContext(t, http.MethodGet, "/api/locations?limit="+limit, "")
		require.NoError(t, h.GetLocations(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	}
}

func TestLocationHandler_GetLocationsRadius(t *testing.T) {
	uc := &stubLocationUC{}
	h := createTestLocationHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/api/locations?lat=40.7&lng=-74.0&radius=5", "")
	require.NoError(t, h.GetLocations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5.0, uc.lastRadius)
}

func TestLocationHandler_GetLocationsRadiusMissingParams(t *testing.T) {
	uc := &stubLocationUC{}
	h := createTestLocationHandler(uc)

	// A radius query without lat falls into the radius branch and is rejected.
	c, rec := newTestContext(t, http.MethodGet, "/api/locations?radius=5", "")
	require.NoError(t, h.GetLocations(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_GetLocationsInvalidQuery(t *testing.T) {
	uc := &stubLocationUC{queryErr: domainerrors.ErrValidationFailed.WithDetails("radius must be positive")}
	h := createTestLocationHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/api/locations?lat=40.7&lng=-74.0&radius=-1", "")
	require.NoError(t, h.GetLocations(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestLocationHandler_UpdateLocation(t *testing.T) {
	uc := &stubLocationUC{}
	h := createTestLocationHandler(uc)

	body := `{"latitude":40.7128,"longitude":-74.0060,"city":"New York","country":"United States","countryCode":"US","accuracy":10}`
	c, rec := newTestContext(t, http.MethodPost, "/api/locations", body)
	c.Set(middleware.ContextUserID, uuid.New())

	require.NoError(t, h.UpdateLocation(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.applied)
	assert.Equal(t, "New York", uc.applied.City)
	assert.Equal(t, 10.0, uc.applied.AccuracyMeters)
}

func TestLocationHandler_UpdateLocationValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"latitude out of range", `{"latitude":95,"longitude":0,"city":"X","country":"Y","countryCode":"US"}`},
		{"missing city", `{"latitude":40,"longitude":0,"country":"Y","countryCode":"US"}`},
		{"bad country code", `{"latitude":40,"longitude":0,"city":"X","country":"Y","countryCode":"USA"}`},
		{"negative accuracy", `{"latitude":40,"longitude":0,"city":"X","country":"Y","countryCode":"US","accuracy":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubLocationUC{}
			h := createTestLocationHandler(uc)

			c, rec := newTestContext(t, http.MethodPost, "/api/locations", tt.body)
			c.Set(middleware.ContextUserID, uuid.New())

			require.NoError(t, h.UpdateLocation(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.applied, "invalid input must not reach the service")
		})
	}
}

func TestLocationHandler_UpdateLocationUnknownUser(t *testing.T) {
	uc := &stubLocationUC{applyErr: domainerrors.ErrUserNotFound}
	h := createTestLocationHandler(uc)

	body := `{"latitude":40,"longitude":0,"city":"X","country":"Y","countryCode":"US"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/locations", body)
	c.Set(middleware.ContextUserID, uuid.New())

	require.NoError(t, h.UpdateLocation(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
}

func TestLocationHandler_UpdateLocationMissingIdentity(t *testing.T) {
	uc := &stubLocationUC{}
	h := createTestLocationHandler(uc)

	body := `{"latitude":40,"longitude":0,"city":"X","country":"Y","countryCode":"US"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/locations", body)

	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.applied)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "AUTHENTICATION_FAILED", resp.Error.Code)
}

func TestLocationHandler_DeleteLocationMissingIdentity(t *testing.T) {
	uc := &stubLocationUC{}
	h := createTestLocationHandler(uc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/locations", "")

	require.NoError(t, h.DeleteLocation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, uc.removed)
}

func TestLocationHandler_DeleteLocation(t *testing.T) {
	uc := &stubLocationUC{}
	h := createTestLocationHandler(uc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/locations", "")
	c.Set(middleware.ContextUserID, uuid.New())

	require.NoError(t, h.DeleteLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.removed)
}
