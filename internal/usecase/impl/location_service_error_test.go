package impl

import (
	"context"
	"testing"

	"lookate/internal/domain/entity"
	domainerrors "lookate/internal/domain/errors"
	"lookate/internal/domain/repository"
	"lookate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestLocationService_ApplyUpdate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.UpdateLocationInput)
	}{
		{"latitude above range", func(in *usecase.UpdateLocationInput) { in.Latitude = 95 }},
		{"latitude below range", func(in *usecase.UpdateLocationInput) { in.Latitude = -90.5 }},
		{"longitude above range", func(in *usecase.UpdateLocationInput) { in.Longitude = 181 }},
		{"longitude below range", func(in *usecase.UpdateLocationInput) { in.Longitude = -180.1 }},
		{"missing city", func(in *usecase.UpdateLocationInput) { in.City = "" }},
		{"missing country", func(in *usecase.UpdateLocationInput) { in.Country = "" }},
		{"country code too long", func(in *usecase.UpdateLocationInput) { in.CountryCode = "USA" }},
		{"country code too short", func(in *usecase.UpdateLocationInput) { in.CountryCode = "U" }},
		{"negative accuracy", func(in *usecase.UpdateLocationInput) { in.AccuracyMeters = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: validation failures must leave
			// storage untouched.
			fx := createTestLocationService(t)

			input := validInput()
			tt.mutate(input)

			location, err := fx.service.ApplyUpdate(context.Background(), uuid.New(), input)
			assert.Nil(t, location)
			assertAppErrorCode(t, err, "VALIDATION_FAILED")

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.NotEmpty(t, appErr.Details())
		})
	}
}

func TestLocationService_ApplyUpdate_NilInput(t *testing.T) {
	fx := createTestLocationService(t)

	location, err := fx.service.ApplyUpdate(context.Background(), uuid.New(), nil)
	assert.Nil(t, location)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestLocationService_ApplyUpdate_UnknownUser(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	location, err := fx.service.ApplyUpdate(ctx, userID, validInput())
	assert.Nil(t, location)
	assertAppErrorCode(t, err, "USER_NOT_FOUND")
}

func TestLocationService_ApplyUpdate_StorageFailure(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	driverErr := errors.New("connection reset")

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.locationRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, driverErr)

	location, err := fx.service.ApplyUpdate(ctx, userID, validInput())
	assert.Nil(t, location)
	assertAppErrorCode(t, err, "STORAGE_EXECUTE_FAILED")
	assert.ErrorIs(t, err, driverErr)
}

func TestLocationService_ActiveUserLocations_StorageFailure(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	driverErr := errors.New("cursor timeout")

	fx.locationRepo.EXPECT().
		FindActiveUserLocations(ctx, int64(50)).
		Return(nil, driverErr)

	locations, err := fx.service.ActiveUserLocations(ctx, 0)
	assert.Nil(t, locations)
	assertAppErrorCode(t, err, "STORAGE_EXECUTE_FAILED")
}

func TestLocationService_UserLocationsInRadius_InvalidQuery(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	_, err := fx.service.UserLocationsInRadius(ctx, 91, 0, 5)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")

	_, err = fx.service.UserLocationsInRadius(ctx, 0, 0, 0)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}
