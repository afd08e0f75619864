package service_test

import (
	"testing"
	"time"

	"event-lifecycle-service/internal/model"
	"event-lifecycle-service/internal/service"
	apperrors "event-lifecycle-service/pkg/app_errors"
	"event-lifecycle-service/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validatorNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func validRequest() *model.UpsertEventRequest {
	latitude, longitude := 32.08, 34.78
	return &model.UpsertEventRequest{
		Name:        "Conference2026",
		CreateDate:  validatorNow.Add(24 * time.Hour).Format(time.RFC3339),
		Location:    model.LocationRequest{Latitude: &latitude, Longitude: &longitude},
		Alerts:      []int64{101, 202},
		Status:      1,
		Description: "test event",
	}
}

func TestEventValidator_Validate(t *testing.T) {
	validator := service.NewEventValidator(clock.Fixed(validatorNow))

	t.Run("accepts a valid request", func(t *testing.T) {
		req := validRequest()
		createDate, err := validator.Validate(req)
		require.NoError(t, err)
		assert.Equal(t, validatorNow.Add(24*time.Hour), createDate.UTC())
	})

	t.Run("rejects status outside 1..6", func(t *testing.T) {
		for _, status := range []int{0, 7, -3} {
			req := validRequest()
			req.Status = status
			_, err := validator.Validate(req)
			assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "status %d", status)
		}
	})

	t.Run("checks latitude boundaries exactly", func(t *testing.T) {
		cases := []struct {
			latitude float64
			wantErr  bool
		}{
			{28.99, true},
			{29.0, false},
			{33.5, false},
			{33.51, true},
		}
		for _, tc := range cases {
			req := validRequest()
			req.Location.Latitude = &tc.latitude
			_, err := validator.Validate(req)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrLocationOutOfBounds, "latitude %v", tc.latitude)
			} else {
				assert.NoError(t, err, "latitude %v", tc.latitude)
			}
		}
	})

	t.Run("checks longitude boundaries exactly", func(t *testing.T) {
		cases := []struct {
			longitude float64
			wantErr   bool
		}{
			{33.99, true},
			{34.0, false},
			{36.0, false},
			{36.01, true},
		}
		for _, tc := range cases {
			req := validRequest()
			req.Location.Longitude = &tc.longitude
			_, err := validator.Validate(req)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrLocationOutOfBounds, "longitude %v", tc.longitude)
			} else {
				assert.NoError(t, err, "longitude %v", tc.longitude)
			}
		}
	})

	t.Run("rejects create_date in the past", func(t *testing.T) {
		req := validRequest()
		req.CreateDate = validatorNow.Add(-time.Minute).Format(time.RFC3339)
		_, err := validator.Validate(req)
		assert.ErrorIs(t, err, apperrors.ErrEventNotInFuture)
	})

	t.Run("rejects create_date equal to now", func(t *testing.T) {
		req := validRequest()
		req.CreateDate = validatorNow.Format(time.RFC3339)
		_, err := validator.Validate(req)
		assert.ErrorIs(t, err, apperrors.ErrEventNotInFuture)
	})

	t.Run("accepts create_date with offset", func(t *testing.T) {
		req := validRequest()
		req.CreateDate = "2026-01-02T12:00:00+02:00"
		_, err := validator.Validate(req)
		assert.NoError(t, err)
	})

	t.Run("rejects malformed create_date", func(t *testing.T) {
		req := validRequest()
		req.CreateDate = "tomorrow"
		_, err := validator.Validate(req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCreateDate)
	})

	t.Run("short-circuits on first failure", func(t *testing.T) {
		req := validRequest()
		req.Status = 9
		badLatitude := 10.0
		req.Location.Latitude = &badLatitude
		_, err := validator.Validate(req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})
}
