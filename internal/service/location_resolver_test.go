package service_test

import (
	"context"
	"errors"
	"testing"

	"event-lifecycle-service/internal/cache"
	cacheMocks "event-lifecycle-service/internal/cache/mocks"
	"event-lifecycle-service/internal/model"
	repoMocks "event-lifecycle-service/internal/repository/mocks"
	"event-lifecycle-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	latitude, longitude := 32.08, 34.78

	t.Run("cache hit skips the database", func(t *testing.T) {
		repo := repoMocks.NewLocationRepositoryMock()
		locationCache := cacheMocks.NewLocationCacheMock()
		resolver := service.NewLocationResolver(repo, locationCache)

		locationCache.On("GetID", ctx, latitude, longitude).Return(int64(7), nil).Once()

		location, err := resolver.Resolve(ctx, latitude, longitude)

		require.NoError(t, err)
		assert.Equal(t, int64(7), location.ID)
		assert.Equal(t, latitude, location.Latitude)
		assert.Equal(t, longitude, location.Longitude)
		repo.AssertNotCalled(t, "FindByCoordinates")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("cache miss resolves existing row and backfills cache", func(t *testing.T) {
		repo := repoMocks.NewLocationRepositoryMock()
		locationCache := cacheMocks.NewLocationCacheMock()
		resolver := service.NewLocationResolver(repo, locationCache)

		existing := &model.Location{ID: 7, Latitude: latitude, Longitude: longitude}
		locationCache.On("GetID", ctx, latitude, longitude).Return(int64(0), cache.ErrLocationNotCached).Once()
		repo.On("FindByCoordinates", ctx, latitude, longitude).Return(existing, nil).Once()
		locationCache.On("SetID", ctx, latitude, longitude, int64(7)).Return(nil).Once()

		location, err := resolver.Resolve(ctx, latitude, longitude)

		require.NoError(t, err)
		assert.Equal(t, existing, location)
		repo.AssertNotCalled(t, "Create")
		locationCache.AssertExpectations(t)
	})

	t.Run("creates a row for never-seen coordinates", func(t *testing.T) {
		repo := repoMocks.NewLocationRepositoryMock()
		locationCache := cacheMocks.NewLocationCacheMock()
		resolver := service.NewLocationResolver(repo, locationCache)

		created := &model.Location{ID: 9, Latitude: latitude, Longitude: longitude}
		locationCache.On("GetID", ctx, latitude, longitude).Return(int64(0), cache.ErrLocationNotCached).Once()
		repo.On("FindByCoordinates", ctx, latitude, longitude).Return(nil, nil).Once()
		repo.On("Create", ctx, latitude, longitude).Return(created, nil).Once()
		locationCache.On("SetID", ctx, latitude, longitude, int64(9)).Return(nil).Once()

		location, err := resolver.Resolve(ctx, latitude, longitude)

		require.NoError(t, err)
		assert.Equal(t, created, location)
		repo.AssertExpectations(t)
	})

	t.Run("identical coordinates resolve to the same identifier", func(t *testing.T) {
		repo := repoMocks.NewLocationRepositoryMock()
		locationCache := cacheMocks.NewLocationCacheMock()
		resolver := service.NewLocationResolver(repo, locationCache)

		created := &model.Location{ID: 9, Latitude: latitude, Longitude: longitude}
		locationCache.On("GetID", ctx, latitude, longitude).Return(int64(0), cache.ErrLocationNotCached).Once()
		repo.On("FindByCoordinates", ctx, latitude, longitude).Return(nil, nil).Once()
		repo.On("Create", ctx, latitude, longitude).Return(created, nil).Once()
		locationCache.On("SetID", ctx, latitude, longitude, int64(9)).Return(nil).Once()
		// 第二次解析走快取
		locationCache.On("GetID", ctx, latitude, longitude).Return(int64(9), nil).Once()

		first, err := resolver.Resolve(ctx, latitude, longitude)
		require.NoError(t, err)
		second, err := resolver.Resolve(ctx, latitude, longitude)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		repo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("cache failure degrades to the database path", func(t *testing.T) {
		repo := repoMocks.NewLocationRepositoryMock()
		locationCache := cacheMocks.NewLocationCacheMock()
		resolver := service.NewLocationResolver(repo, locationCache)

		existing := &model.Location{ID: 7, Latitude: latitude, Longitude: longitude}
		locationCache.On("GetID", ctx, latitude, longitude).Return(int64(0), errors.New("redis down")).Once()
		repo.On("FindByCoordinates", ctx, latitude, longitude).Return(existing, nil).Once()
		locationCache.On("SetID", ctx, latitude, longitude, int64(7)).Return(errors.New("redis down")).Once()

		location, err := resolver.Resolve(ctx, latitude, longitude)

		require.NoError(t, err)
		assert.Equal(t, existing, location)
	})

	t.Run("database failure propagates", func(t *testing.T) {
		repo := repoMocks.NewLocationRepositoryMock()
		locationCache := cacheMocks.NewLocationCacheMock()
		resolver := service.NewLocationResolver(repo, locationCache)

		locationCache.On("GetID", ctx, latitude, longitude).Return(int64(0), cache.ErrLocationNotCached).Once()
		repo.On("FindByCoordinates", ctx, latitude, longitude).Return(nil, errors.New("connection refused")).Once()

		_, err := resolver.Resolve(ctx, latitude, longitude)

		require.Error(t, err)
		locationCache.AssertNotCalled(t, "SetID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
