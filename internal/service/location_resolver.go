package service

import (
	"context"
	"errors"

	"event-lifecycle-service/internal/cache"
	"event-lifecycle-service/internal/model"
	"event-lifecycle-service/internal/repository"
	"event-lifecycle-service/pkg/logger"

	"go.uber.org/zap"
)

// LocationResolver 把座標對應到既有的 location 列，不存在時才建立。
// 去重以精確相等為準。兩個並發請求對同一組首次出現的座標可能各建一列，
// 這是可接受的容忍範圍（DB 唯一索引實務上會擋下）。
type LocationResolver interface {
	Resolve(ctx context.Context, latitude, longitude float64) (*model.Location, error)
}

type LocationResolverImpl struct {
	repo  repository.LocationRepository
	cache cache.LocationCache
}

func NewLocationResolver(repo repository.LocationRepository, locationCache cache.LocationCache) LocationResolver {
	return &LocationResolverImpl{
		repo:  repo,
		cache: locationCache,
	}
}

func (r *LocationResolverImpl) Resolve(ctx context.Context, latitude, longitude float64) (*model.Location, error) {
	log := logger.WithComponent("location_resolver")

	// 快取命中就不打 DB；快取故障只記 log，退回 DB 路徑
	id, err := r.cache.GetID(ctx, latitude, longitude)
	if err == nil {
		return &model.Location{ID: id, Latitude: latitude, Longitude: longitude}, nil
	}
	if !errors.Is(err, cache.ErrLocationNotCached) {
		log.Warn("location cache lookup failed", zap.Error(err))
	}

	location, err := r.repo.FindByCoordinates(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	if location == nil {
		location, err = r.repo.Create(ctx, latitude, longitude)
		if err != nil {
			return nil, err
		}
	}

	if err := r.cache.SetID(ctx, latitude, longitude, location.ID); err != nil {
		log.Warn("location cache write failed", zap.Error(err))
	}

	return location, nil
}
