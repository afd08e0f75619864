package repository

import (
	"context"
	"errors"

	"event-lifecycle-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository interface {
	// FindByCoordinates 以精確座標查詢，查無資料時回傳 (nil, nil)
	FindByCoordinates(ctx context.Context, latitude, longitude float64) (*model.Location, error)
	Create(ctx context.Context, latitude, longitude float64) (*model.Location, error)
}

type LocationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &LocationRepositoryImpl{
		pool: pool,
	}
}

func (r *LocationRepositoryImpl) FindByCoordinates(ctx context.Context, latitude, longitude float64) (*model.Location, error) {
	query := `
		SELECT id, latitude, longitude
		FROM locations
		WHERE latitude = $1 AND longitude = $2
	`
	var location model.Location
	err := r.pool.QueryRow(ctx, query, latitude, longitude).Scan(
		&location.ID,
		&location.Latitude,
		&location.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) Create(ctx context.Context, latitude, longitude float64) (*model.Location, error) {
	// 唯一索引擋下同座標的並發首次寫入，撞上時改拿既有列
	query := `
		INSERT INTO locations (latitude, longitude)
		VALUES ($1, $2)
		ON CONFLICT (latitude, longitude) DO UPDATE SET latitude = EXCLUDED.latitude
		RETURNING id, latitude, longitude
	`
	var location model.Location
	err := r.pool.QueryRow(ctx, query, latitude, longitude).Scan(
		&location.ID,
		&location.Latitude,
		&location.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &location, nil
}
