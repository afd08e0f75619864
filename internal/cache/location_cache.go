package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// locationCacheTTL 座標對應的快取存活時間
const locationCacheTTL = 24 * time.Hour

// ErrLocationNotCached 快取中沒有該座標
var ErrLocationNotCached = errors.New("location not cached")

// LocationCache 快取精確座標到 location id 的對應，減少重複座標的 DB 查詢
type LocationCache interface {
	GetID(ctx context.Context, latitude, longitude float64) (int64, error)
	SetID(ctx context.Context, latitude, longitude float64, id int64) error
}

type RedisLocationCache struct {
	client *redis.Client
}

func NewRedisLocationCache(client *redis.Client) LocationCache {
	return &RedisLocationCache{
		client: client,
	}
}

// 座標 key：以完整精度格式化，與 DB 的精確比對一致
func (c *RedisLocationCache) getKey(latitude, longitude float64) string {
	return fmt.Sprintf("location:%s:%s",
		strconv.FormatFloat(latitude, 'g', -1, 64),
		strconv.FormatFloat(longitude, 'g', -1, 64),
	)
}

func (c *RedisLocationCache) GetID(ctx context.Context, latitude, longitude float64) (int64, error) {
	val, err := c.client.Get(ctx, c.getKey(latitude, longitude)).Int64()
	if err == redis.Nil {
		return 0, ErrLocationNotCached
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

func (c *RedisLocationCache) SetID(ctx context.Context, latitude, longitude float64, id int64) error {
	return c.client.Set(ctx, c.getKey(latitude, longitude), id, locationCacheTTL).Err()
}
