package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/models"
)

// The list is stored under a versioned key. InvalidateGenres bumps the
// version, so a list read from the store before an invalidation is written
// to a key nobody reads any more and expires with the TTL.
const (
	genresVersionKey = "library:genres:version"
	genresKeyPrefix  = "library:genres:v"
)

func genresKey(version int64) string {
	return genresKeyPrefix + strconv.FormatInt(version, 10)
}

// GenreCacheRepository caches the genre list in Redis
type GenreCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

func NewGenreCacheRepository(client *redis.Client, expiration time.Duration) *GenreCacheRepository {
	return &GenreCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetGenres returns the cached list and the current version. ok is false on
// a cache miss; the caller fills the cache for that version.
func (r *GenreCacheRepository) GetGenres(ctx context.Context) (genres []models.GenreDB, version int64, ok bool, err error) {
	version, err = r.client.Get(ctx, genresVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, err
	}

	key := genresKey(version)
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, version, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}

	if err := json.Unmarshal(val, &genres); err != nil {
		logger.Log.Warnw("corrupt cache entry", "key", key, "error", err)
		return nil, 0, false, err
	}

	logger.Log.Debugw("cache hit", "key", key, "count", len(genres))
	return genres, version, true, nil
}

// SetGenres caches the list for version.
func (r *GenreCacheRepository) SetGenres(ctx context.Context, version int64, genres []models.GenreDB) error {
	data, err := json.Marshal(genres)
	if err != nil {
		return err
	}

	key := genresKey(version)
	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "count", len(genres), "error", err)
	return err
}

// InvalidateGenres moves readers to a new, empty version.
func (r *GenreCacheRepository) InvalidateGenres(ctx context.Context) error {
	err := r.client.Incr(ctx, genresVersionKey).Err()
	logger.Log.Debugw("cache invalidate", "key", genresVersionKey, "error", err)
	return err
}
