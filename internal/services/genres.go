package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/models"
	"github.com/sbilibin2017/library-service/internal/validation"
)

// GenreService manages genres. The genre list is read through the cache
// when one is configured; cache failures fall back to the store.
type GenreService struct {
	genres     GenreStore
	cache      GenreCache
	afterWrite Deferrer
}

// NewGenreService creates a new GenreService. cache may be nil. afterWrite
// schedules the cache invalidation after commit; nil runs it immediately.
func NewGenreService(genres GenreStore, cache GenreCache, afterWrite Deferrer) *GenreService {
	return &GenreService{genres: genres, cache: cache, afterWrite: afterWrite}
}

// Create stores a genre. A taken name yields models.ErrGenreExists.
func (s *GenreService) Create(ctx context.Context, req models.CreateGenreRequest) (*models.GenreDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	genre, err := s.genres.Insert(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, storageError("insert genre", err)
	}

	if s.cache != nil {
		invalidate := func() {
			if err := s.cache.InvalidateGenres(ctx); err != nil {
				logger.FromContext(ctx).Warnw("failed to invalidate genre cache", "error", err)
			}
		}
		afterCommit(ctx, s.afterWrite, invalidate)
	}
	return genre, nil
}

// List returns every genre ordered by name. A miss is filled for the cache
// version seen before the store read, so a concurrent invalidation wins.
func (s *GenreService) List(ctx context.Context) ([]models.GenreDB, error) {
	log := logger.FromContext(ctx)

	var (
		version int64
		fill    bool
	)
	if s.cache != nil {
		cached, v, ok, err := s.cache.GetGenres(ctx)
		switch {
		case err != nil:
			log.Warnw("failed to read genre cache", "error", err)
		case ok:
			return cached, nil
		default:
			version, fill = v, true
		}
	}

	genres, err := s.genres.List(ctx)
	if err != nil {
		return nil, storageError("list genres", err)
	}

	if fill {
		if err := s.cache.SetGenres(ctx, version, genres); err != nil {
			log.Warnw("failed to cache genres", "error", err)
		}
	}
	return genres, nil
}
