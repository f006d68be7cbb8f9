package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-lite/internal/domains/author/model"
	"library-lite/pkg/cache"
)

// cachedAuthorService serves GetByID from the cache and drops the entry on
// Update and Delete. Cache failures are logged and never fail a request.
type cachedAuthorService struct {
	ServiceInterface
	cache cache.Cache
	ttl   time.Duration
	locks cache.KeyLock // fill and evict of one id never interleave
}

// NewCachedAuthorService wraps next with a read-through detail cache.
func NewCachedAuthorService(next ServiceInterface, c cache.Cache, ttl time.Duration) ServiceInterface {
	return &cachedAuthorService{ServiceInterface: next, cache: c, ttl: ttl}
}

// DetailCacheKey is the cache key of a single author.
func DetailCacheKey(id uuid.UUID) string {
	return "author:detail:" + id.String()
}

func (s *cachedAuthorService) GetByID(ctx context.Context, id uuid.UUID) (model.AuthorResponse, bool, error) {
	key := DetailCacheKey(id)

	var cached model.AuthorResponse
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache read failed")
	}
	if found {
		return cached, true, nil
	}

	unlock := s.locks.Lock(key)
	defer unlock()

	resp, found, err := s.ServiceInterface.GetByID(ctx, id)
	if err != nil || !found {
		return resp, found, err
	}

	if err := s.cache.Set(ctx, key, resp, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache write failed")
	}
	return resp, true, nil
}

func (s *cachedAuthorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (model.AuthorResponse, bool, error) {
	unlock := s.locks.Lock(DetailCacheKey(id))
	defer unlock()

	resp, found, err := s.ServiceInterface.Update(ctx, id, req)
	if found {
		s.evict(ctx, id)
	}
	return resp, found, err
}

func (s *cachedAuthorService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	unlock := s.locks.Lock(DetailCacheKey(id))
	defer unlock()

	deleted, err := s.ServiceInterface.Delete(ctx, id)
	if deleted {
		s.evict(ctx, id)
	}
	return deleted, err
}

func (s *cachedAuthorService) evict(ctx context.Context, id uuid.UUID) {
	key := DetailCacheKey(id)
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache eviction failed")
	}
}
