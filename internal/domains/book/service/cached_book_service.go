package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-lite/internal/domains/book/model"
	"library-lite/pkg/cache"
)

// cachedBookService caches book details. Listing is never cached because
// any create, update or delete can reshape every page.
type cachedBookService struct {
	ServiceInterface
	cache cache.Cache
	ttl   time.Duration
	locks cache.KeyLock // fill and evict of one id never interleave
}

// NewCachedBookService wraps next with a read-through detail cache.
func NewCachedBookService(next ServiceInterface, c cache.Cache, ttl time.Duration) ServiceInterface {
	return &cachedBookService{ServiceInterface: next, cache: c, ttl: ttl}
}

// DetailCacheKey is the cache key of a single book.
func DetailCacheKey(id uuid.UUID) string {
	return "book:detail:" + id.String()
}

func (s *cachedBookService) GetByID(ctx context.Context, id uuid.UUID) (model.BookResponse, bool, error) {
	key := DetailCacheKey(id)

	var cached model.BookResponse
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book cache read failed")
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
		log.Warn().Err(err).Str("key", key).Msg("book cache write failed")
	}
	return resp, true, nil
}

func (s *cachedBookService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (model.BookResponse, bool, error) {
	unlock := s.locks.Lock(DetailCacheKey(id))
	defer unlock()

	resp, found, err := s.ServiceInterface.Update(ctx, id, req)
	if found {
		s.evict(ctx, id)
	}
	return resp, found, err
}

func (s *cachedBookService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	unlock := s.locks.Lock(DetailCacheKey(id))
	defer unlock()

	deleted, err := s.ServiceInterface.Delete(ctx, id)
	if deleted {
		s.evict(ctx, id)
	}
	return deleted, err
}

func (s *cachedBookService) evict(ctx context.Context, id uuid.UUID) {
	key := DetailCacheKey(id)
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book cache eviction failed")
	}
}
