package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-lite/internal/config"
	infraCache "library-lite/internal/infrastructure/cache"
	"library-lite/internal/shared"
	"library-lite/pkg/cache"
	"library-lite/pkg/logger"

	authorHandler "library-lite/internal/domains/author/handler"
	authorModel "library-lite/internal/domains/author/model"
	authorRepo "library-lite/internal/domains/author/repository"
	authorService "library-lite/internal/domains/author/service"

	bookHandler "library-lite/internal/domains/book/handler"
	bookModel "library-lite/internal/domains/book/model"
	bookRepo "library-lite/internal/domains/book/repository"
	bookService "library-lite/internal/domains/book/service"
)

// Container holds every application dependency.
// The in-memory stores live as long as the container.
type Container struct {
	Config *config.Config
	Cache  cache.Cache // nil when caching is disabled or Redis is unreachable

	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.Handler

	redis *infraCache.RedisCache
}

// NewContainer loads the configuration from the environment and builds the container.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.App.Environment, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return New(cfg)
}

// New builds the container from an already validated configuration.
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if cfg.Redis.Enabled {
		c.initCache()
	}

	var authors []authorModel.Author
	var books []bookModel.Book
	if cfg.Seed {
		var err error
		authors, books, err = SeedData()
		if err != nil {
			return nil, fmt.Errorf("build seed data: %w", err)
		}
	}

	c.AuthorRepo = authorRepo.NewMemoryRepository(authors)
	c.BookRepo = bookRepo.NewMemoryRepository(books)

	paging := shared.Paging{
		DefaultSize: cfg.Paging.DefaultPageSize,
		MaxSize:     cfg.Paging.MaxPageSize,
	}
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, paging)

	if c.Cache != nil {
		c.AuthorService = authorService.NewCachedAuthorService(c.AuthorService, c.Cache, cfg.Cache.TTL)
		c.BookService = bookService.NewCachedBookService(c.BookService, c.Cache, cfg.Cache.TTL)
	}

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	log.Info().
		Bool("seeded", cfg.Seed).
		Bool("cache", c.Cache != nil).
		Msg("container initialized")

	return c, nil
}

// initCache connects to Redis. A failed connection is not fatal: the
// service runs without the detail cache.
func (c *Container) initCache() {
	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without cache")
		_ = rc.Close()
		return
	}

	c.redis = rc
	c.Cache = rc
}

// Cleanup releases external connections.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("closing redis")
		}
	}
}
