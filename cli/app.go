// Package cli implements the command-line interface of the projector.
package cli

import (
	"context"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"interest-projector/config"
	"interest-projector/repository"
	"interest-projector/service"
)

// App holds what the commands share. A CLI process is short lived, so the
// dependencies are built once in main and handed to every command.
type App struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Service *service.ProjectionService
	Out     io.Writer
}

// NewApp builds the projection service on top of Redis when REDIS_ADDR is
// set, or an in-memory cache otherwise. The returned function releases the
// cache connection.
func NewApp(ctx context.Context, cfg *config.Config, logger *logrus.Logger, out io.Writer) (*App, func()) {
	var cache repository.CacheRepository
	closeFn := func() {}

	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		if err := redisCache.Ping(ctx); err != nil {
			logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, using in-memory cache")
			_ = redisCache.Close()
			cache = repository.NewMemoryCache()
		} else {
			cache = redisCache
			closeFn = func() {
				if err := redisCache.Close(); err != nil {
					logger.WithError(err).Warn("failed to close redis client")
				}
			}
		}
	} else {
		cache = repository.NewMemoryCache()
	}

	svc := service.NewProjectionService(repository.NewProjectionRepositoryMemory(), cache, logger)
	return &App{Config: cfg, Logger: logger, Service: svc, Out: out}, closeFn
}

// Register adds the application commands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&projectCmd{app: app}, "projections")
	c.Register(&frequenciesCmd{app: app}, "projections")
	c.Register(&serveCmd{app: app}, "server")
}
