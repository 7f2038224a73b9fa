package cli

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	httpLayer "interest-projector/http"
)

type serveCmd struct {
	app  *App
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the projection HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-addr <host:port>]

  Serves the projection API until interrupted.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "listen address (defaults to HTTP_ADDR)")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := c.app.Logger
	addr := c.addr
	if addr == "" {
		addr = c.app.Config.HTTPAddr
	}

	rateLimiter := httpLayer.NewRateLimiter(c.app.Config.RateLimit, c.app.Config.RateLimitWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewProjectionHandler(c.app.Service, logger)
	server := httpLayer.NewServer(addr, httpLayer.NewRouter(handler, rateLimiter, logger))

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("error starting server")
		return subcommands.ExitFailure
	case <-quit:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("error during server shutdown")
		return subcommands.ExitFailure
	}

	logger.Info("server exited")
	return subcommands.ExitSuccess
}
