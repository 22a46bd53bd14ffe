// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/telekom/sparrow-ping/internal/logger"
)

//go:generate go tool moq -out api_moq.go . API
type API interface {
	// Run starts the api server and blocks until it is stopped.
	Run(ctx context.Context) error
	// Shutdown stops the api server gracefully.
	Shutdown(ctx context.Context) error
	// RegisterRoutes adds routes to the router. It must be called once before Run.
	RegisterRoutes(ctx context.Context, routes ...Route) error
}

type api struct {
	server *http.Server
	router chi.Router
}

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// Config is the configuration of the api server
type Config struct {
	// ListeningAddress is the address the server listens on, e.g. ":8080"
	ListeningAddress string `yaml:"address" mapstructure:"address"`
}

// Validate checks that the listening address is set
func (c *Config) Validate() error {
	if c.ListeningAddress == "" {
		return ErrInvalidAddress
	}
	return nil
}

// Route is a http handler bound to a method and a path
type Route struct {
	Path    string
	Method  string
	Handler http.HandlerFunc
}

var supportedMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// New creates a new api server
func New(cfg Config) API {
	r := chi.NewRouter()
	return &api{
		server: &http.Server{Addr: cfg.ListeningAddress, Handler: r, ReadHeaderTimeout: readHeaderTimeout},
		router: r,
	}
}

// Run serves the registered routes until the server is shut down or the context is done
func (a *api) Run(ctx context.Context) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	defer cancel()
	log := logger.FromContext(ctx)

	cErr := make(chan error, 1)
	log.InfoContext(ctx, "Serving Api", "addr", a.server.Addr)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Failed to serve api", "error", err)
			cErr <- err
			return
		}
		cErr <- nil
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("failed serving api: %w", ctx.Err())
	case err := <-cErr:
		if err != nil {
			return fmt.Errorf("failed serving api: %w", err)
		}
		return nil
	}
}

// Shutdown gracefully shuts down the api server.
// A context without deadline is bounded by the default shutdown timeout.
func (a *api) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
	}

	if err := a.server.Shutdown(ctx); err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to shutdown api server", "error", err)
		return fmt.Errorf("%w: %w", ErrServerStop, err)
	}
	return nil
}

// RegisterRoutes mounts the default middlewares, the health endpoint
// and the given routes on the router
func (a *api) RegisterRoutes(ctx context.Context, routes ...Route) error {
	a.router.Use(logger.Middleware(ctx))
	a.router.Use(middleware.Recoverer)

	for _, route := range routes {
		if !slices.Contains(supportedMethods, route.Method) {
			return ErrUnsupportedMethod{Method: route.Method, Path: route.Path}
		}
		a.router.Method(route.Method, route.Path, route.Handler)
	}

	a.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			logger.FromContext(ctx).ErrorContext(ctx, "Failed to write health response", "error", err)
		}
	})
	return nil
}
