// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/pkg/api"
	"github.com/telekom/sparrow-ping/pkg/checks"
	"github.com/telekom/sparrow-ping/pkg/checks/ping"
	"github.com/telekom/sparrow-ping/pkg/config"
	"github.com/telekom/sparrow-ping/pkg/metrics"
)

const shutdownTimeout = time.Second * 90

// Monitor runs the ping check periodically and exposes its results
type Monitor struct {
	// config is the startup configuration of the monitor
	config *config.Config
	// version is reported in the instance info metric
	version string
	// results stores the latest check results
	results *results
	// api is the monitor's API
	api api.API
	// loader is used to reload the ping check configuration, nil if disabled
	loader config.Loader
	// metrics is used to collect metrics
	metrics metrics.Provider
	// check is the managed ping check
	check checks.Check
	// checkRunning is set once the check was started
	checkRunning bool
	// cPing is used to signal that the ping check configuration has changed
	cPing chan ping.Config
	// cResult receives the results of the check
	cResult chan checks.ResultDTO
	// cErr is used to handle non-recoverable errors of the monitor components
	cErr chan error
	// cDone is used to signal that the monitor was shut down
	cDone chan struct{}
	// shutOnce is used to ensure that the shutdown function is only called once
	shutOnce sync.Once
}

// New creates a new monitor from the startup configuration
func New(cfg *config.Config, version string) *Monitor {
	m := &Monitor{
		config:   cfg,
		version:  version,
		results:  newResults(),
		api:      api.New(cfg.Api),
		metrics:  metrics.New(cfg.Telemetry, version),
		check:    ping.NewCheck(),
		cPing:    make(chan ping.Config, 1),
		cResult:  make(chan checks.ResultDTO, 1),
		cErr:     make(chan error, 3),
		cDone:    make(chan struct{}, 1),
		shutOnce: sync.Once{},
	}
	m.loader = config.NewLoader(cfg, m.cPing)
	return m
}

// Run starts the monitor and blocks until it was shut down
func (m *Monitor) Run(ctx context.Context) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	log := logger.FromContext(ctx)
	defer cancel()

	err := m.metrics.InitTracing(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err = m.registerMetrics(); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	if m.config.Ping.Target != "" {
		m.cPing <- m.config.Ping
	}

	if m.loader != nil {
		go func() {
			m.cErr <- m.loader.Run(ctx)
		}()
	}

	go func() {
		m.cErr <- m.startupAPI(ctx)
	}()

	for {
		select {
		case cfg := <-m.cPing:
			m.reconcile(ctx, cfg)
		case res := <-m.cResult:
			m.results.Save(res)
		case <-ctx.Done():
			m.shutdown(ctx)
		case err := <-m.cErr:
			if err != nil {
				log.Error("Non-recoverable error in monitor component", "error", err)
				m.shutdown(ctx)
			}
		case <-m.cDone:
			log.InfoContext(ctx, "Monitor was shut down")
			return ErrFinalShutdown
		}
	}
}

// reconcile applies a new ping check configuration and starts the check
// with its first valid configuration. An invalid configuration keeps the
// previous one running.
func (m *Monitor) reconcile(ctx context.Context, cfg ping.Config) {
	log := logger.FromContext(ctx).With("target", cfg.Target)
	if err := m.check.UpdateConfig(&cfg); err != nil {
		log.ErrorContext(ctx, "Failed to update ping check configuration", "error", err)
		return
	}
	log.DebugContext(ctx, "Updated ping check configuration")

	if m.checkRunning {
		return
	}
	m.checkRunning = true
	go func() {
		if err := m.check.Run(ctx, m.cResult); err != nil {
			m.cErr <- &ErrRunningCheck{Check: m.check, Err: err}
		}
	}()
}

// registerMetrics registers the check collectors and the instance info on the registry
func (m *Monitor) registerMetrics() error {
	registry := m.metrics.GetRegistry()
	for _, c := range m.check.GetMetricCollectors() {
		if err := registry.Register(c); err != nil {
			return err
		}
	}

	labels := m.config.Metadata.Labels()
	labels["version"] = m.version
	return metrics.RegisterInstanceInfo(registry, m.config.Name, labels)
}

// shutdown shuts down the monitor and all managed components gracefully.
func (m *Monitor) shutdown(ctx context.Context) {
	errC := ctx.Err()
	log := logger.FromContext(ctx)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	m.shutOnce.Do(func() {
		log.InfoContext(ctx, "Shutting down monitor")
		var sErrs ErrShutdown
		sErrs.errAPI = m.api.Shutdown(ctx)
		sErrs.errMetrics = m.metrics.Shutdown(ctx)
		if m.loader != nil {
			m.loader.Shutdown(ctx)
		}
		if m.checkRunning {
			m.check.Shutdown()
		}

		if sErrs.HasError() {
			log.ErrorContext(ctx, "Failed to shutdown gracefully", "contextError", errC, "errors", sErrs)
		}

		// Signal that shutdown is complete
		m.cDone <- struct{}{}
	})
}
