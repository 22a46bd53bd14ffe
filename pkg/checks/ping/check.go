// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/internal/ping"
	"github.com/telekom/sparrow-ping/internal/transport"
	"github.com/telekom/sparrow-ping/pkg/checks"
	"github.com/telekom/sparrow-ping/pkg/sink"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ checks.Check = (*Ping)(nil)

const CheckName = "ping"

// runner executes one ping session.
type runner interface {
	Run(ctx context.Context, sess ping.Session) (ping.Stats, error)
}

// newRunner builds the engine for a configuration.
type newRunner func(cfg Config, s ping.Sink) (runner, error)

func NewCheck() checks.Check {
	c := &Ping{
		CheckBase: checks.CheckBase{
			Mu:       sync.Mutex{},
			DoneChan: make(chan struct{}, 1),
		},
		config:    Config{},
		metrics:   sink.NewMetrics(),
		newRunner: newEngine,
	}
	c.tracer = otel.Tracer(c.Name())
	return c
}

// Ping periodically runs a ping session to one target.
type Ping struct {
	checks.CheckBase
	config    Config
	metrics   *sink.Metrics
	newRunner newRunner
	tracer    trace.Tracer
}

// newEngine wires the production resolver and sockets into a ping engine.
func newEngine(cfg Config, s ping.Sink) (runner, error) {
	opener, err := transport.NewOpener(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return ping.NewEngine(transport.NewResolver(cfg.Retry), opener, s), nil
}

// Run runs the check in a loop sending results to the provided channel.
// Sessions never overlap: the next one starts an interval after the previous one finished.
func (p *Ping) Run(ctx context.Context, cResult chan checks.ResultDTO) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	defer cancel()
	log := logger.FromContext(ctx)

	log.InfoContext(ctx, "Starting ping check", "interval", p.GetConfig().(*Config).Interval.String())
	for {
		select {
		case <-ctx.Done():
			log.ErrorContext(ctx, "Context canceled", "error", ctx.Err())
			return ctx.Err()
		case <-p.DoneChan:
			return nil
		case <-time.After(p.GetConfig().(*Config).Interval):
			res := p.check(ctx)
			cResult <- checks.ResultDTO{
				Name: p.Name(),
				Result: &checks.Result{
					Data:      res,
					Timestamp: time.Now(),
				},
			}
			log.DebugContext(ctx, "Successfully finished ping check run")
		}
	}
}

// GetConfig returns the current configuration of the check
func (p *Ping) GetConfig() checks.Runtime {
	p.Mu.Lock()
	defer p.Mu.Unlock()
	cfg := p.config
	return &cfg
}

// check runs one session and returns its report.
func (p *Ping) check(ctx context.Context) sink.Report {
	cfg := *p.GetConfig().(*Config)
	sess := cfg.Session()
	log := logger.FromContext(ctx).With("target", cfg.Target)

	ctx, span := p.tracer.Start(ctx, "ping.check", trace.WithAttributes(
		attribute.String("ping.target", cfg.Target),
	))
	defer span.End()

	summary := sink.NewSummary(cfg.Target)
	s := sink.Multi(summary, p.metrics.For(cfg.Target), sink.Log, sink.Tracing)
	r, err := p.newRunner(cfg, s)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create ping engine", "error", err)
		span.RecordError(err)
		report := summary.Report()
		report.Error = err.Error()
		return report
	}

	if _, err := r.Run(ctx, sess); err != nil {
		log.WarnContext(ctx, "Ping session aborted", "error", err)
	}
	return summary.Report()
}

// Shutdown is called once when the monitor shuts down
func (p *Ping) Shutdown() {
	p.DoneChan <- struct{}{}
	close(p.DoneChan)
}

// UpdateConfig validates and applies the configuration.
// The metrics of a replaced target are removed.
func (p *Ping) UpdateConfig(cfg checks.Runtime) error {
	c, ok := cfg.(*Config)
	if !ok {
		return checks.ErrConfigMismatch{
			Expected: CheckName,
			Current:  cfg.For(),
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}

	p.Mu.Lock()
	defer p.Mu.Unlock()
	if old := p.config.Target; old != "" && old != c.Target {
		if err := p.metrics.Remove(old); err != nil && !errors.As(err, &checks.ErrMetricNotFound{}) {
			return err
		}
	}
	p.config = *c
	return nil
}

// GetMetricCollectors allows the check to provide prometheus metric collectors
func (p *Ping) GetMetricCollectors() []prometheus.Collector {
	return p.metrics.GetCollectors()
}

// Name returns the name of the check
func (p *Ping) Name() string {
	return CheckName
}

// RemoveLabelledMetrics removes the metrics which have the passed
// target as a label
func (p *Ping) RemoveLabelledMetrics(target string) error {
	return p.metrics.Remove(target)
}
