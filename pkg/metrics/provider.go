// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/telekom/sparrow-ping/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	serviceName = "sparrow-ping"

	exportTimeout = 5 * time.Second
	spanQueueSize = 1000
	spanBatchSize = 100
)

var _ Provider = (*provider)(nil)

// Provider owns the prometheus registry and the tracer provider of the monitor.
type Provider interface {
	// GetRegistry returns the registry all collectors are registered with.
	GetRegistry() *prometheus.Registry
	// InitTracing installs the global tracer provider. Disabled tracing leaves
	// the no-op provider in place.
	InitTracing(ctx context.Context) error
	// Shutdown flushes pending spans.
	Shutdown(ctx context.Context) error
}

type provider struct {
	config   Config
	version  string
	registry *prometheus.Registry
	tp       *sdktrace.TracerProvider
}

// New creates a provider whose registry already holds the runtime collectors.
//
//nolint:gocritic
func New(config Config, version string) Provider {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &provider{
		config:   config,
		version:  version,
		registry: registry,
	}
}

func (p *provider) GetRegistry() *prometheus.Registry {
	return p.registry
}

func (p *provider) InitTracing(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if !p.config.Enabled {
		log.DebugContext(ctx, "Tracing disabled")
		return nil
	}

	res, err := p.resource(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to describe tracing resource", "error", err)
		return fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := p.config.Exporter.Create(ctx, &p.config)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create span exporter", "exporter", p.config.Exporter, "error", err)
		return fmt.Errorf("failed to create exporter: %w", err)
	}

	p.tp = sdktrace.NewTracerProvider(
		sdktrace.WithSampler(p.sampler()),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter,
			sdktrace.WithBatchTimeout(exportTimeout),
			sdktrace.WithMaxQueueSize(spanQueueSize),
			sdktrace.WithMaxExportBatchSize(spanBatchSize),
		)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(p.tp)
	log.DebugContext(ctx, "Tracing initialized", "exporter", p.config.Exporter, "sampleRatio", p.config.SampleRatio)
	return nil
}

// resource describes this instance in exported spans.
func (p *provider) resource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithHost(),
		resource.WithContainer(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(p.version),
		),
	)
}

// sampler samples every session unless a ratio below one is configured.
func (p *provider) sampler() sdktrace.Sampler {
	if p.config.SampleRatio == 0 || p.config.SampleRatio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(p.config.SampleRatio))
}

func (p *provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to flush spans", "error", err)
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}
	logger.FromContext(ctx).DebugContext(ctx, "Tracing shut down")
	return nil
}
