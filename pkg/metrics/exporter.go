// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc/credentials"
)

// Exporter is the protocol used to export the traces
type Exporter string

const (
	// HTTP is the protocol to export traces via OTLP over HTTP
	HTTP Exporter = "http"
	// GRPC is the protocol to export traces via OTLP over gRPC
	GRPC Exporter = "grpc"
	// STDOUT writes the traces to stdout
	STDOUT Exporter = "stdout"
	// NOOP drops all traces
	NOOP Exporter = "noop"
)

// ErrInvalidExporter is returned for an unknown exporter
var ErrInvalidExporter = errors.New("invalid exporter")

// String returns the string representation of the exporter
func (e Exporter) String() string {
	return string(e)
}

// Validate checks that the exporter is known
func (e Exporter) Validate() error {
	switch e {
	case HTTP, GRPC, STDOUT, NOOP:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExporter, string(e))
	}
}

// IsExporting reports whether the exporter sends traces to a collector
func (e Exporter) IsExporting() bool {
	return e == HTTP || e == GRPC
}

// Create returns the span exporter for the configuration
func (e Exporter) Create(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	switch e {
	case HTTP:
		return newHTTPExporter(ctx, config)
	case GRPC:
		return newGRPCExporter(ctx, config)
	case STDOUT:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case NOOP:
		return tracetest.NewNoopExporter(), nil
	default:
		return nil, e.Validate()
	}
}

func newHTTPExporter(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(config.Url),
		otlptracehttp.WithHeaders(authHeaders(config.Token)),
	}

	if !config.TLS.Enabled {
		opts = append(opts, otlptracehttp.WithInsecure())
		return otlptracehttp.New(ctx, opts...)
	}

	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if config.TLS.CertPath != "" {
		pool, err := certPool(config.TLS.CertPath)
		if err != nil {
			return nil, err
		}
		tlsCfg.RootCAs = pool
	}
	opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsCfg))
	return otlptracehttp.New(ctx, opts...)
}

func newGRPCExporter(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(config.Url),
		otlptracegrpc.WithHeaders(authHeaders(config.Token)),
	}

	if !config.TLS.Enabled {
		opts = append(opts, otlptracegrpc.WithInsecure())
		return otlptracegrpc.New(ctx, opts...)
	}

	creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	if config.TLS.CertPath != "" {
		var err error
		creds, err = credentials.NewClientTLSFromFile(config.TLS.CertPath, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load tls certificate: %w", err)
		}
	}
	opts = append(opts, otlptracegrpc.WithTLSCredentials(creds))
	return otlptracegrpc.New(ctx, opts...)
}

func authHeaders(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func certPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path) // #nosec G304 // path is operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read tls certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", path)
	}
	return pool, nil
}
