// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/telekom/sparrow-ping/internal/logger"
)

var (
	// ErrMissingURL is returned when an otlp exporter has no collector url.
	ErrMissingURL = errors.New("collector url missing")
	// ErrInvalidSampleRatio is returned for a sample ratio outside [0, 1].
	ErrInvalidSampleRatio = errors.New("sample ratio must be between 0 and 1")
)

// Config configures the tracing of ping sessions.
type Config struct {
	Enabled  bool     `yaml:"enabled" mapstructure:"enabled"`
	Exporter Exporter `yaml:"exporter" mapstructure:"exporter"`
	// Url of the otlp collector, required for the http and grpc exporters.
	Url   string `yaml:"url" mapstructure:"url"`
	Token string `yaml:"token" mapstructure:"token"`
	// SampleRatio is the share of sessions traced. Zero traces every session.
	SampleRatio float64   `yaml:"sampleRatio" mapstructure:"sampleRatio"`
	TLS         TLSConfig `yaml:"tls" mapstructure:"tls"`
}

type TLSConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// CertPath points to the CA bundle of a collector with a private certificate.
	CertPath string `yaml:"certPath" mapstructure:"certPath"`
}

// Validate reports every problem of an enabled configuration.
func (c *Config) Validate(ctx context.Context) error {
	if !c.Enabled {
		return nil
	}

	var errs []error
	if err := c.Exporter.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Exporter.IsExporting() && c.Url == "" {
		errs = append(errs, fmt.Errorf("%w for exporter %q", ErrMissingURL, c.Exporter))
	}
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidSampleRatio, c.SampleRatio))
	}

	err := errors.Join(errs...)
	if err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Invalid telemetry configuration", "exporter", c.Exporter, "error", err)
	}
	return err
}

