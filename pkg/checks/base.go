// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package checks

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/sparrow-ping/internal/helper"
)

// DefaultRetry retries a failed target lookup three times, one second apart.
var DefaultRetry = helper.RetryConfig{
	Count: 3,
	Delay: time.Second,
}

// Check is a measurement repeated by the monitor until it shuts down.
//
//go:generate go tool moq -out base_moq.go . Check
type Check interface {
	// Run measures until ctx is done or Shutdown is called and publishes
	// every result on cResult. Measurement failures are part of the
	// result; a returned error stops the monitor.
	Run(ctx context.Context, cResult chan ResultDTO) error
	// Shutdown stops a running check.
	Shutdown()
	// UpdateConfig validates and applies a new runtime configuration.
	// It must succeed once before Run is called.
	UpdateConfig(config Runtime) error
	// GetConfig returns the applied configuration.
	GetConfig() Runtime
	// Name identifies the check in results and API paths.
	Name() string
	// GetMetricCollectors returns the collectors to register.
	GetMetricCollectors() []prometheus.Collector
	// RemoveLabelledMetrics drops every series labelled with target.
	RemoveLabelledMetrics(target string) error
}

// CheckBase holds the state shared by check implementations.
type CheckBase struct {
	// Mu guards the configuration of the embedding check.
	Mu sync.Mutex
	// DoneChan is closed or written to on Shutdown.
	DoneChan chan struct{}
}

// Runtime is the configuration of one check.
type Runtime interface {
	// For returns the name of the check it configures.
	For() string
	Validate() error
}

// Result is the outcome of one measurement.
type Result struct {
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ResultDTO carries a result together with the name of its check.
type ResultDTO struct {
	Name   string
	Result *Result
}
