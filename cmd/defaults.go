// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/telekom/sparrow-ping/internal/ping"
	"github.com/telekom/sparrow-ping/internal/transport"
	"github.com/telekom/sparrow-ping/pkg/checks"
	pingcheck "github.com/telekom/sparrow-ping/pkg/checks/ping"
	"github.com/telekom/sparrow-ping/pkg/config"
	"github.com/telekom/sparrow-ping/pkg/metrics"
)

const defaultCheckInterval = time.Minute

// defaultMonitorConfig returns the configuration values not given by flags
func defaultMonitorConfig() *config.Config {
	return &config.Config{
		Ping: pingcheck.Config{
			Interval: defaultCheckInterval,
			Count:    ping.DefaultCount,
			Size:     ping.DefaultDataLen,
			Delay:    ping.DefaultDelay,
			Timeout:  ping.DefaultTimeout,
			Mode:     transport.ModeAuto,
			Retry:    checks.DefaultRetry,
		},
		Telemetry: metrics.Config{Exporter: metrics.NOOP},
	}
}
