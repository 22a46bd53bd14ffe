// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/telekom/sparrow-ping/pkg/api"
	"github.com/telekom/sparrow-ping/pkg/checks/ping"
	"github.com/telekom/sparrow-ping/pkg/metrics"
)

// Metadata holds optional ownership and platform information for the instance.
// Exposed via the sparrow_ping_instance_info Prometheus metric for alert routing.
type Metadata struct {
	// Team holds team ownership information
	Team TeamMetadata `yaml:"team" mapstructure:"team"`
	// Platform identifies the deployment platform (e.g. k8s-prod-eu, aws-eu-west-1)
	Platform string `yaml:"platform" mapstructure:"platform"`
}

// TeamMetadata holds team name and contact for ownership
type TeamMetadata struct {
	Name  string `yaml:"name" mapstructure:"name"`
	Email string `yaml:"email" mapstructure:"email"`
}

// Labels returns the metadata as instance info labels. Empty values are omitted.
func (m Metadata) Labels() map[string]string {
	labels := map[string]string{}
	if m.Team.Name != "" {
		labels["team_name"] = m.Team.Name
	}
	if m.Team.Email != "" {
		labels["team_email"] = m.Team.Email
	}
	if m.Platform != "" {
		labels["platform"] = m.Platform
	}
	return labels
}

// Config is the startup configuration of the monitor
type Config struct {
	// Name is the DNS name of the monitoring instance
	Name string `yaml:"name" mapstructure:"name"`
	// Metadata is optional ownership and platform metadata
	Metadata Metadata `yaml:"metadata" mapstructure:"metadata"`
	// Ping is the initial configuration of the ping check
	Ping ping.Config `yaml:"ping" mapstructure:"ping"`
	// Loader is the configuration for reloading the ping check configuration
	Loader LoaderConfig `yaml:"loader" mapstructure:"loader"`
	// Api is the configuration for the api server
	Api api.Config `yaml:"api" mapstructure:"api"`
	// Telemetry is the configuration for the telemetry
	Telemetry metrics.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// LoaderConfig is the configuration for the loader
type LoaderConfig struct {
	// Interval is the reload interval. 0 loads the file once.
	Interval time.Duration    `yaml:"interval" mapstructure:"interval"`
	File     FileLoaderConfig `yaml:"file" mapstructure:"file"`
}

// FileLoaderConfig is the configuration for the file loader
type FileLoaderConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// HasLoader returns true if the ping check configuration is reloaded from a file
func (c *Config) HasLoader() bool {
	return c.Loader.File.Path != ""
}

// HasTelemetry returns true if the config has telemetry enabled
func (c *Config) HasTelemetry() bool {
	return c.Telemetry.Enabled
}
