// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/sparrow-ping/pkg/api"
	"github.com/telekom/sparrow-ping/pkg/checks"
	"github.com/telekom/sparrow-ping/pkg/metrics"
)

func validConfig() Config {
	return Config{
		Name: "sparrow-ping.telekom.de",
		Ping: testdataPing,
		Api:  api.Config{ListeningAddress: ":8080"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr []error
	}{
		{name: "valid", modify: func(*Config) {}},
		{
			name:    "invalid name",
			modify:  func(c *Config) { c.Name = "Not A DNS Name" },
			wantErr: []error{ErrInvalidName},
		},
		{
			name:    "missing api address",
			modify:  func(c *Config) { c.Api.ListeningAddress = "" },
			wantErr: []error{api.ErrInvalidAddress},
		},
		{
			name: "all problems are reported",
			modify: func(c *Config) {
				c.Name = ""
				c.Api.ListeningAddress = ""
			},
			wantErr: []error{ErrInvalidName, api.ErrInvalidAddress},
		},
		{
			name:    "invalid ping check",
			modify:  func(c *Config) { c.Ping.Count = 0 },
			wantErr: []error{checks.ErrInvalidConfig{CheckName: "ping", Field: "ping.count", Reason: "must be between 1 and 65535"}},
		},
		{
			name: "ping check left to the loader",
			modify: func(c *Config) {
				c.Ping = testdataPing
				c.Ping.Target = ""
				c.Loader = LoaderConfig{Interval: time.Minute, File: FileLoaderConfig{Path: "ping.yaml"}}
			},
		},
		{
			name: "negative loader interval",
			modify: func(c *Config) {
				c.Loader = LoaderConfig{Interval: -time.Second, File: FileLoaderConfig{Path: "ping.yaml"}}
			},
			wantErr: []error{ErrInvalidLoaderInterval},
		},
		{
			name: "invalid telemetry",
			modify: func(c *Config) {
				c.Telemetry = metrics.Config{Enabled: true, Exporter: "carrier-pigeon"}
			},
			wantErr: []error{metrics.ErrInvalidExporter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate(t.Context())
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestLoaderConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&LoaderConfig{}).Validate(t.Context()), ErrInvalidLoaderFilePath)
	assert.NoError(t, (&LoaderConfig{File: FileLoaderConfig{Path: "ping.yaml"}}).Validate(t.Context()))
}

func TestMetadata_Labels(t *testing.T) {
	m := Metadata{Team: TeamMetadata{Name: "caas", Email: "caas@telekom.de"}}
	assert.Equal(t, map[string]string{"team_name": "caas", "team_email": "caas@telekom.de"}, m.Labels())
	assert.Empty(t, Metadata{}.Labels())
}
