// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/sparrow-ping/internal/ping"
	"github.com/telekom/sparrow-ping/pkg/checks"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(c *Config)
		wantField string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "empty payload", modify: func(c *Config) { c.Size = 0 }},
		{name: "ipv6", modify: func(c *Config) { c.IPv6 = true }},
		{name: "missing target", modify: func(c *Config) { c.Target = "" }, wantField: "ping.target"},
		{name: "zero interval", modify: func(c *Config) { c.Interval = 0 }, wantField: "ping.interval"},
		{name: "zero count", modify: func(c *Config) { c.Count = 0 }, wantField: "ping.count"},
		{name: "count too large", modify: func(c *Config) { c.Count = ping.MaxCount + 1 }, wantField: "ping.count"},
		{name: "negative size", modify: func(c *Config) { c.Size = -1 }, wantField: "ping.size"},
		{name: "size too large", modify: func(c *Config) { c.Size = ping.MaxDataLen + 1 }, wantField: "ping.size"},
		{name: "negative delay", modify: func(c *Config) { c.Delay = -time.Second }, wantField: "ping.delay"},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantField: "ping.timeout"},
		{name: "unknown mode", modify: func(c *Config) { c.Mode = "tcp" }, wantField: "ping.mode"},
		{name: "negative retry count", modify: func(c *Config) { c.Retry.Count = -1 }, wantField: "ping.retry.count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var invalid checks.ErrInvalidConfig
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, CheckName, invalid.CheckName)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestConfig_Session(t *testing.T) {
	cfg := testConfig()
	cfg.IPv6 = true

	sess := cfg.Session()
	assert.Equal(t, "example.com", sess.Host)
	assert.Equal(t, ping.IPv6, sess.Family)
	assert.Equal(t, cfg.Count, sess.Count)
	assert.Equal(t, cfg.Size, sess.DataLen)
	assert.Equal(t, cfg.Delay, sess.Delay)
	assert.Equal(t, cfg.Timeout, sess.Timeout)
	require.NoError(t, sess.Validate())
	assert.Equal(t, CheckName, cfg.For())
}
