// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"fmt"
	"time"

	"github.com/telekom/sparrow-ping/internal/helper"
	"github.com/telekom/sparrow-ping/internal/ping"
	"github.com/telekom/sparrow-ping/internal/transport"
	"github.com/telekom/sparrow-ping/pkg/checks"
)

// Config is the configuration of the ping check
type Config struct {
	// Target is the host name or address to ping.
	Target string `json:"target" yaml:"target" mapstructure:"target"`
	// IPv6 selects ICMPv6 instead of ICMP.
	IPv6 bool `json:"ipv6" yaml:"ipv6" mapstructure:"ipv6"`
	// Interval is the pause between two sessions.
	Interval time.Duration `json:"interval" yaml:"interval" mapstructure:"interval"`
	// Count is the number of echo requests per session.
	Count int `json:"count" yaml:"count" mapstructure:"count"`
	// Size is the payload length of every echo request.
	Size int `json:"size" yaml:"size" mapstructure:"size"`
	// Delay is the minimum interval between two echo requests.
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`
	// Timeout is the time to wait for each reply.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	// Mode selects the socket kind.
	Mode transport.Mode `json:"mode" yaml:"mode" mapstructure:"mode"`
	// Retry is the retry policy of the name resolution.
	Retry helper.RetryConfig `json:"retry" yaml:"retry" mapstructure:"retry"`
}

func (c *Config) For() string {
	return CheckName
}

func (c *Config) Validate() error {
	if c.Target == "" {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.target", Reason: "must not be empty"}
	}

	if c.Interval <= 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.interval", Reason: "must be greater than 0"}
	}

	if c.Count < 1 || c.Count > ping.MaxCount {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.count", Reason: fmt.Sprintf("must be between 1 and %d", ping.MaxCount)}
	}

	if c.Size < 0 || c.Size > ping.MaxDataLen {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.size", Reason: fmt.Sprintf("must be between 0 and %d", ping.MaxDataLen)}
	}

	if c.Delay < 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.delay", Reason: "must not be negative"}
	}

	if c.Timeout <= 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.timeout", Reason: "must be greater than 0"}
	}

	if err := c.Mode.Validate(); err != nil {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.mode", Reason: err.Error()}
	}

	if c.Retry.Count < 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "ping.retry.count", Reason: "must not be negative"}
	}
	return nil
}

// Family returns the address family to ping with.
func (c *Config) Family() ping.Family {
	if c.IPv6 {
		return ping.IPv6
	}
	return ping.IPv4
}

// Session returns the session of one check run with a fresh echo id.
func (c *Config) Session() ping.Session {
	return ping.Session{
		Host:    c.Target,
		Family:  c.Family(),
		Count:   c.Count,
		DataLen: c.Size,
		Delay:   c.Delay,
		Timeout: c.Timeout,
		ID:      ping.NewID(),
	}
}
