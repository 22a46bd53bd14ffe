// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/telekom/sparrow-ping/internal/logger"
)

var dnsName = regexp.MustCompile(`^([a-z0-9]([a-z0-9\-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// Validate validates the startup config
func (c *Config) Validate(ctx context.Context) (err error) {
	log := logger.FromContext(ctx)
	if !isDNSName(c.Name) {
		log.Error("The name of the instance must be DNS compliant", "name", c.Name)
		err = errors.Join(err, ErrInvalidName)
	}

	// A loaded file replaces the ping configuration, so it may be left empty here.
	if !c.HasLoader() || c.Ping.Target != "" {
		if vErr := c.Ping.Validate(); vErr != nil {
			log.Error("The ping check configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if c.HasLoader() {
		if vErr := c.Loader.Validate(ctx); vErr != nil {
			log.Error("The loader configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if c.HasTelemetry() {
		if vErr := c.Telemetry.Validate(ctx); vErr != nil {
			log.Error("The telemetry configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if vErr := c.Api.Validate(); vErr != nil {
		log.Error("The api configuration is invalid")
		err = errors.Join(err, vErr)
	}

	if err != nil {
		return fmt.Errorf("validation of configuration failed: %w", err)
	}
	return nil
}

// Validate validates the loader configuration
func (c *LoaderConfig) Validate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if c.Interval < 0 {
		log.Error("The loader interval should be equal or above 0", "interval", c.Interval)
		return ErrInvalidLoaderInterval
	}

	if c.File.Path == "" {
		log.Error("The loader file path cannot be empty")
		return ErrInvalidLoaderFilePath
	}
	return nil
}

// isDNSName checks if the given string is a valid DNS name
func isDNSName(s string) bool {
	return dnsName.MatchString(s)
}
