// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"

	"github.com/telekom/sparrow-ping/pkg/checks/ping"
)

//go:generate go tool moq -out loader_moq.go . Loader
type Loader interface {
	// Run starts the loader routine.
	// The loader should be able
	// to handle all errors by itself and retry if necessary.
	// If the context is canceled,
	// the Run method returns an error.
	Run(context.Context) error
	// Shutdown stops the loader routine.
	Shutdown(context.Context)
}

// NewLoader returns the loader of the ping check configuration
// or nil if no file is configured.
func NewLoader(cfg *Config, cPing chan<- ping.Config) Loader {
	if !cfg.HasLoader() {
		return nil
	}
	return NewFileLoader(cfg, cPing)
}
