// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package checks

import (
	"fmt"
)

// ErrConfigMismatch is returned when a check receives a runtime configuration
// meant for another check.
type ErrConfigMismatch struct {
	Expected string
	Current  string
}

func (e ErrConfigMismatch) Error() string {
	return fmt.Sprintf("check %q cannot apply a configuration for %q", e.Expected, e.Current)
}

// ErrInvalidConfig names the first invalid field of a check configuration.
type ErrInvalidConfig struct {
	CheckName string
	Field     string
	Reason    string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("%s: %s %s", e.CheckName, e.Field, e.Reason)
}

// ErrMetricNotFound is returned when no metrics were recorded for a target.
type ErrMetricNotFound struct {
	Target string
}

func (e ErrMetricNotFound) Error() string {
	return fmt.Sprintf("no metrics recorded for target %q", e.Target)
}
