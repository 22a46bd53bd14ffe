// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package helper

import (
	"context"
	"math"
	"time"

	"github.com/telekom/sparrow-ping/internal/logger"
)

// RetryConfig describes how often and how fast a failed call is repeated.
type RetryConfig struct {
	// Count is the number of retries after the first attempt.
	Count int `json:"count" yaml:"count" mapstructure:"count"`
	// Delay is the initial backoff, doubled on every further retry.
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`
}

// Effector will be the function called by the Retry function
type Effector func(context.Context) error

// Retry wraps the effector so that it is repeated with an exponential backoff
// until it succeeds, the retries are used up or the context is done.
func Retry(effector Effector, rc RetryConfig) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		log := logger.FromContext(ctx)
		for r := 1; ; r++ {
			err := effector(ctx)
			if err == nil || r > rc.Count {
				return err
			}

			delay := getExpBackoff(rc.Delay, r)
			log.WarnContext(ctx, "Effector call failed, retrying", "attempt", r, "delay", delay, "error", err)

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
}

// getExpBackoff calculates the exponential delay for a given iteration.
// The first iteration is 1.
func getExpBackoff(initialDelay time.Duration, iteration int) time.Duration {
	if iteration <= 1 {
		return initialDelay
	}
	return time.Duration(math.Pow(2, float64(iteration-1))) * initialDelay
}
