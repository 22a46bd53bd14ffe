// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"

	"github.com/telekom/sparrow-ping/internal/ping"
)

// Multi returns a sink that forwards every event to all given sinks in order.
// Nil sinks are skipped.
func Multi(sinks ...ping.Sink) ping.Sink {
	s := make(multi, 0, len(sinks))
	for _, sk := range sinks {
		if sk != nil {
			s = append(s, sk)
		}
	}
	return s
}

type multi []ping.Sink

func (m multi) Handle(ctx context.Context, ev ping.Event) {
	for _, s := range m {
		s.Handle(ctx, ev)
	}
}
