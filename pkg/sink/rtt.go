// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import "time"

// RTTStats summarizes the round trip times of a session.
type RTTStats struct {
	Min   time.Duration
	Avg   time.Duration
	Max   time.Duration
	Count int

	total time.Duration
}

// Add records one round trip time.
func (r *RTTStats) Add(rtt time.Duration) {
	if r.Count == 0 || rtt < r.Min {
		r.Min = rtt
	}
	if rtt > r.Max {
		r.Max = rtt
	}
	r.Count++
	r.total += rtt
	r.Avg = r.total / time.Duration(r.Count)
}
