// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import "time"

// Stats is the aggregate outcome of a session.
type Stats struct {
	// Sent is the number of echo requests transmitted.
	Sent int `json:"sent" yaml:"sent"`
	// Verified is the number of matched replies whose payload passed verification.
	Verified int `json:"verified" yaml:"verified"`
	// Start is when the session started sending.
	Start time.Time `json:"start" yaml:"start"`
}

// Lost returns the number of requests without a verified reply.
func (s Stats) Lost() int {
	return s.Sent - s.Verified
}

// Loss returns the packet loss in percent, rounded half up.
// ok is false when no request was sent and the loss is undefined.
func (s Stats) Loss() (percent int, ok bool) {
	if s.Sent == 0 {
		return 0, false
	}
	return (100*s.Lost() + s.Sent/2) / s.Sent, true
}
