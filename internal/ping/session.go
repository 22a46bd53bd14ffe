// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

const (
	// DefaultCount is the default number of echo requests.
	DefaultCount = 10
	// DefaultDataLen is the default payload length in bytes.
	DefaultDataLen = 56
	// DefaultDelay is the default minimum interval between two requests.
	DefaultDelay = time.Second
	// DefaultTimeout is the default time to wait for a reply.
	DefaultTimeout = time.Second

	// MaxCount is the largest request count, bounded by the 16 bit sequence number.
	MaxCount = math.MaxUint16
	// MaxDataLen is the largest payload that fits into an IPv4 datagram.
	MaxDataLen = math.MaxUint16 - 20 - echoHeaderLen
)

// Session is the immutable configuration of one ping run.
type Session struct {
	// Host is the target host name or address literal.
	Host string
	// Family is the address family to ping with.
	Family Family
	// Count is the number of echo requests to send.
	Count int
	// DataLen is the payload length of every request.
	DataLen int
	// Delay is the minimum interval between two requests.
	Delay time.Duration
	// Timeout is the time to wait for the reply of a request.
	Timeout time.Duration
	// ID distinguishes the session's packets from other sessions on the host.
	ID uint16
}

// NewSession returns a session to host with the default parameters and a fresh id.
func NewSession(host string, family Family) Session {
	return Session{
		Host:    host,
		Family:  family,
		Count:   DefaultCount,
		DataLen: DefaultDataLen,
		Delay:   DefaultDelay,
		Timeout: DefaultTimeout,
		ID:      NewID(),
	}
}

// NewID returns a pseudo-random 16 bit session id.
func NewID() uint16 {
	return uint16(rand.N(math.MaxUint16 + 1)) // #nosec G404 // the id only separates sessions, it is no secret
}

// Validate checks that the session can be run.
func (s Session) Validate() (err error) {
	if s.Host == "" {
		err = errors.Join(err, errors.New("host cannot be empty"))
	}
	if !s.Family.Valid() {
		err = errors.Join(err, fmt.Errorf("unknown address family %q", s.Family.Name))
	}
	if s.Count < 1 || s.Count > MaxCount {
		err = errors.Join(err, fmt.Errorf("count %d out of range [1, %d]", s.Count, MaxCount))
	}
	if s.DataLen < 0 || s.DataLen > MaxDataLen {
		err = errors.Join(err, fmt.Errorf("data length %d out of range [0, %d]", s.DataLen, MaxDataLen))
	}
	if s.Delay < 0 {
		err = errors.Join(err, fmt.Errorf("delay %v must not be negative", s.Delay))
	}
	if s.Timeout < 0 {
		err = errors.Join(err, fmt.Errorf("timeout %v must not be negative", s.Timeout))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return nil
}
