// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import "errors"

var (
	// ErrTimeout is returned by a [Conn] when a bounded wait expires without data.
	ErrTimeout = errors.New("wait timed out")
	// ErrResolve is returned when the target host cannot be resolved.
	ErrResolve = errors.New("failed to resolve host")
	// ErrSocket is returned when no ICMP socket can be acquired.
	ErrSocket = errors.New("failed to open ICMP socket")
	// ErrSend is returned when an echo request cannot be transmitted.
	ErrSend = errors.New("failed to send echo request")
	// ErrShortSend is returned when fewer bytes than requested were written.
	ErrShortSend = errors.New("short write of echo request")
	// ErrRecv is returned when waiting for or reading a reply fails.
	ErrRecv = errors.New("failed to receive echo reply")
	// ErrShortReply is returned when a received datagram cannot hold an ICMP header.
	ErrShortReply = errors.New("reply too short for ICMP header")
	// ErrCanceled is returned when the caller cancels a running session.
	ErrCanceled = errors.New("session canceled")
	// ErrInvalidSession is returned when a session fails validation.
	ErrInvalidSession = errors.New("invalid session")
)
