// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"context"
	"net/netip"
	"time"
)

// Conn is an ICMP capable socket of one address family.
//
//go:generate go tool moq -out conn_moq.go . Conn Opener Resolver
type Conn interface {
	// Send transmits b to dst and returns the number of bytes written.
	Send(ctx context.Context, b []byte, dst netip.Addr) (int, error)
	// Recv waits at most timeout for one incoming message and reads it into b.
	// It returns [ErrTimeout] when no message arrived in time.
	Recv(ctx context.Context, b []byte, timeout time.Duration) (int, netip.Addr, error)
	// Close releases the socket.
	Close() error
}

// Opener acquires a [Conn] for an address family.
type Opener interface {
	Open(ctx context.Context, f Family) (Conn, error)
}

// Resolver maps a host name or address literal to an address of a family.
type Resolver interface {
	Resolve(ctx context.Context, host string, f Family) (netip.Addr, error)
}

// EchoIdentifier is implemented by a [Conn] whose kernel rewrites the echo id
// of outgoing requests, as unprivileged datagram ICMP sockets do.
// The engine then expects the rewritten id in replies instead of the session id.
type EchoIdentifier interface {
	EchoID() (id uint16, ok bool)
}
