// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package ping implements an ICMP echo measurement engine for IPv4 and IPv6.
//
// Every call of [Engine.Run] executes one [Session]: it sends a bounded sequence of
// echo requests, strictly one in flight, and correlates the asynchronous
// replies against the outstanding requests under a per-request time budget.
// Every reply is classified (foreign type, id mismatch, sequence out of range,
// duplicate, late, expected) and every outcome is reported as a typed [Event]
// to a [Sink]. The engine never formats output itself.
//
// The address family is a parameter, not a code path: [IPv4] and [IPv6]
// describe the socket networks, the echo type codes and the header layout,
// so both families share exactly the same state machine.
//
// Payloads carry a deterministic printable pattern (see [GeneratePayload]),
// which allows corrupted echoes to be detected without any checksum.
//
// The socket and name resolution are collaborators behind the [Opener], [Conn]
// and [Resolver] interfaces; package transport provides the production
// implementations on top of golang.org/x/net/icmp.
//
// Typical usage:
//
//	eng := ping.NewEngine(resolver, opener, sink)
//	stats, err := eng.Run(ctx, ping.Session{
//		Host: "2001:db8::1", Family: ping.IPv6, Count: 10, DataLen: 56,
//		Delay: time.Second, Timeout: time.Second, ID: ping.NewID(),
//	})
package ping
