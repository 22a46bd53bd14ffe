// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package transport provides the ICMP sockets and the name resolution used by
// the ping engine, built on golang.org/x/net/icmp and the Go resolver.
package transport
