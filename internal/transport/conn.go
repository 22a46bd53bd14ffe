// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"time"

	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/internal/ping"
)

// packetConn is the part of [icmp.PacketConn] the conn relies on.
type packetConn interface {
	ReadFrom(b []byte) (int, net.Addr, error)
	WriteTo(b []byte, dst net.Addr) (int, error)
	SetReadDeadline(t time.Time) error
	LocalAddr() net.Addr
	Close() error
}

var (
	_ ping.Conn           = (*conn)(nil)
	_ ping.EchoIdentifier = (*conn)(nil)
)

// conn is an ICMP socket of one address family.
type conn struct {
	pc     packetConn
	family ping.Family
	// datagram is set for unprivileged sockets, which address peers
	// with UDP addresses and rewrite the echo id to the local port.
	datagram bool
}

// Send writes the message b to dst.
func (c *conn) Send(ctx context.Context, b []byte, dst netip.Addr) (int, error) {
	n, err := c.pc.WriteTo(b, c.peer(dst))
	if err != nil {
		logger.FromContext(ctx).DebugContext(ctx, "Failed to write ICMP message", "family", c.family.Name, "dst", dst, "error", err)
		return n, fmt.Errorf("failed to write to ICMP socket: %w", err)
	}
	return n, nil
}

// Recv reads the next ICMP message into b.
// It returns [ping.ErrTimeout] if nothing arrived within timeout
// and the context error if ctx is done while waiting.
func (c *conn) Recv(ctx context.Context, b []byte, timeout time.Duration) (int, netip.Addr, error) {
	if err := c.pc.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return 0, netip.Addr{}, fmt.Errorf("failed to set read deadline: %w", err)
	}
	// Unblock the read as soon as the context is done.
	stop := context.AfterFunc(ctx, func() {
		_ = c.pc.SetReadDeadline(time.Now())
	})
	defer stop()

	n, from, err := c.pc.ReadFrom(b)
	if err != nil {
		if ctx.Err() != nil {
			return 0, netip.Addr{}, ctx.Err()
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return 0, netip.Addr{}, ping.ErrTimeout
		}
		return 0, netip.Addr{}, fmt.Errorf("failed to read from ICMP socket: %w", err)
	}
	return n, addrOf(from), nil
}

// EchoID returns the echo id the kernel uses for a datagram socket.
func (c *conn) EchoID() (uint16, bool) {
	if !c.datagram {
		return 0, false
	}
	if addr, ok := c.pc.LocalAddr().(*net.UDPAddr); ok && addr.Port > 0 {
		return uint16(addr.Port), true // #nosec G115 // ports are 16 bit
	}
	return 0, false
}

// Close closes the underlying socket.
func (c *conn) Close() error {
	return c.pc.Close()
}

// peer converts dst into the address type the socket expects.
func (c *conn) peer(dst netip.Addr) net.Addr {
	if c.datagram {
		return &net.UDPAddr{IP: dst.AsSlice(), Zone: dst.Zone()}
	}
	return &net.IPAddr{IP: dst.AsSlice(), Zone: dst.Zone()}
}

// addrOf extracts the IP address of a socket peer.
func addrOf(a net.Addr) netip.Addr {
	var ip net.IP
	var zone string
	switch a := a.(type) {
	case *net.IPAddr:
		ip, zone = a.IP, a.Zone
	case *net.UDPAddr:
		ip, zone = a.IP, a.Zone
	default:
		return netip.Addr{}
	}

	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}
	}
	if addr.Is4In6() {
		return addr.Unmap()
	}
	return addr.WithZone(zone)
}
