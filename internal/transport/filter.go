// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"github.com/telekom/sparrow-ping/internal/ping"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// ipv4Conn and ipv6Conn are implemented by [icmp.PacketConn].
type (
	ipv4Conn interface {
		IPv4PacketConn() *ipv4.PacketConn
	}
	ipv6Conn interface {
		IPv6PacketConn() *ipv6.PacketConn
	}
)

// setEchoFilter restricts a raw socket to the echo replies of its family and
// the error messages reporting an unreachable target.
// It is a variable so tests can replace it.
var setEchoFilter = defaultSetEchoFilter

// defaultSetEchoFilter installs the kernel ICMP filter. Sockets that do not
// expose the ipv4 or ipv6 packet conn are left unfiltered.
func defaultSetEchoFilter(pc packetConn, f ping.Family) error {
	if f.Proto == ping.IPv6.Proto {
		c, ok := pc.(ipv6Conn)
		if !ok || c.IPv6PacketConn() == nil {
			return nil
		}
		return c.IPv6PacketConn().SetICMPFilter(echoReplyFilter6())
	}

	c, ok := pc.(ipv4Conn)
	if !ok || c.IPv4PacketConn() == nil {
		return nil
	}
	return c.IPv4PacketConn().SetICMPFilter(echoReplyFilter4())
}

func echoReplyFilter4() *ipv4.ICMPFilter {
	var filter ipv4.ICMPFilter
	filter.SetAll(true)
	filter.Accept(ipv4.ICMPTypeEchoReply)
	filter.Accept(ipv4.ICMPTypeDestinationUnreachable)
	filter.Accept(ipv4.ICMPTypeTimeExceeded)
	return &filter
}

func echoReplyFilter6() *ipv6.ICMPFilter {
	var filter ipv6.ICMPFilter
	filter.SetAll(true)
	filter.Accept(ipv6.ICMPTypeEchoReply)
	filter.Accept(ipv6.ICMPTypeDestinationUnreachable)
	filter.Accept(ipv6.ICMPTypeTimeExceeded)
	return &filter
}
