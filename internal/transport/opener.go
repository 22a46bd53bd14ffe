// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/internal/ping"
	"golang.org/x/net/icmp"
	"golang.org/x/sys/unix"
)

// Mode selects the kind of ICMP socket.
type Mode string

const (
	// ModeAuto tries a raw socket and falls back to a datagram socket
	// if the process lacks the NET_RAW capability.
	ModeAuto Mode = "auto"
	// ModeRaw requires a raw socket.
	ModeRaw Mode = "raw"
	// ModeDatagram uses an unprivileged datagram socket.
	// On Linux this requires the group to be in net.ipv4.ping_group_range.
	ModeDatagram Mode = "datagram"
)

// Validate checks that m is a known mode.
func (m Mode) Validate() error {
	switch m {
	case ModeAuto, ModeRaw, ModeDatagram:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
	}
}

// listenPacket opens an ICMP socket.
// It is a variable so tests can replace it.
var listenPacket = defaultListenPacket

func defaultListenPacket(network, address string) (packetConn, error) {
	c, err := icmp.ListenPacket(network, address)
	if err != nil {
		return nil, err
	}
	return c, nil
}

var _ ping.Opener = (*Opener)(nil)

// Opener opens ICMP sockets in the configured mode.
type Opener struct {
	mode Mode
}

// NewOpener returns an opener for the given mode.
func NewOpener(mode Mode) (*Opener, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	return &Opener{mode: mode}, nil
}

// Open acquires a socket for the family f.
func (o *Opener) Open(ctx context.Context, f ping.Family) (ping.Conn, error) {
	log := logger.FromContext(ctx).With("family", f.Name, "mode", o.mode)

	switch o.mode {
	case ModeDatagram:
		return open(ctx, f, true)
	case ModeRaw:
		return open(ctx, f, false)
	}

	c, err := open(ctx, f, false)
	if err == nil {
		log.DebugContext(ctx, "Opened raw ICMP socket")
		return c, nil
	}
	if !errors.Is(err, unix.EPERM) && !errors.Is(err, unix.EACCES) {
		return nil, err
	}

	log.DebugContext(ctx, "No NET_RAW capabilities, falling back to datagram ICMP socket", "error", err)
	c, err = open(ctx, f, true)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "Opened datagram ICMP socket")
	return c, nil
}

func open(ctx context.Context, f ping.Family, datagram bool) (*conn, error) {
	network := f.RawNetwork
	if datagram {
		network = f.DatagramNetwork
	}

	pc, err := listenPacket(network, f.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", network, err)
	}
	if !datagram {
		if err := setEchoFilter(pc, f); err != nil {
			logger.FromContext(ctx).DebugContext(ctx, "ICMP filter unavailable, receiving all ICMP messages", "network", network, "error", err)
		}
	}
	return &conn{pc: pc, family: f, datagram: datagram}, nil
}
