// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"errors"
	"fmt"
	"net"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/sparrow-ping/internal/ping"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
	"golang.org/x/sys/unix"
)

func TestOpener_Open(t *testing.T) {
	tests := []struct {
		name         string
		mode         Mode
		family       ping.Family
		failures     map[string]error
		wantNetworks []string
		wantDatagram bool
		wantErr      error
	}{
		{
			name:         "auto uses raw socket",
			mode:         ModeAuto,
			family:       ping.IPv4,
			wantNetworks: []string{"ip4:icmp"},
		},
		{
			name:         "auto falls back on missing permission",
			mode:         ModeAuto,
			family:       ping.IPv6,
			failures:     map[string]error{"ip6:ipv6-icmp": unix.EPERM},
			wantNetworks: []string{"ip6:ipv6-icmp", "udp6"},
			wantDatagram: true,
		},
		{
			name:         "auto falls back on denied access",
			mode:         ModeAuto,
			family:       ping.IPv4,
			failures:     map[string]error{"ip4:icmp": unix.EACCES},
			wantNetworks: []string{"ip4:icmp", "udp4"},
			wantDatagram: true,
		},
		{
			name:         "auto does not fall back on other errors",
			mode:         ModeAuto,
			family:       ping.IPv4,
			failures:     map[string]error{"ip4:icmp": unix.EADDRNOTAVAIL},
			wantNetworks: []string{"ip4:icmp"},
			wantErr:      unix.EADDRNOTAVAIL,
		},
		{
			name:         "auto fails if both sockets are denied",
			mode:         ModeAuto,
			family:       ping.IPv4,
			failures:     map[string]error{"ip4:icmp": unix.EPERM, "udp4": unix.EACCES},
			wantNetworks: []string{"ip4:icmp", "udp4"},
			wantErr:      unix.EACCES,
		},
		{
			name:         "raw never falls back",
			mode:         ModeRaw,
			family:       ping.IPv4,
			failures:     map[string]error{"ip4:icmp": unix.EPERM},
			wantNetworks: []string{"ip4:icmp"},
			wantErr:      unix.EPERM,
		},
		{
			name:         "datagram only",
			mode:         ModeDatagram,
			family:       ping.IPv6,
			wantNetworks: []string{"udp6"},
			wantDatagram: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var networks []string
			listenPacket = func(network, address string) (packetConn, error) {
				networks = append(networks, network)
				assert.Equal(t, tt.family.ListenAddr, address)
				if err, ok := tt.failures[network]; ok {
					return nil, &net.OpError{Op: "listen", Net: network, Err: fmt.Errorf("socket: %w", err)}
				}
				return &fakePacketConn{}, nil
			}
			t.Cleanup(func() { listenPacket = defaultListenPacket })

			o, err := NewOpener(tt.mode)
			require.NoError(t, err)

			c, err := o.Open(t.Context(), tt.family)
			assert.Equal(t, tt.wantNetworks, networks)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)

			ic, ok := c.(*conn)
			require.True(t, ok, "Open should return a *conn")
			assert.Equal(t, tt.wantDatagram, ic.datagram)
			assert.Equal(t, tt.family.Name, ic.family.Name)
		})
	}
}

func TestNewOpener_UnknownMode(t *testing.T) {
	_, err := NewOpener(Mode("promiscuous"))
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestOpener_Open_EchoFilter(t *testing.T) {
	tests := []struct {
		name         string
		mode         Mode
		family       ping.Family
		filterErr    error
		wantFiltered []string
	}{
		{
			name:         "raw ipv4 socket is filtered",
			mode:         ModeRaw,
			family:       ping.IPv4,
			wantFiltered: []string{"ipv4"},
		},
		{
			name:         "raw ipv6 socket is filtered",
			mode:         ModeAuto,
			family:       ping.IPv6,
			wantFiltered: []string{"ipv6"},
		},
		{
			name:   "datagram socket is not filtered",
			mode:   ModeDatagram,
			family: ping.IPv6,
		},
		{
			name:         "missing filter support keeps the socket",
			mode:         ModeRaw,
			family:       ping.IPv4,
			filterErr:    errors.New("operation not supported"),
			wantFiltered: []string{"ipv4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listenPacket = func(string, string) (packetConn, error) {
				return &fakePacketConn{}, nil
			}
			var filtered []string
			setEchoFilter = func(_ packetConn, f ping.Family) error {
				filtered = append(filtered, f.Name)
				return tt.filterErr
			}
			t.Cleanup(func() {
				listenPacket = defaultListenPacket
				setEchoFilter = defaultSetEchoFilter
			})

			o, err := NewOpener(tt.mode)
			require.NoError(t, err)

			c, err := o.Open(t.Context(), tt.family)
			require.NoError(t, err)
			assert.NotNil(t, c)
			assert.Equal(t, tt.wantFiltered, filtered)
		})
	}
}

func TestSetEchoFilter_PlainConn(t *testing.T) {
	assert.NoError(t, defaultSetEchoFilter(&fakePacketConn{}, ping.IPv4))
	assert.NoError(t, defaultSetEchoFilter(&fakePacketConn{}, ping.IPv6))
}

func TestEchoReplyFilter(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("ICMP filters are evaluated on linux only")
	}

	f4 := echoReplyFilter4()
	assert.False(t, f4.WillBlock(ipv4.ICMPTypeEchoReply))
	assert.False(t, f4.WillBlock(ipv4.ICMPTypeDestinationUnreachable))
	assert.True(t, f4.WillBlock(ipv4.ICMPTypeEcho))
	assert.True(t, f4.WillBlock(ipv4.ICMPTypeRedirect))

	f6 := echoReplyFilter6()
	assert.False(t, f6.WillBlock(ipv6.ICMPTypeEchoReply))
	assert.False(t, f6.WillBlock(ipv6.ICMPTypeTimeExceeded))
	assert.True(t, f6.WillBlock(ipv6.ICMPTypeEchoRequest))
	assert.True(t, f6.WillBlock(ipv6.ICMPTypeNeighborSolicitation))
	assert.True(t, f6.WillBlock(ipv6.ICMPTypeRouterAdvertisement))
	assert.True(t, f6.WillBlock(ipv6.ICMPTypeMulticastListenerReport))
}
