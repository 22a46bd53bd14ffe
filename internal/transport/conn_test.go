// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/sparrow-ping/internal/ping"
)

var _ packetConn = (*fakePacketConn)(nil)

// fakePacketConn implements [packetConn] with replaceable methods.
type fakePacketConn struct {
	readFromFunc func(b []byte) (int, net.Addr, error)
	writeToFunc  func(b []byte, dst net.Addr) (int, error)
	localAddr    net.Addr

	mu        sync.Mutex
	deadlines []time.Time
	closed    bool
}

func (f *fakePacketConn) ReadFrom(b []byte) (int, net.Addr, error) {
	if f.readFromFunc == nil {
		return 0, nil, os.ErrDeadlineExceeded
	}
	return f.readFromFunc(b)
}

func (f *fakePacketConn) WriteTo(b []byte, dst net.Addr) (int, error) {
	if f.writeToFunc == nil {
		return len(b), nil
	}
	return f.writeToFunc(b, dst)
}

func (f *fakePacketConn) SetReadDeadline(t time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deadlines = append(f.deadlines, t)
	return nil
}

func (f *fakePacketConn) LocalAddr() net.Addr {
	return f.localAddr
}

func (f *fakePacketConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestConn_Send(t *testing.T) {
	tests := []struct {
		name     string
		datagram bool
		dst      netip.Addr
		want     net.Addr
	}{
		{
			name: "raw ipv4",
			dst:  netip.MustParseAddr("192.0.2.1"),
			want: &net.IPAddr{IP: net.IP{192, 0, 2, 1}},
		},
		{
			name:     "datagram ipv4",
			datagram: true,
			dst:      netip.MustParseAddr("192.0.2.1"),
			want:     &net.UDPAddr{IP: net.IP{192, 0, 2, 1}},
		},
		{
			name: "raw ipv6 with zone",
			dst:  netip.MustParseAddr("fe80::1%eth0"),
			want: &net.IPAddr{IP: net.ParseIP("fe80::1"), Zone: "eth0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got net.Addr
			pc := &fakePacketConn{
				writeToFunc: func(b []byte, dst net.Addr) (int, error) {
					got = dst
					return len(b), nil
				},
			}
			c := &conn{pc: pc, family: ping.FamilyFor(tt.dst), datagram: tt.datagram}

			n, err := c.Send(t.Context(), []byte("hello"), tt.dst)
			require.NoError(t, err)
			assert.Equal(t, 5, n)
			assert.Equal(t, tt.want.String(), got.String())
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestConn_SendError(t *testing.T) {
	pc := &fakePacketConn{
		writeToFunc: func([]byte, net.Addr) (int, error) {
			return 0, errors.New("network is unreachable")
		},
	}
	c := &conn{pc: pc, family: ping.IPv4}

	_, err := c.Send(t.Context(), []byte{0}, netip.MustParseAddr("192.0.2.1"))
	assert.Error(t, err)
}

func TestConn_Recv(t *testing.T) {
	tests := []struct {
		name     string
		readFrom func(b []byte) (int, net.Addr, error)
		wantN    int
		wantFrom netip.Addr
		wantErr  error
	}{
		{
			name: "raw reply",
			readFrom: func(b []byte) (int, net.Addr, error) {
				return copy(b, "reply"), &net.IPAddr{IP: net.IPv4(192, 0, 2, 1)}, nil
			},
			wantN:    5,
			wantFrom: netip.MustParseAddr("192.0.2.1"),
		},
		{
			name: "datagram reply",
			readFrom: func(b []byte) (int, net.Addr, error) {
				return copy(b, "reply"), &net.UDPAddr{IP: net.ParseIP("2001:db8::1")}, nil
			},
			wantN:    5,
			wantFrom: netip.MustParseAddr("2001:db8::1"),
		},
		{
			name: "deadline exceeded",
			readFrom: func([]byte) (int, net.Addr, error) {
				return 0, nil, &net.OpError{Op: "read", Err: os.ErrDeadlineExceeded}
			},
			wantErr: ping.ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := &fakePacketConn{readFromFunc: tt.readFrom}
			c := &conn{pc: pc, family: ping.IPv4}

			before := time.Now()
			n, from, err := c.Recv(t.Context(), make([]byte, 64), 250*time.Millisecond)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantFrom, from)

			require.NotEmpty(t, pc.deadlines)
			assert.WithinDuration(t, before.Add(250*time.Millisecond), pc.deadlines[0], 100*time.Millisecond)
		})
	}
}

func TestConn_RecvReadError(t *testing.T) {
	pc := &fakePacketConn{readFromFunc: func([]byte) (int, net.Addr, error) {
		return 0, nil, net.ErrClosed
	}}
	c := &conn{pc: pc, family: ping.IPv4}

	_, _, err := c.Recv(t.Context(), make([]byte, 64), time.Second)
	require.ErrorIs(t, err, net.ErrClosed)
	assert.NotErrorIs(t, err, ping.ErrTimeout)
}

func TestConn_RecvCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	unblock := make(chan struct{})
	pc := &fakePacketConn{}
	pc.readFromFunc = func([]byte) (int, net.Addr, error) {
		cancel()
		<-unblock
		return 0, nil, os.ErrDeadlineExceeded
	}
	c := &conn{pc: pc, family: ping.IPv4}

	go func() {
		// Wait until the cancellation moved the deadline.
		for {
			pc.mu.Lock()
			n := len(pc.deadlines)
			pc.mu.Unlock()
			if n >= 2 {
				close(unblock)
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	_, _, err := c.Recv(ctx, make([]byte, 64), time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}

func TestConn_EchoID(t *testing.T) {
	tests := []struct {
		name     string
		datagram bool
		local    net.Addr
		wantID   uint16
		wantOK   bool
	}{
		{name: "raw socket", local: &net.IPAddr{IP: net.IPv4zero}},
		{name: "datagram socket", datagram: true, local: &net.UDPAddr{IP: net.IPv4zero, Port: 31337}, wantID: 31337, wantOK: true},
		{name: "unbound datagram socket", datagram: true, local: &net.UDPAddr{IP: net.IPv4zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &conn{pc: &fakePacketConn{localAddr: tt.local}, family: ping.IPv4, datagram: tt.datagram}
			id, ok := c.EchoID()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAddrOf(t *testing.T) {
	tests := []struct {
		name string
		addr net.Addr
		want netip.Addr
	}{
		{name: "mapped ipv4", addr: &net.IPAddr{IP: net.IPv4(10, 0, 0, 1)}, want: netip.MustParseAddr("10.0.0.1")},
		{name: "ipv6 with zone", addr: &net.IPAddr{IP: net.ParseIP("fe80::1"), Zone: "eth0"}, want: netip.MustParseAddr("fe80::1%eth0")},
		{name: "udp", addr: &net.UDPAddr{IP: net.ParseIP("2001:db8::2"), Port: 7}, want: netip.MustParseAddr("2001:db8::2")},
		{name: "unknown", addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1)}, want: netip.Addr{}},
		{name: "nil", addr: nil, want: netip.Addr{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, addrOf(tt.addr))
		})
	}
}
