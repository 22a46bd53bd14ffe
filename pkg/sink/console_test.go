// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"bytes"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/telekom/sparrow-ping/internal/ping"
	"golang.org/x/net/ipv6"
)

var (
	v6Addr = netip.MustParseAddr("2001:db8::1")
	v4Addr = netip.MustParseAddr("192.0.2.1")
)

func TestConsole_Handle(t *testing.T) {
	tests := []struct {
		name    string
		events  []ping.Event
		wantOut string
		wantErr string
	}{
		{
			name: "successful ipv6 session",
			events: []ping.Event{
				ping.Begin{Host: "example.test", Addr: v6Addr, Family: ping.IPv6, ID: 7, DataLen: 56},
				ping.RoundTrip{Seq: 0, RTT: 1500 * time.Microsecond, Size: 56, From: v6Addr},
				ping.RoundTrip{Seq: 1, RTT: 2500 * time.Microsecond, Size: 56, From: v6Addr},
				ping.Finish{Stats: ping.Stats{Sent: 2, Verified: 2}, Elapsed: 1002 * time.Millisecond},
			},
			wantOut: "PING6 2001:db8::1: 56 bytes of data\n" +
				"56 bytes from 2001:db8::1 icmp_seq=0 time=1.500 ms\n" +
				"56 bytes from 2001:db8::1 icmp_seq=1 time=2.500 ms\n" +
				"2 packets transmitted, 2 received, 0% packet loss, time 1002 ms\n" +
				"rtt min/avg/max = 1.500/2.000/2.500 ms\n",
		},
		{
			name: "timeouts and warnings",
			events: []ping.Event{
				ping.Begin{Host: "192.0.2.1", Addr: v4Addr, Family: ping.IPv4, ID: 7, DataLen: 8},
				ping.Timeout{Seq: 0, Timeout: time.Second},
				ping.IDMismatch{ID: 9, Want: 7},
				ping.SeqTooLarge{Seq: 5, Want: 1},
				ping.ForeignType{Type: ipv6.ICMPTypeDestinationUnreachable, Code: 4},
				ping.SeqTooSmall{Seq: 0, Want: 1},
				ping.RoundTrip{Seq: 0, RTT: 1100 * time.Millisecond, Size: 8, From: v4Addr, Late: true},
				ping.PayloadCorrupt{Seq: 0},
				ping.RoundTrip{Seq: 1, RTT: time.Millisecond, Size: 4, From: v4Addr},
				ping.SizeMismatch{Seq: 1, Got: 4, Want: 8},
				ping.Duplicate{Seq: 1, RTT: 2 * time.Millisecond, Size: 8, From: v4Addr},
				ping.Finish{Stats: ping.Stats{Sent: 3, Verified: 1}, Elapsed: 3 * time.Second},
			},
			wantOut: "PING 192.0.2.1: 8 bytes of data\n" +
				"No response from 192.0.2.1: icmp_seq=0 time=1000 ms\n" +
				"8 bytes from 192.0.2.1 icmp_seq=0 time=1100.000 ms\n" +
				"4 bytes from 192.0.2.1 icmp_seq=1 time=1.000 ms\n" +
				"8 bytes from 192.0.2.1 icmp_seq=1 time=2.000 ms (DUP!)\n" +
				"3 packets transmitted, 1 received, 67% packet loss, time 3000 ms\n" +
				"rtt min/avg/max = 1.000/550.500/1100.000 ms\n",
			wantErr: "WARNING: Ignoring ICMP reply with ID 9.  Expected 7\n" +
				"WARNING: Ignoring ICMP reply to sequence 5.  Expected <= 1\n" +
				"WARNING: ICMP packet with unknown type: 1\n" +
				"WARNING: Received after timeout\n" +
				"WARNING: Echoed data corrupted\n" +
				"WARNING: Ignoring ICMP reply with different payload size: 4 vs 8\n",
		},
		{
			name: "fatal before begin",
			events: []ping.Event{
				ping.Fatal{Reason: ping.FatalResolve, Err: errors.New("failed to resolve host")},
			},
			wantErr: "ERROR: failed to resolve host\n",
		},
		{
			name: "fatal before first request",
			events: []ping.Event{
				ping.Begin{Host: "192.0.2.1", Addr: v4Addr, Family: ping.IPv4, DataLen: 56},
				ping.Fatal{Reason: ping.FatalSend, Err: errors.New("network is unreachable")},
				ping.Finish{Stats: ping.Stats{}, Elapsed: time.Millisecond},
			},
			wantOut: "PING 192.0.2.1: 56 bytes of data\n",
			wantErr: "ERROR: network is unreachable\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			c := NewConsole(&out, &errOut)
			for _, ev := range tt.events {
				c.Handle(t.Context(), ev)
			}

			if diff := cmp.Diff(tt.wantOut, out.String()); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantErr, errOut.String()); diff != "" {
				t.Errorf("unexpected error output (-want +got):\n%s", diff)
			}
		})
	}
}
