// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"sync"
	"time"

	"github.com/telekom/sparrow-ping/internal/ping"
)

var _ ping.Sink = (*Console)(nil)

// Console renders the events of one session in the classic ping format.
// Progress lines go to out, warnings and errors to errOut.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	addr   netip.Addr
	rtt    RTTStats
}

// NewConsole returns a console sink writing to out and errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// Handle prints the event.
func (c *Console) Handle(_ context.Context, ev ping.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev := ev.(type) {
	case ping.Begin:
		c.addr = ev.Addr
		c.rtt = RTTStats{}
		prefix := "PING"
		if ev.Family.Name == ping.IPv6.Name {
			prefix = "PING6"
		}
		c.printf("%s %s: %d bytes of data\n", prefix, ev.Addr, ev.DataLen)
	case ping.Timeout:
		c.printf("No response from %s: icmp_seq=%d time=%d ms\n", c.addr, ev.Seq, ev.Timeout.Milliseconds())
	case ping.IDMismatch:
		c.warnf("Ignoring ICMP reply with ID %d.  Expected %d", ev.ID, ev.Want)
	case ping.SeqTooLarge:
		c.warnf("Ignoring ICMP reply to sequence %d.  Expected <= %d", ev.Seq, ev.Want)
	case ping.SeqTooSmall:
		c.warnf("Received after timeout")
	case ping.RoundTrip:
		c.rtt.Add(ev.RTT)
		c.printf("%d bytes from %s icmp_seq=%d time=%s ms\n", ev.Size, ev.From, ev.Seq, millis(ev.RTT))
	case ping.Duplicate:
		c.printf("%d bytes from %s icmp_seq=%d time=%s ms (DUP!)\n", ev.Size, ev.From, ev.Seq, millis(ev.RTT))
	case ping.PayloadCorrupt:
		c.warnf("Echoed data corrupted")
	case ping.SizeMismatch:
		c.warnf("Ignoring ICMP reply with different payload size: %d vs %d", ev.Got, ev.Want)
	case ping.ForeignType:
		c.warnf("ICMP packet with unknown type: %d", ping.TypeNumber(ev.Type))
	case ping.Fatal:
		fmt.Fprintf(c.errOut, "ERROR: %v\n", ev.Err)
	case ping.Finish:
		loss, ok := ev.Stats.Loss()
		if !ok {
			return
		}
		c.printf("%d packets transmitted, %d received, %d%% packet loss, time %d ms\n",
			ev.Stats.Sent, ev.Stats.Verified, loss, ev.Elapsed.Milliseconds())
		if c.rtt.Count > 0 {
			c.printf("rtt min/avg/max = %s/%s/%s ms\n", millis(c.rtt.Min), millis(c.rtt.Avg), millis(c.rtt.Max))
		}
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) warnf(format string, args ...any) {
	fmt.Fprintf(c.errOut, "WARNING: "+format+"\n", args...)
}

// millis formats d in milliseconds with microsecond precision.
func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}
