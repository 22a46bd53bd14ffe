// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"

	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/internal/ping"
)

// Log writes every event to the logger of the context.
var Log ping.Sink = ping.SinkFunc(func(ctx context.Context, ev ping.Event) {
	log := logger.FromContext(ctx).With("event", ev.Kind())

	switch ev := ev.(type) {
	case ping.Begin:
		log.InfoContext(ctx, "Ping session started", "addr", ev.Addr, "family", ev.Family.Name, "echoID", ev.ID, "dataLen", ev.DataLen)
	case ping.Timeout:
		log.InfoContext(ctx, "No response", "seq", ev.Seq, "timeout", ev.Timeout)
	case ping.RoundTrip:
		log.DebugContext(ctx, "Echo reply", "seq", ev.Seq, "rtt", ev.RTT, "size", ev.Size, "from", ev.From, "late", ev.Late)
	case ping.Duplicate:
		log.WarnContext(ctx, "Duplicate echo reply", "seq", ev.Seq, "rtt", ev.RTT, "from", ev.From)
	case ping.IDMismatch:
		log.DebugContext(ctx, "Ignoring echo reply of another session", "id", ev.ID, "expected", ev.Want)
	case ping.SeqTooLarge:
		log.WarnContext(ctx, "Ignoring echo reply to a sequence not sent yet", "seq", ev.Seq, "current", ev.Want)
	case ping.SeqTooSmall:
		log.WarnContext(ctx, "Echo reply received after timeout", "seq", ev.Seq, "current", ev.Want)
	case ping.PayloadCorrupt:
		log.WarnContext(ctx, "Echoed data corrupted", "seq", ev.Seq)
	case ping.SizeMismatch:
		log.WarnContext(ctx, "Echo reply with different payload size", "seq", ev.Seq, "size", ev.Got, "expected", ev.Want)
	case ping.ForeignType:
		log.DebugContext(ctx, "Ignoring ICMP message of unknown type", "type", ping.TypeNumber(ev.Type), "code", ev.Code)
	case ping.Fatal:
		log.ErrorContext(ctx, "Ping session aborted", "reason", ev.Reason.String(), "error", ev.Err)
	case ping.Finish:
		loss, _ := ev.Stats.Loss()
		log.InfoContext(ctx, "Ping session finished", "sent", ev.Stats.Sent, "received", ev.Stats.Verified, "lossPercent", loss, "elapsed", ev.Elapsed)
	}
})
