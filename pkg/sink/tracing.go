// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"

	"github.com/telekom/sparrow-ping/internal/ping"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing adds every event to the span of the context as a span event.
var Tracing ping.Sink = ping.SinkFunc(func(ctx context.Context, ev ping.Event) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if f, ok := ev.(ping.Fatal); ok {
		span.RecordError(f.Err, trace.WithAttributes(attribute.String("ping.fatal", f.Reason.String())))
		span.SetStatus(codes.Error, f.Reason.String())
		return
	}
	span.AddEvent(string(ev.Kind()), trace.WithAttributes(attributes(ev)...))
})

// attributes returns the span event attributes of ev.
func attributes(ev ping.Event) []attribute.KeyValue {
	switch ev := ev.(type) {
	case ping.Begin:
		return []attribute.KeyValue{
			attribute.String("ping.addr", ev.Addr.String()),
			attribute.Int("ping.echo_id", int(ev.ID)),
			attribute.Int("ping.datalen", ev.DataLen),
		}
	case ping.Timeout:
		return []attribute.KeyValue{attribute.Int("ping.seq", int(ev.Seq))}
	case ping.RoundTrip:
		return []attribute.KeyValue{
			attribute.Int("ping.seq", int(ev.Seq)),
			attribute.Int64("ping.rtt_us", ev.RTT.Microseconds()),
			attribute.Int("ping.size", ev.Size),
			attribute.Bool("ping.late", ev.Late),
		}
	case ping.Duplicate:
		return []attribute.KeyValue{
			attribute.Int("ping.seq", int(ev.Seq)),
			attribute.Int64("ping.rtt_us", ev.RTT.Microseconds()),
		}
	case ping.IDMismatch:
		return []attribute.KeyValue{
			attribute.Int("ping.echo_id", int(ev.ID)),
			attribute.Int("ping.expected_id", int(ev.Want)),
		}
	case ping.SeqTooLarge:
		return []attribute.KeyValue{attribute.Int("ping.seq", int(ev.Seq)), attribute.Int("ping.current_seq", int(ev.Want))}
	case ping.SeqTooSmall:
		return []attribute.KeyValue{attribute.Int("ping.seq", int(ev.Seq)), attribute.Int("ping.current_seq", int(ev.Want))}
	case ping.PayloadCorrupt:
		return []attribute.KeyValue{attribute.Int("ping.seq", int(ev.Seq))}
	case ping.SizeMismatch:
		return []attribute.KeyValue{
			attribute.Int("ping.seq", int(ev.Seq)),
			attribute.Int("ping.size", ev.Got),
			attribute.Int("ping.expected_size", ev.Want),
		}
	case ping.ForeignType:
		return []attribute.KeyValue{
			attribute.Int("icmp.type", ping.TypeNumber(ev.Type)),
			attribute.Int("icmp.code", int(ev.Code)),
		}
	case ping.Finish:
		loss, _ := ev.Stats.Loss()
		return []attribute.KeyValue{
			attribute.Int("ping.sent", ev.Stats.Sent),
			attribute.Int("ping.verified", ev.Stats.Verified),
			attribute.Int("ping.loss_percent", loss),
			attribute.Int64("ping.elapsed_ms", ev.Elapsed.Milliseconds()),
		}
	default:
		return nil
	}
}
