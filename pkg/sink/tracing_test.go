// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/sparrow-ping/internal/ping"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	ctx, span := tp.Tracer("test").Start(t.Context(), "session")

	for _, ev := range []ping.Event{
		ping.Begin{Host: "example.test", Addr: v4Addr, Family: ping.IPv4, ID: 3, DataLen: 56},
		ping.RoundTrip{Seq: 0, RTT: time.Millisecond, Size: 56},
		ping.Fatal{Reason: ping.FatalRecv, Err: errors.New("connection refused")},
		ping.Finish{Stats: ping.Stats{Sent: 1, Verified: 1}},
	} {
		Tracing.Handle(ctx, ev)
	}
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 4)
	assert.Equal(t, "begin", events[0].Name)
	assert.Contains(t, events[0].Attributes, attribute.Int("ping.echo_id", 3))
	assert.Equal(t, "roundtrip", events[1].Name)
	assert.Contains(t, events[1].Attributes, attribute.Int64("ping.rtt_us", 1000))
	assert.Equal(t, "exception", events[2].Name)
	assert.Equal(t, "finish", events[3].Name)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestTracing_NotRecording(t *testing.T) {
	assert.NotPanics(t, func() {
		Tracing.Handle(t.Context(), ping.Begin{})
	})
}
