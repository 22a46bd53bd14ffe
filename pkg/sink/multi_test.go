// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/internal/ping"
)

func TestMulti(t *testing.T) {
	var got []string
	record := func(name string) ping.Sink {
		return ping.SinkFunc(func(_ context.Context, ev ping.Event) {
			got = append(got, name+":"+string(ev.Kind()))
		})
	}

	s := Multi(record("a"), nil, record("b"))
	s.Handle(t.Context(), ping.Begin{})
	s.Handle(t.Context(), ping.Finish{})

	assert.Equal(t, []string{"a:begin", "b:begin", "a:finish", "b:finish"}, got)
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logger.IntoContext(t.Context(), log)

	Log.Handle(ctx, ping.Begin{Host: "example.test", Addr: v4Addr, Family: ping.IPv4, DataLen: 56})
	Log.Handle(ctx, ping.Fatal{Reason: ping.FatalSocket, Err: assert.AnError})

	out := buf.String()
	assert.Contains(t, out, `"msg":"Ping session started"`)
	assert.Contains(t, out, `"event":"begin"`)
	assert.Contains(t, out, `"reason":"socket"`)
	assert.Contains(t, out, `"level":"ERROR"`)
}
