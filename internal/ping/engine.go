// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/netip"
	"time"

	"github.com/telekom/sparrow-ping/internal/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// maxPacketLen is the size of the receive buffer. It is larger than any
// expected reply so that oversized echoes are detected instead of truncated.
const maxPacketLen = math.MaxUint16

// Engine runs ping sessions.
// An Engine holds no per-session state and may run several sessions concurrently,
// each session owning its own socket.
type Engine struct {
	resolver Resolver
	opener   Opener
	sink     Sink
}

// NewEngine creates an engine that resolves targets with r, opens sockets with o
// and reports all events to s. A nil sink discards the events.
func NewEngine(r Resolver, o Opener, s Sink) *Engine {
	if s == nil {
		s = Discard
	}
	return &Engine{resolver: r, opener: o, sink: s}
}

// run is the state of one running session.
type run struct {
	sess    Session
	sink    Sink
	conn    Conn
	dst     netip.Addr
	id      uint16
	tracker *ReplyTracker
	stats   Stats
	payload []byte
	buf     []byte
}

// Run executes the session and returns its final statistics.
//
// Resolution and socket failures abort before any request is sent; they are
// reported as a [Fatal] event only. Once the session began, a [Finish] event
// is emitted on every exit path. The returned error is the cause of a fatal
// abort and nil after a normal finish.
func (e *Engine) Run(ctx context.Context, sess Session) (Stats, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("ping.Engine")
	ctx, span := tracer.Start(ctx, "Run", trace.WithAttributes(
		attribute.String("ping.host", sess.Host),
		attribute.String("ping.family", sess.Family.Name),
		attribute.Int("ping.count", sess.Count),
		attribute.Int("ping.datalen", sess.DataLen),
		attribute.Stringer("ping.delay", sess.Delay),
		attribute.Stringer("ping.timeout", sess.Timeout),
		attribute.Int("ping.id", int(sess.ID)),
	))
	defer span.End()
	log := logger.FromContext(ctx).With("host", sess.Host, "id", sess.ID)
	ctx = logger.IntoContext(ctx, log)

	if err := sess.Validate(); err != nil {
		return Stats{}, wrapError(ctx, err, "refusing to run session")
	}

	r := &run{
		sess:    sess,
		sink:    e.sink,
		id:      sess.ID,
		tracker: NewReplyTracker(sess.Count),
		payload: GeneratePayload(sess.DataLen),
		buf:     make([]byte, maxPacketLen),
	}

	dst, err := e.resolver.Resolve(ctx, sess.Host, sess.Family)
	if err != nil {
		return Stats{}, r.fatal(ctx, FatalResolve, fmt.Errorf("%w %q: %w", ErrResolve, sess.Host, err))
	}
	r.dst = dst

	conn, err := e.opener.Open(ctx, sess.Family)
	if err != nil {
		return Stats{}, r.fatal(ctx, FatalSocket, fmt.Errorf("%w: %w", ErrSocket, err))
	}
	defer func() {
		if cErr := conn.Close(); cErr != nil {
			log.ErrorContext(ctx, "Failed to close ICMP socket", "error", cErr)
		}
	}()
	r.conn = conn

	if ider, ok := conn.(EchoIdentifier); ok {
		if id, ok := ider.EchoID(); ok {
			log.DebugContext(ctx, "Socket rewrites echo id", "echoID", id)
			r.id = id
		}
	}

	r.stats.Start = time.Now()
	log.DebugContext(ctx, "Starting ping session", "addr", dst, "count", sess.Count)
	r.emit(ctx, Begin{Host: sess.Host, Addr: dst, Family: sess.Family, ID: r.id, DataLen: sess.DataLen})

	err = r.loop(ctx)

	elapsed := time.Since(r.stats.Start)
	span.SetAttributes(
		attribute.Int("ping.sent", r.stats.Sent),
		attribute.Int("ping.verified", r.stats.Verified),
	)
	r.emit(ctx, Finish{Stats: r.stats, Elapsed: elapsed})
	log.DebugContext(ctx, "Finished ping session", "sent", r.stats.Sent, "verified", r.stats.Verified, "elapsed", elapsed)
	return r.stats, err
}

// loop sends the requests one after another.
func (r *run) loop(ctx context.Context) error {
	for seq := range r.sess.Count {
		s := uint16(seq) // #nosec G115 // count is validated to fit into 16 bits
		if err := r.checkCanceled(ctx); err != nil {
			return err
		}

		sentAt, err := r.send(ctx, s)
		if err != nil {
			return err
		}

		if err := r.wait(ctx, s, sentAt); err != nil {
			return err
		}

		if seq+1 < r.sess.Count {
			if err := r.pace(ctx, sentAt); err != nil {
				return err
			}
		}
	}
	return nil
}

// send transmits the echo request for s and returns its send time.
func (r *run) send(ctx context.Context, s uint16) (time.Time, error) {
	pkt, err := r.sess.Family.Marshal(r.sess.ID, s, r.payload)
	if err != nil {
		return time.Time{}, r.fatal(ctx, FatalSend, fmt.Errorf("%w: %w", ErrSend, err))
	}

	sentAt := time.Now()
	r.tracker.RecordSent(s, sentAt)
	n, err := r.conn.Send(ctx, pkt, r.dst)
	if err != nil {
		return time.Time{}, r.fatal(ctx, FatalSend, fmt.Errorf("%w at seq %d: %w", ErrSend, s, err))
	}
	if n != len(pkt) {
		return time.Time{}, r.fatal(ctx, FatalShortSend, fmt.Errorf("%w: wrote %d of %d bytes", ErrShortSend, n, len(pkt)))
	}

	r.stats.Sent++
	return sentAt, nil
}

// wait receives and classifies replies until the budget of s is used up.
// The budget starts at the timeout and shrinks to the pacing delay once the
// expected reply arrived, so late and duplicate replies are still observed
// while the next request is due.
func (r *run) wait(ctx context.Context, s uint16, sentAt time.Time) error {
	budget := r.sess.Timeout
	for {
		if err := r.checkCanceled(ctx); err != nil {
			return err
		}

		remaining := max(budget-time.Since(sentAt), 0)
		n, from, err := r.conn.Recv(ctx, r.buf, remaining)
		switch {
		case errors.Is(err, ErrTimeout):
			if r.tracker.Matched(s) {
				return nil
			}
			r.emit(ctx, Timeout{Seq: s, Timeout: r.sess.Timeout})
			if time.Since(sentAt) >= budget {
				return nil
			}
			continue
		case err != nil:
			if cErr := r.checkCanceled(ctx); cErr != nil {
				return cErr
			}
			return r.fatal(ctx, FatalRecv, fmt.Errorf("%w: %w", ErrRecv, err))
		}

		if n < r.sess.Family.HeaderLen {
			return r.fatal(ctx, FatalShortReply, fmt.Errorf("%w: %d bytes", ErrShortReply, n))
		}

		if r.classify(ctx, s, r.buf[:n], from) {
			budget = r.sess.Delay
		}
	}
}

// classify handles one received message while s is the current sequence.
// It reports whether the message was the first reply to s.
func (r *run) classify(ctx context.Context, s uint16, msg []byte, from netip.Addr) (expected bool) {
	hdr, payload, err := r.sess.Family.Decode(msg)
	if err != nil {
		// The caller checked the header length already.
		return false
	}

	switch {
	case !r.sess.Family.IsReply(hdr.Type):
		r.emit(ctx, ForeignType{Type: hdr.Type, Code: hdr.Code})
		return false
	case hdr.ID != r.id:
		r.emit(ctx, IDMismatch{ID: hdr.ID, Want: r.id})
		return false
	case hdr.Seq > s:
		r.emit(ctx, SeqTooLarge{Seq: hdr.Seq, Want: s})
		return false
	}

	rtt := time.Since(r.tracker.SentAt(hdr.Seq))
	duplicate := r.tracker.TryMatch(hdr.Seq)
	switch {
	case duplicate:
		r.emit(ctx, Duplicate{Seq: hdr.Seq, RTT: rtt, Size: len(payload), From: from})
	case hdr.Seq < s:
		r.emit(ctx, SeqTooSmall{Seq: hdr.Seq, Want: s})
		r.emit(ctx, RoundTrip{Seq: hdr.Seq, RTT: rtt, Size: len(payload), From: from, Late: true})
	default:
		r.emit(ctx, RoundTrip{Seq: hdr.Seq, RTT: rtt, Size: len(payload), From: from})
		expected = true
	}

	// Duplicates are verified for diagnostics only, a sequence counts once.
	if r.verify(ctx, hdr.Seq, payload) && !duplicate {
		r.stats.Verified++
	}
	return expected
}

// verify checks the echoed payload against the generated pattern.
func (r *run) verify(ctx context.Context, seq uint16, payload []byte) bool {
	if len(payload) != r.sess.DataLen {
		r.emit(ctx, SizeMismatch{Seq: seq, Got: len(payload), Want: r.sess.DataLen})
		return false
	}
	if !VerifyPayload(payload, r.sess.DataLen) {
		r.emit(ctx, PayloadCorrupt{Seq: seq})
		return false
	}
	return true
}

// pace blocks until the delay since sentAt has passed.
func (r *run) pace(ctx context.Context, sentAt time.Time) error {
	elapsed := time.Since(sentAt)
	if elapsed >= r.sess.Delay {
		return nil
	}

	timer := time.NewTimer(r.sess.Delay - elapsed)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return r.checkCanceled(ctx)
	case <-timer.C:
		return nil
	}
}

// checkCanceled aborts the session if the context is done.
func (r *run) checkCanceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return r.fatal(ctx, FatalCanceled, fmt.Errorf("%w: %w", ErrCanceled, err))
	}
	return nil
}

// fatal reports an unrecoverable error and returns it.
func (r *run) fatal(ctx context.Context, kind FatalKind, err error) error {
	err = wrapError(ctx, err, "session aborted (%s)", kind)
	r.emit(ctx, Fatal{Reason: kind, Err: err})
	return err
}

func (r *run) emit(ctx context.Context, ev Event) {
	r.sink.Handle(ctx, ev)
}
