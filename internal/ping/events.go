// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"context"
	"net/netip"
	"time"

	"golang.org/x/net/icmp"
)

// Kind identifies the category of an [Event].
type Kind string

const (
	KindBegin          Kind = "begin"
	KindTimeout        Kind = "timeout"
	KindIDMismatch     Kind = "id_mismatch"
	KindSeqTooLarge    Kind = "seq_too_large"
	KindSeqTooSmall    Kind = "seq_too_small"
	KindDuplicate      Kind = "duplicate"
	KindRoundTrip      Kind = "roundtrip"
	KindPayloadCorrupt Kind = "payload_corrupt"
	KindSizeMismatch   Kind = "size_mismatch"
	KindForeignType    Kind = "foreign_type"
	KindFatal          Kind = "fatal"
	KindFinish         Kind = "finish"
)

// Event is one occurrence reported by the engine.
// The set of events is closed: only the types of this package implement it.
type Event interface {
	Kind() Kind
	sealed()
}

// Sink receives the events of a session in the order they occur.
// Implementations must not block for long; they run on the engine's goroutine.
type Sink interface {
	Handle(ctx context.Context, ev Event)
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(ctx context.Context, ev Event)

// Handle calls f(ctx, ev).
func (f SinkFunc) Handle(ctx context.Context, ev Event) {
	f(ctx, ev)
}

// Discard is a [Sink] that drops all events.
var Discard Sink = SinkFunc(func(context.Context, Event) {})

// Begin is emitted once the socket is open and before the first request.
type Begin struct {
	Host    string
	Addr    netip.Addr
	Family  Family
	ID      uint16
	DataLen int
}

// Timeout is emitted when no reply for the current sequence arrived within the budget.
type Timeout struct {
	Seq     uint16
	Timeout time.Duration
}

// IDMismatch is emitted for an echo reply belonging to another session.
type IDMismatch struct {
	ID   uint16
	Want uint16
}

// SeqTooLarge is emitted for a reply to a sequence number not sent yet.
type SeqTooLarge struct {
	Seq  uint16
	Want uint16
}

// SeqTooSmall is emitted for a reply to an earlier, already timed out request.
// A [RoundTrip] event for the late sequence follows.
type SeqTooSmall struct {
	Seq  uint16
	Want uint16
}

// Duplicate is emitted for every further reply to an already matched sequence.
type Duplicate struct {
	Seq  uint16
	RTT  time.Duration
	Size int
	From netip.Addr
}

// RoundTrip is emitted for the first reply to a sequence.
type RoundTrip struct {
	Seq  uint16
	RTT  time.Duration
	Size int
	From netip.Addr
	// Late is set when the reply arrived after its sequence had timed out.
	Late bool
}

// PayloadCorrupt is emitted when the echoed payload differs from the pattern.
type PayloadCorrupt struct {
	Seq uint16
}

// SizeMismatch is emitted when the echoed payload has an unexpected length.
type SizeMismatch struct {
	Seq  uint16
	Got  int
	Want int
}

// ForeignType is emitted for a received ICMP message that is not an echo reply.
type ForeignType struct {
	Type icmp.Type
	Code uint8
}

// Fatal is emitted when the session aborts.
type Fatal struct {
	Reason FatalKind
	Err    error
}

// Finish is emitted last, after a normal finish or a fatal abort.
type Finish struct {
	Stats   Stats
	Elapsed time.Duration
}

// FatalKind classifies unrecoverable errors.
type FatalKind int

const (
	FatalResolve FatalKind = iota + 1
	FatalSocket
	FatalSend
	FatalShortSend
	FatalRecv
	FatalShortReply
	FatalCanceled
)

func (k FatalKind) String() string {
	switch k {
	case FatalResolve:
		return "resolve"
	case FatalSocket:
		return "socket"
	case FatalSend:
		return "send"
	case FatalShortSend:
		return "short_send"
	case FatalRecv:
		return "recv"
	case FatalShortReply:
		return "short_reply"
	case FatalCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

func (Begin) Kind() Kind          { return KindBegin }
func (Timeout) Kind() Kind        { return KindTimeout }
func (IDMismatch) Kind() Kind     { return KindIDMismatch }
func (SeqTooLarge) Kind() Kind    { return KindSeqTooLarge }
func (SeqTooSmall) Kind() Kind    { return KindSeqTooSmall }
func (Duplicate) Kind() Kind      { return KindDuplicate }
func (RoundTrip) Kind() Kind      { return KindRoundTrip }
func (PayloadCorrupt) Kind() Kind { return KindPayloadCorrupt }
func (SizeMismatch) Kind() Kind   { return KindSizeMismatch }
func (ForeignType) Kind() Kind    { return KindForeignType }
func (Fatal) Kind() Kind          { return KindFatal }
func (Finish) Kind() Kind         { return KindFinish }

func (Begin) sealed()          {}
func (Timeout) sealed()        {}
func (IDMismatch) sealed()     {}
func (SeqTooLarge) sealed()    {}
func (SeqTooSmall) sealed()    {}
func (Duplicate) sealed()      {}
func (RoundTrip) sealed()      {}
func (PayloadCorrupt) sealed() {}
func (SizeMismatch) sealed()   {}
func (ForeignType) sealed()    {}
func (Fatal) sealed()          {}
func (Finish) sealed()         {}
