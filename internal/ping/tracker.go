// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import "time"

// sequenceRecord is the state of one echo request.
type sequenceRecord struct {
	// sentAt is the monotonic send timestamp.
	sentAt time.Time
	// matched is set once the first reply for the sequence was seen.
	matched bool
}

// ReplyTracker records the send time of every sequence number of a session
// and whether a reply for it was already counted.
//
// Sequence numbers are session-local and bounded by the request count, so the
// records live in a dense slice indexed by sequence number. Records are never
// removed.
type ReplyTracker struct {
	records []sequenceRecord
}

// NewReplyTracker creates a tracker for the sequence numbers 0..count-1.
func NewReplyTracker(count int) *ReplyTracker {
	return &ReplyTracker{records: make([]sequenceRecord, max(count, 0))}
}

// RecordSent stores the send timestamp of seq and resets its matched marker.
func (t *ReplyTracker) RecordSent(seq uint16, at time.Time) {
	t.records[seq] = sequenceRecord{sentAt: at}
}

// SentAt returns the send timestamp of seq.
func (t *ReplyTracker) SentAt(seq uint16) time.Time {
	return t.records[seq].sentAt
}

// Matched reports whether a reply for seq was already seen.
func (t *ReplyTracker) Matched(seq uint16) bool {
	return t.records[seq].matched
}

// TryMatch marks seq as matched and reports whether it already was.
// Only the first call for a sequence number returns false.
func (t *ReplyTracker) TryMatch(seq uint16) (alreadyMatched bool) {
	r := &t.records[seq]
	alreadyMatched = r.matched
	r.matched = true
	return alreadyMatched
}

// Len returns the number of sequence numbers the tracker holds.
func (t *ReplyTracker) Len() int {
	return len(t.records)
}
