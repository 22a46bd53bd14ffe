// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/telekom/sparrow-ping/internal/ping"
	"gopkg.in/yaml.v3"
)

// Format is an output format of the session summary.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Validate checks that f is a known format.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Report is the machine readable result of one session.
type Report struct {
	Host        string     `json:"host" yaml:"host"`
	Addr        string     `json:"addr,omitempty" yaml:"addr,omitempty"`
	Family      string     `json:"family" yaml:"family"`
	DataLen     int        `json:"dataLen" yaml:"dataLen"`
	Transmitted int        `json:"transmitted" yaml:"transmitted"`
	Received    int        `json:"received" yaml:"received"`
	Duplicates  int        `json:"duplicates" yaml:"duplicates"`
	Corrupted   int        `json:"corrupted" yaml:"corrupted"`
	Timeouts    int        `json:"timeouts" yaml:"timeouts"`
	LossPercent *int       `json:"lossPercent" yaml:"lossPercent"`
	ElapsedMs   int64      `json:"elapsedMs" yaml:"elapsedMs"`
	RTT         *RTTReport `json:"rtt,omitempty" yaml:"rtt,omitempty"`
	Error       string     `json:"error,omitempty" yaml:"error,omitempty"`
	Timestamp   time.Time  `json:"timestamp" yaml:"timestamp"`
}

// RTTReport holds the round trip times of a [Report] in milliseconds.
type RTTReport struct {
	MinMs float64 `json:"minMs" yaml:"minMs"`
	AvgMs float64 `json:"avgMs" yaml:"avgMs"`
	MaxMs float64 `json:"maxMs" yaml:"maxMs"`
	Count int     `json:"count" yaml:"count"`
}

var _ ping.Sink = (*Summary)(nil)

// Summary collects the events of one session into a [Report].
type Summary struct {
	mu     sync.Mutex
	report Report
	rtt    RTTStats
}

// NewSummary returns a summary for a session to host.
func NewSummary(host string) *Summary {
	return &Summary{report: Report{Host: host}}
}

// Handle updates the report.
func (s *Summary) Handle(_ context.Context, ev ping.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev := ev.(type) {
	case ping.Begin:
		s.report.Addr = ev.Addr.String()
		s.report.Family = ev.Family.Name
		s.report.DataLen = ev.DataLen
	case ping.Timeout:
		s.report.Timeouts++
	case ping.RoundTrip:
		s.rtt.Add(ev.RTT)
	case ping.Duplicate:
		s.report.Duplicates++
	case ping.PayloadCorrupt, ping.SizeMismatch:
		s.report.Corrupted++
	case ping.Fatal:
		s.report.Error = ev.Err.Error()
	case ping.Finish:
		s.report.Transmitted = ev.Stats.Sent
		s.report.Received = ev.Stats.Verified
		s.report.ElapsedMs = ev.Elapsed.Milliseconds()
		s.report.Timestamp = ev.Stats.Start.UTC()
		if loss, ok := ev.Stats.Loss(); ok {
			s.report.LossPercent = &loss
		}
	}
}

// Report returns the collected report.
func (s *Summary) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.report
	if s.rtt.Count > 0 {
		r.RTT = &RTTReport{
			MinMs: toMillis(s.rtt.Min),
			AvgMs: toMillis(s.rtt.Avg),
			MaxMs: toMillis(s.rtt.Max),
			Count: s.rtt.Count,
		}
	}
	return r
}

// Write encodes the report to w in the given format.
// The text format is left to the [Console] sink and writes nothing.
func (s *Summary) Write(w io.Writer, f Format) error {
	r := s.Report()
	switch f {
	case FormatText:
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report as yaml: %w", err)
		}
		return enc.Close()
	default:
		return f.Validate()
	}
}

// toMillis converts d to milliseconds with microsecond resolution.
func toMillis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
