// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/sparrow-ping/internal/ping"
	"github.com/telekom/sparrow-ping/pkg/checks"
)

// Metrics records ping events as prometheus metrics labelled by target.
type Metrics struct {
	sent     *prometheus.CounterVec
	verified *prometheus.CounterVec
	events   *prometheus.CounterVec
	loss     *prometheus.GaugeVec
	rtt      *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewMetrics initializes the metric collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		sent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sparrow_ping_sent_total",
				Help: "Total number of ICMP echo requests sent to the target.",
			},
			[]string{"target"},
		),
		verified: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sparrow_ping_verified_total",
				Help: "Total number of verified ICMP echo replies received from the target.",
			},
			[]string{"target"},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sparrow_ping_events_total",
				Help: "Total number of ping session events by kind.",
			},
			[]string{"target", "kind"},
		),
		loss: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sparrow_ping_loss_ratio",
				Help: "Packet loss of the last finished session to the target, from 0 to 1.",
			},
			[]string{"target"},
		),
		rtt: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sparrow_ping_rtt_seconds",
				Help: "Round trip time of the last echo reply from the target in seconds.",
			},
			[]string{"target"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sparrow_ping_rtt",
				Help:    "Histogram of round trip times of ICMP echo replies in seconds.",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
			},
			[]string{"target"},
		),
	}
}

// GetCollectors returns all metric collectors.
func (m *Metrics) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.sent,
		m.verified,
		m.events,
		m.loss,
		m.rtt,
		m.duration,
	}
}

// For returns a sink recording the events of sessions to target.
func (m *Metrics) For(target string) ping.Sink {
	return ping.SinkFunc(func(_ context.Context, ev ping.Event) {
		m.events.WithLabelValues(target, string(ev.Kind())).Inc()

		switch ev := ev.(type) {
		case ping.RoundTrip:
			m.rtt.WithLabelValues(target).Set(ev.RTT.Seconds())
			m.duration.WithLabelValues(target).Observe(ev.RTT.Seconds())
		case ping.Finish:
			m.sent.WithLabelValues(target).Add(float64(ev.Stats.Sent))
			m.verified.WithLabelValues(target).Add(float64(ev.Stats.Verified))
			if loss, ok := ev.Stats.Loss(); ok {
				m.loss.WithLabelValues(target).Set(float64(loss) / 100)
			}
		}
	})
}

// Remove removes the metrics of one target.
func (m *Metrics) Remove(target string) error {
	if !m.sent.DeleteLabelValues(target) {
		return checks.ErrMetricNotFound{Target: target}
	}

	if !m.verified.DeleteLabelValues(target) {
		return checks.ErrMetricNotFound{Target: target}
	}

	m.events.DeletePartialMatch(prometheus.Labels{"target": target})
	m.loss.DeleteLabelValues(target)
	m.rtt.DeleteLabelValues(target)
	m.duration.DeleteLabelValues(target)
	return nil
}
