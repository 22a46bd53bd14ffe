// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterInstanceInfo(t *testing.T) {
	registry := prometheus.NewRegistry()

	err := RegisterInstanceInfo(registry, "probe-1.example.com", map[string]string{
		"version": "v1.2.3",
		"target":  "2001:db8::1",
	})
	if err != nil {
		t.Fatalf("RegisterInstanceInfo() error = %v", err)
	}

	metrics, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	var found bool
	for _, mf := range metrics {
		if mf.GetName() != instanceInfoMetricName {
			continue
		}
		found = true
		if len(mf.GetMetric()) != 1 {
			t.Errorf("expected 1 metric, got %d", len(mf.GetMetric()))
		}
		for _, m := range mf.GetMetric() {
			if m.GetGauge().GetValue() != 1 {
				t.Errorf("expected value 1, got %v", m.GetGauge().GetValue())
			}
			labels := make(map[string]string)
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["instance_name"] != "probe-1.example.com" || labels["version"] != "v1.2.3" || labels["target"] != "2001:db8::1" {
				t.Errorf("unexpected labels: %v", labels)
			}
		}
	}
	if !found {
		t.Errorf("metric %s not found", instanceInfoMetricName)
	}
}

func TestRegisterInstanceInfo_Twice(t *testing.T) {
	registry := prometheus.NewRegistry()
	if err := RegisterInstanceInfo(registry, "a", nil); err != nil {
		t.Fatalf("RegisterInstanceInfo() error = %v", err)
	}
	if err := RegisterInstanceInfo(registry, "a", nil); err == nil {
		t.Error("expected error when registering twice")
	}
}
