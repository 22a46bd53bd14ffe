// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	instanceInfoMetricName = "sparrow_ping_instance_info"
	instanceInfoHelp       = "Metadata of this sparrow-ping instance such as version and monitored target."
)

// RegisterInstanceInfo registers the sparrow_ping_instance_info info-style metric on the given registry.
// The gauge is set to 1 with the label instance_name and one label per metadata entry.
func RegisterInstanceInfo(registry *prometheus.Registry, instanceName string, metadata map[string]string) error {
	names := slices.Sorted(maps.Keys(metadata))
	values := make([]string, 0, len(names)+1)
	for _, n := range names {
		values = append(values, metadata[n])
	}

	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: instanceInfoMetricName,
			Help: instanceInfoHelp,
		},
		append(names, "instance_name"),
	)
	info.WithLabelValues(append(values, instanceName)...).Set(1)
	return registry.Register(info)
}
