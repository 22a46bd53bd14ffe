// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/pkg/api"
)

const urlParamCheckName = "checkName"

// startupAPI registers the routes and serves the api until it is shut down
func (m *Monitor) startupAPI(ctx context.Context) error {
	routes := []api.Route{
		{
			Path: "/metrics", Method: http.MethodGet,
			Handler: promhttp.HandlerFor(m.metrics.GetRegistry(), promhttp.HandlerOpts{
				Registry: m.metrics.GetRegistry(),
			}).ServeHTTP,
		},
		{
			Path: fmt.Sprintf("/v1/metrics/{%s}", urlParamCheckName), Method: http.MethodGet,
			Handler: m.handleCheckMetrics,
		},
	}

	err := m.api.RegisterRoutes(ctx, routes...)
	if err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Error while registering routes", "error", err)
		return err
	}
	return m.api.Run(ctx)
}

// handleCheckMetrics writes the latest result of a check as json
func (m *Monitor) handleCheckMetrics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	name := chi.URLParam(r, urlParamCheckName)
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, ok := m.results.Get(name)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error("Failed to encode response body", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
