// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_RegisterRoutes(t *testing.T) {
	tests := []struct {
		name     string
		routes   []Route
		method   string
		path     string
		wantErr  error
		wantCode int
		wantBody string
	}{
		{
			name:     "health endpoint",
			method:   http.MethodGet,
			path:     "/healthz",
			wantCode: http.StatusOK,
			wantBody: "ok",
		},
		{
			name: "custom route",
			routes: []Route{{Path: "/v1/metrics/ping", Method: http.MethodGet, Handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}}},
			method:   http.MethodGet,
			path:     "/v1/metrics/ping",
			wantCode: http.StatusTeapot,
		},
		{
			name: "panicking handler",
			routes: []Route{{Path: "/panic", Method: http.MethodGet, Handler: func(http.ResponseWriter, *http.Request) {
				panic("boom")
			}}},
			method:   http.MethodGet,
			path:     "/panic",
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "unknown route",
			method:   http.MethodGet,
			path:     "/v1/metrics/dns",
			wantCode: http.StatusNotFound,
		},
		{
			name:    "unsupported method",
			routes:  []Route{{Path: "/healthz", Method: "BREW", Handler: func(http.ResponseWriter, *http.Request) {}}},
			wantErr: ErrUnsupportedMethod{Method: "BREW", Path: "/healthz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(Config{ListeningAddress: ":0"}).(*api)
			err := a.RegisterRoutes(t.Context(), tt.routes...)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			a.router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAPI_RunAndShutdown(t *testing.T) {
	a := New(Config{ListeningAddress: "localhost:0"})
	require.NoError(t, a.RegisterRoutes(t.Context()))

	cErr := make(chan error, 1)
	go func() {
		cErr <- a.Run(t.Context())
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, a.Shutdown(t.Context()))

	select {
	case err := <-cErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("api did not stop after shutdown")
	}
}

func TestAPI_RunCanceled(t *testing.T) {
	a := New(Config{ListeningAddress: "localhost:0"})
	require.NoError(t, a.RegisterRoutes(t.Context()))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := a.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, a.Shutdown(t.Context()))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&Config{ListeningAddress: ":8080"}).Validate())
	assert.ErrorIs(t, (&Config{}).Validate(), ErrInvalidAddress)
}
