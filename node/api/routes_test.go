package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("oracle_reports_accepted_total 0\n"))
	})
	server := &Server{
		node:    newFakeNode(),
		metrics: metrics,
		logger:  logger,
	}

	router := server.setupRoutes()

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Health endpoint",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Balances endpoint",
			method:         http.MethodGet,
			path:           "/api/v1/balances",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong method",
			method:         http.MethodDelete,
			path:           "/api/v1/balances",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "Wrong method on early route",
			method:         http.MethodPost,
			path:           "/api/v1/balances",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "Wrong method on shared path",
			method:         http.MethodDelete,
			path:           "/api/v1/contributors",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "Wrong method on path with variable",
			method:         http.MethodPost,
			path:           "/api/v1/reports/tx-1",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "Admin route requires POST",
			method:         http.MethodGet,
			path:           "/api/v1/admin/params",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "Non-existent endpoint",
			method:         http.MethodGet,
			path:           "/api/v1/non-existent",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Non-existent endpoint with POST",
			method:         http.MethodPost,
			path:           "/api/v1/non-existent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestMetricsRouteOmittedWithoutHandler(t *testing.T) {
	server := &Server{
		node:   newFakeNode(),
		logger: zerolog.Nop(),
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	server.setupRoutes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
