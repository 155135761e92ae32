package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/organic-report/infrastructure/dataset"
	"github.com/vfg2006/organic-report/internal/config"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
	"github.com/vfg2006/organic-report/pkg/apiErrors"
	"github.com/vfg2006/organic-report/pkg/middleware"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"https://report.example"}},
	}

	service := reporting.NewService(dataset.NewSource(""), cfg.AnimationOptions())
	require.NoError(t, service.Reload(context.Background()))

	srv, err := New(cfg, service, nil)
	require.NoError(t, err)
	return srv
}

func TestServer_Handler(t *testing.T) {
	handler := newTestServer(t).Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"Página do relatório", http.MethodGet, "/", http.StatusOK, "data-counter"},
		{"Relatório em JSON", http.MethodGet, "/v1/report?section=2", http.StatusOK, `"active":true`},
		{"Seção inválida", http.MethodGet, "/v1/report?section=7", http.StatusBadRequest, apiErrors.ErrSectionOutOfRange},
		{"Status do dataset", http.MethodGet, "/v1/dataset/status", http.StatusOK, `"loaded":true`},
		{"Recarga sem agendador usa o serviço", http.MethodPost, "/v1/dataset/reload", http.StatusOK, `"reloads":2`},
		{"Rota inexistente", http.MethodGet, "/v2/report", http.StatusNotFound, apiErrors.ErrRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "https://report.example")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationHeader))
			assert.Equal(t, "https://report.example", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
