package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
	"github.com/vfg2006/organic-report/pkg/apiErrors"
)

// HealthcheckHandler responde 200 enquanto houver um dataset carregado
func HealthcheckHandler(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service.Dataset() == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Nenhum dataset carregado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
