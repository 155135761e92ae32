package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/organic-report/internal/scheduler"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
	"github.com/vfg2006/organic-report/pkg/apiErrors"
	"github.com/vfg2006/organic-report/pkg/log"
)

// DatasetReloader dispara a recarga do dataset e informa o estado do agendador
type DatasetReloader interface {
	ReloadNow(ctx context.Context) error
	TriggerManualReload()
	GetStatus() map[string]any
}

func datasetStatus(service reporting.ReportService, reloader DatasetReloader) map[string]any {
	status := map[string]any{
		"dataset": service.Status(),
	}
	if reloader != nil {
		status["reload"] = reloader.GetStatus()
	}
	return status
}

// GetDatasetStatus retorna o estado do dataset carregado e da recarga agendada
func GetDatasetStatus(service reporting.ReportService, reloader DatasetReloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(datasetStatus(service, reloader)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dataset-status: erro ao codificar resposta")
		}
	})
}

func isAsync(r *http.Request) bool {
	switch r.URL.Query().Get("async") {
	case "1", "true":
		return true
	}
	return false
}

// ReloadDataset recarrega o dataset de forma síncrona e devolve o novo estado.
// Com ?async=1 a recarga roda em segundo plano e a resposta é 202.
func ReloadDataset(service reporting.ReportService, reloader DatasetReloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset-reload: recarga solicitada")

		if reloader != nil && isAsync(r) {
			reloader.TriggerManualReload()

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			if err := json.NewEncoder(w).Encode(datasetStatus(service, reloader)); err != nil {
				logger.WithError(err).Error("dataset-reload: erro ao codificar resposta")
			}
			return
		}

		var err error
		if reloader != nil {
			err = reloader.ReloadNow(r.Context())
		} else {
			err = service.Reload(r.Context())
		}

		if err != nil {
			logger.WithError(err).Warn("dataset-reload: recarga falhou")

			code := reporting.ErrorCode(err)
			if errors.Is(err, scheduler.ErrReloadInProgress) {
				code = apiErrors.ErrReloadInProgress
			}
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(datasetStatus(service, reloader)); err != nil {
			logger.WithError(err).Error("dataset-reload: erro ao codificar resposta")
		}
	})
}
