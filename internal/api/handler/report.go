package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/api/view"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
	"github.com/vfg2006/organic-report/pkg/apiErrors"
	"github.com/vfg2006/organic-report/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseSection lê o parâmetro ?section; ausente equivale à primeira seção
func parseSection(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("section")
	if raw == "" {
		return 0, true
	}

	section, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return section, true
}

// ReportPage renderiza a página HTML do relatório
func ReportPage(service reporting.ReportService, opts animation.Options) http.Handler {
	opts = opts.WithDefaults()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		section, ok := parseSection(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro section deve ser numérico", nil)
			return
		}

		report, err := service.Report(r.Context(), section)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"section": section,
			}).Warn("report-page: erro ao montar relatório")

			apiErrors.WriteError(w, reporting.ErrorCode(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := view.NewPageData(report, opts.RevealThreshold, opts.OverlayMinPercent)
		if err := view.Render(w, data); err != nil {
			logger.WithError(err).Error("report-page: erro ao renderizar página")
			w.Header().Del("Content-Type")
			apiErrors.WriteError(w, apiErrors.ErrRenderFailed, "Erro ao renderizar relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"section": section,
		}).Debug("report-page: página renderizada")
	})
}

// GetReport retorna o relatório montado em JSON
func GetReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		section, ok := parseSection(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro section deve ser numérico", nil)
			return
		}

		report, err := service.Report(r.Context(), section)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"section": section,
			}).Warn("report: erro ao montar relatório")

			apiErrors.WriteError(w, reporting.ErrorCode(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: erro ao codificar resposta")
		}
	})
}
