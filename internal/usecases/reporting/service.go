package reporting

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/organic-report/infrastructure/dataset"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/domain"
	"github.com/vfg2006/organic-report/pkg/apiErrors"
	"github.com/vfg2006/organic-report/pkg/log"
)

type ReportService interface {
	Report(ctx context.Context, activeSection int) (*domain.ReportView, error)
	Reload(ctx context.Context) error
	Dataset() *domain.Dataset
	Status() map[string]any
}

type Service struct {
	source dataset.Source
	opts   animation.Options

	mu          sync.RWMutex
	ds          *domain.Dataset
	loadedAt    time.Time
	reloads     int
	lastError   error
	discrepancy *dataset.Discrepancy
}

func NewService(source dataset.Source, opts animation.Options) *Service {
	return &Service{
		source: source,
		opts:   opts.WithDefaults(),
	}
}

// Report monta o relatório com a seção ativa informada
func (s *Service) Report(ctx context.Context, activeSection int) (*domain.ReportView, error) {
	ds := s.Dataset()
	if ds == nil {
		return nil, NewReportError(ErrDatasetUnavailable, apiErrors.ErrDatasetUnavailable, "")
	}

	labels := make([]string, 0, len(ds.Sections))
	for _, section := range ds.Sections {
		labels = append(labels, section.Nav)
	}

	nav := NewNavigator(labels)
	if err := nav.Select(activeSection); err != nil {
		return nil, err
	}

	view := Assemble(ds, nav, s.opts)

	log.ForContext(ctx).WithFields(log.Fields{
		"report_section": activeSection,
		"report_bars":    len(view.Rankings.Bars),
	}).Debug("Relatório montado")

	return view, nil
}

// Reload lê o dataset da fonte. Um dataset inválido é descartado e o anterior
// continua em uso.
func (s *Service) Reload(ctx context.Context) error {
	logger := log.ForContext(ctx).WithField("dataset_source", s.source.Name())
	startTime := time.Now()

	ds, err := s.source.Load(ctx)
	if err != nil {
		s.setError(err)
		logger.WithError(err).Error("Erro ao carregar dataset")
		return NewReportError(ErrDatasetLoad, apiErrors.ErrDatasetInvalid, err.Error())
	}

	if err := dataset.Validate(ds); err != nil {
		s.setError(err)
		logger.WithError(err).Error("Dataset inválido, mantendo o anterior")
		return NewReportError(ErrDatasetInvalid, apiErrors.ErrDatasetInvalid, err.Error())
	}

	var discrepancy *dataset.Discrepancy
	if d, found := dataset.RankingDiscrepancy(ds); found {
		discrepancy = &d
		logger.WithFields(log.Fields{
			"dataset_ranking_sum":   d.Sum,
			"dataset_ranking_total": d.Total,
		}).Warnf("Faixas de ranking não fecham com o total: %s", d)
	}

	s.mu.Lock()
	s.ds = ds
	s.loadedAt = time.Now()
	s.reloads++
	s.lastError = nil
	s.discrepancy = discrepancy
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"dataset_months":   len(ds.Months),
		"dataset_duration": time.Since(startTime).String(),
	}).Info("Dataset carregado")

	return nil
}

func (s *Service) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = err
}

func (s *Service) Dataset() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ds
}

// Status retorna o estado atual do dataset carregado
func (s *Service) Status() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := map[string]any{
		"source":  s.source.Name(),
		"loaded":  s.ds != nil,
		"reloads": s.reloads,
	}

	if s.ds != nil {
		status["loaded_at"] = s.loadedAt.Format(time.RFC3339)
		status["months"] = s.ds.MonthLabels()
		status["total_keywords"] = s.ds.TotalKeywords
	}

	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	if s.discrepancy != nil {
		status["ranking_discrepancy"] = map[string]any{
			"sum":   s.discrepancy.Sum,
			"total": s.discrepancy.Total,
			"diff":  s.discrepancy.Diff(),
		}
	}

	return status
}

// ErrorCode extrai o código da API de um erro do relatório
func ErrorCode(err error) string {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Code
	}
	return apiErrors.ErrInternalServer
}
