package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-report/internal/config"
)

var ErrReloadInProgress = errors.New("dataset reload already in progress")

// DatasetReloader é quem sabe recarregar o dataset do relatório
type DatasetReloader interface {
	Reload(ctx context.Context) error
}

// DatasetReloadConfig representa a configuração do agendador de recarga do dataset
type DatasetReloadConfig struct {
	CronSchedule  string
	ReloadEnabled bool
	DatasetPath   string
}

// DatasetReloadService recarrega periodicamente o dataset externo do relatório
type DatasetReloadService struct {
	scheduler             *gocron.Scheduler
	config                DatasetReloadConfig
	reloader              DatasetReloader
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastReloadError       error
	reloadCount           int
}

func NewDatasetReloadService(reloader DatasetReloader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule:  appConfig.DatasetReload.CronSchedule,
		ReloadEnabled: appConfig.DatasetReload.Enabled,
		DatasetPath:   appConfig.Report.DatasetPath,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.ReloadEnabled,
		"dataset_path":   reloadConfig.DatasetPath,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: scheduler,
		config:    reloadConfig,
		reloader:  reloader,
	}
}

// Start inicia o agendador. O dataset embutido nunca muda, então sem arquivo
// externo não há o que agendar.
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.ReloadEnabled {
		logrus.Info("Recarga periódica do dataset desabilitada por configuração")
		return nil
	}

	if s.config.DatasetPath == "" {
		logrus.Info("Dataset embutido em uso, recarga periódica ignorada")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.reload(ctx); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadNow recarrega o dataset de forma síncrona
func (s *DatasetReloadService) ReloadNow(ctx context.Context) error {
	return s.reload(ctx)
}

// TriggerManualReload inicia uma recarga em segundo plano
func (s *DatasetReloadService) TriggerManualReload() {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.reloadMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.reload(context.Background()); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

func (s *DatasetReloadService) reload(ctx context.Context) error {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return ErrReloadInProgress
	}
	s.reloadRunning = true
	startTime := time.Now()
	s.lastReloadStartedAt = startTime
	s.reloadMutex.Unlock()

	err := s.reloader.Reload(ctx)

	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	s.reloadRunning = false
	s.lastReloadError = err
	if err != nil {
		return err
	}

	s.reloadCount++
	s.lastReloadCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"reloads":  s.reloadCount,
	}).Info("Recarga do dataset concluída")

	return nil
}

// GetStatus retorna o status atual da recarga
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	status := map[string]any{
		"reload_running":           s.reloadRunning,
		"reload_cron":              s.config.CronSchedule,
		"reload_enabled":           s.config.ReloadEnabled,
		"reload_count":             s.reloadCount,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
	}

	if s.lastReloadError != nil {
		status["last_reload_error"] = s.lastReloadError.Error()
	}

	return status
}
