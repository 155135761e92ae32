package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-report/infrastructure/dataset"
	"github.com/vfg2006/organic-report/internal/api"
	"github.com/vfg2006/organic-report/internal/config"
	"github.com/vfg2006/organic-report/internal/scheduler"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
	"github.com/vfg2006/organic-report/pkg/log"
	"github.com/vfg2006/organic-report/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel, cfg.App.Environment)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := dataset.NewSource(cfg.Report.DatasetPath)
	reportService := reporting.NewService(source, cfg.AnimationOptions())

	// Sem um dataset válido não há relatório para servir
	if err := reportService.Reload(ctx); err != nil {
		logrus.WithError(err).WithField("dataset_source", source.Name()).Fatal("Erro ao carregar o dataset do relatório")
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Dataset carregado:\n%s", utils.PrettyJson(reportService.Status()))
	}

	reloadService := scheduler.NewDatasetReloadService(reportService, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	}

	server, err := api.New(cfg, reportService, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
