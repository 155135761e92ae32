package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-report/infrastructure/dataset"
	"github.com/vfg2006/organic-report/internal/config"
	"github.com/vfg2006/organic-report/internal/preview"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
	"github.com/vfg2006/organic-report/pkg/log"
)

func main() {
	// a tela do terminal é da pré-visualização
	logrus.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := dataset.NewSource(cfg.Report.DatasetPath)
	reportService := reporting.NewService(source, cfg.AnimationOptions())
	if err := reportService.Reload(ctx); err != nil {
		logrus.WithError(err).WithField("dataset_source", source.Name()).Fatal("Erro ao carregar o dataset do relatório")
	}

	report, err := reportService.Report(ctx, 0)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o relatório")
	}

	p := preview.New(report, cfg.AnimationOptions(), preview.Config{
		Width:          cfg.Preview.Width,
		Rows:           cfg.Preview.Rows,
		ScrollStep:     cfg.Preview.ScrollStep,
		ScrollInterval: cfg.Preview.ScrollInterval,
		FrameInterval:  cfg.Animation.FrameInterval,
	})

	if err := p.Run(ctx, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Error("Erro na pré-visualização")
	}
}
