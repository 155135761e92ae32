package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/organic-report/internal/config"
	"github.com/vfg2006/organic-report/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool, path string) *config.Config {
	return &config.Config{
		Report:        config.Report{DatasetPath: path},
		DatasetReload: config.DatasetReload{CronSchedule: "*/10 * * * *", Enabled: enabled},
	}
}

func TestDatasetReloadService_ReloadNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		reloadErr     error
		expectedCount int
	}{
		{"Recarga com sucesso", nil, 1},
		{"Recarga com erro", errors.New("dataset inválido"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reloader := mocks.NewMockReportService(ctrl)
			reloader.EXPECT().Reload(gomock.Any()).Return(tt.reloadErr)

			service := NewDatasetReloadService(reloader, newTestConfig(true, "report.yaml"))
			err := service.ReloadNow(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.expectedCount, status["reload_count"])
			assert.Equal(t, false, status["reload_running"])
			if tt.reloadErr != nil {
				assert.ErrorIs(t, err, tt.reloadErr)
				assert.Equal(t, tt.reloadErr.Error(), status["last_reload_error"])
			} else {
				assert.NoError(t, err)
				assert.NotContains(t, status, "last_reload_error")
			}
		})
	}
}

func TestDatasetReloadService_ReloadInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	reloader := mocks.NewMockReportService(ctrl)
	reloader.EXPECT().Reload(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	service := NewDatasetReloadService(reloader, newTestConfig(true, "report.yaml"))

	done := make(chan error, 1)
	go func() { done <- service.ReloadNow(context.Background()) }()
	<-started

	assert.ErrorIs(t, service.ReloadNow(context.Background()), ErrReloadInProgress)
	assert.Equal(t, true, service.GetStatus()["reload_running"])

	close(release)
	assert.NoError(t, <-done)
}

func TestDatasetReloadService_TriggerManualReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	reloader := mocks.NewMockReportService(ctrl)
	reloader.EXPECT().Reload(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		defer close(done)
		return nil
	})

	service := NewDatasetReloadService(reloader, newTestConfig(false, ""))
	service.TriggerManualReload()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recarga manual não executada")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["reload_count"] == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDatasetReloadService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{"Desabilitado por configuração", newTestConfig(false, "report.yaml"), false},
		{"Dataset embutido não agenda", newTestConfig(true, ""), false},
		{"Cron inválido", &config.Config{
			Report:        config.Report{DatasetPath: "report.yaml"},
			DatasetReload: config.DatasetReload{CronSchedule: "invalido", Enabled: true},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewDatasetReloadService(mocks.NewMockReportService(ctrl), tt.cfg)
			err := service.Start(ctx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
