package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure("debug", "development") })

	tests := []struct {
		name      string
		level     string
		env       string
		wantLevel logrus.Level
		wantDev   bool
	}{
		{"Desenvolvimento com nível válido", "debug", "development", logrus.DebugLevel, true},
		{"Ambiente vazio conta como desenvolvimento", "warn", "", logrus.WarnLevel, true},
		{"Produção", "error", "production", logrus.ErrorLevel, false},
		{"Nível inválido cai para info", "verbose", "production", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, Configure(tt.level, tt.env))
			assert.Equal(t, tt.wantLevel, logrus.GetLevel())
			assert.Equal(t, tt.wantDev, IsDevelopment())
		})
	}
}

func TestKeepInDevelopment(t *testing.T) {
	tests := []struct {
		key  string
		keep bool
	}{
		{"correlation_id", true},
		{"status_code", true},
		{"dataset_source", true},
		{"report_section", true},
		{"preview_rows", true},
		{"user_agent", false},
		{"remote_addr", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.keep, keepInDevelopment(tt.key))
		})
	}
}

func TestForContext_FieldsByEnvironment(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		Configure("debug", "development")
	})

	ctx, correlationID := WithCorrelationID(context.Background())
	assert.Equal(t, correlationID, GetCorrelationID(ctx))

	Configure("info", "development")
	ForContext(ctx).WithFields(Fields{"user_agent": "curl", "report_section": 2}).Info("dev")
	assert.Contains(t, buf.String(), correlationID)
	assert.Contains(t, buf.String(), "report_section")
	assert.NotContains(t, buf.String(), "user_agent")

	buf.Reset()
	Configure("info", "production")
	ForContext(ctx).WithFields(Fields{"user_agent": "curl"}).Info("prod")
	assert.Contains(t, buf.String(), `"user_agent":"curl"`)
	assert.Contains(t, buf.String(), `"correlation_id":"`+correlationID+`"`)
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
