package preview

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/organic-report/infrastructure/dataset"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/domain"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
)

func embeddedReport(t *testing.T) *domain.ReportView {
	t.Helper()

	service := reporting.NewService(dataset.NewSource(""), animation.DefaultOptions())
	require.NoError(t, service.Reload(context.Background()))

	report, err := service.Report(context.Background(), 0)
	require.NoError(t, err)
	return report
}

func TestPreview_CountersAnimateOnFirstScreen(t *testing.T) {
	p := New(embeddedReport(t), animation.DefaultOptions(), Config{Width: 72, Rows: 18})
	defer p.Close()

	assert.Contains(t, p.View(), "0.00M")
	for _, c := range p.counters {
		assert.Equal(t, animation.Revealed, c.State())
	}

	// a distribuição de ranking fica abaixo da primeira tela
	require.Len(t, p.bars, 7)
	for _, b := range p.bars {
		assert.Equal(t, animation.Hidden, b.State())
	}

	start := time.Now()
	p.Tick(start)
	p.Tick(start.Add(2 * time.Second))

	view := p.View()
	assert.Contains(t, view, "4.07M")
	assert.Contains(t, view, "51.7K")
	assert.Contains(t, view, "216")
	assert.False(t, p.Done())
}

func TestPreview_ScrollRevealsEverything(t *testing.T) {
	p := New(embeddedReport(t), animation.DefaultOptions(), Config{Width: 72, Rows: 18, ScrollStep: 3})
	defer p.Close()

	now := time.Now()
	sawBars := false
	for i := 0; i < 1000 && !p.Done(); i++ {
		p.Scroll()
		now = now.Add(2 * time.Second)
		p.Tick(now)

		if !sawBars && p.bars[1].Done() {
			sawBars = true
			assert.Contains(t, p.View(), "39.3%")
		}
	}

	require.True(t, p.Done())
	assert.True(t, sawBars)
	for _, b := range p.bars {
		assert.Equal(t, animation.Revealed, b.State())
		assert.Equal(t, b.Percent, b.Width())
	}
	assert.Equal(t, "3,320", p.bars[1].Overlay())
	assert.Equal(t, "", p.bars[6].Overlay())
}

func TestPreview_Run(t *testing.T) {
	p := New(embeddedReport(t), animation.DefaultOptions(), Config{
		Width:          60,
		Rows:           40,
		ScrollStep:     40,
		ScrollInterval: time.Millisecond,
		FrameInterval:  time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, p.Run(ctx, &out))
	assert.True(t, p.Done())
	assert.Contains(t, out.String(), "lyzr")
}

func TestPreview_RunCancelled(t *testing.T) {
	p := New(embeddedReport(t), animation.DefaultOptions(), Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	assert.ErrorIs(t, p.Run(ctx, &out), context.Canceled)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Rows: 10, ScrollStep: 50}.withDefaults()

	assert.Equal(t, 72, cfg.Width)
	assert.Equal(t, 1, cfg.ScrollStep)
	assert.Equal(t, animation.DefaultFrameInterval, cfg.FrameInterval)
}
