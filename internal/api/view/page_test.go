package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/organic-report/infrastructure/dataset"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
)

func renderSection(t *testing.T, section int) string {
	t.Helper()

	service := reporting.NewService(dataset.NewSource(""), animation.DefaultOptions())
	require.NoError(t, service.Reload(context.Background()))

	report, err := service.Report(context.Background(), section)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewPageData(report, 0.15, animation.DefaultOverlayMinPercent)))
	return buf.String()
}

func TestRender(t *testing.T) {
	page := renderSection(t, 2)

	tests := []struct {
		name     string
		contains string
	}{
		{name: "contador começa oculto", contains: ">0.00M<"},
		{name: "alvo do contador", contains: `data-target="4070000"`},
		{name: "valor final do contador", contains: `data-final="4.07M"`},
		{name: "rótulo de porcentagem", contains: "39.3%"},
		{name: "total de palavras-chave", contains: "8,456"},
		{name: "atraso escalonado da barra", contains: `data-delay="480"`},
		{name: "link de navegação", contains: `href="?section=2#section-03"`},
		{name: "âncora da seção", contains: `id="section-06"`},
		{name: "rich text preservado", contains: `<em class="accent-gold">scaling</em>`},
		{name: "paleta no css", contains: "--gold: #b8956a"},
		{name: "cor literal da barra", contains: "background: #c08060"},
		{name: "limiar de revelação no script", contains: "0.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, page, tt.contains)
		})
	}

	assert.Equal(t, 1, strings.Count(page, `class="active"`))
	assert.Equal(t, 4, strings.Count(page, "data-counter "))
	assert.Equal(t, 7, strings.Count(page, "data-bar "))
}

func TestRender_OverlayOmittedForSmallBars(t *testing.T) {
	page := renderSection(t, 0)

	// só as barras acima do limiar mínimo carregam o valor sobreposto
	assert.Contains(t, page, `<span class="bar-overlay">3,320</span>`)
	assert.Contains(t, page, `<span class="bar-overlay">3,231</span>`)
	assert.NotContains(t, page, `<span class="bar-overlay">406</span>`)
}
