package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/organic-report/infrastructure/dataset"
	"github.com/vfg2006/organic-report/infrastructure/dataset/mocks"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/domain"
	"github.com/vfg2006/organic-report/pkg/apiErrors"
	"github.com/vfg2006/organic-report/pkg/utils"
	"go.uber.org/mock/gomock"
)

func loadedService(t *testing.T) *Service {
	t.Helper()

	service := NewService(dataset.NewSource(""), animation.DefaultOptions())
	require.NoError(t, service.Reload(context.Background()))
	return service
}

func TestService_Report_EndToEnd(t *testing.T) {
	view, err := loadedService(t).Report(context.Background(), 0)
	require.NoError(t, err)

	// faixa de KPIs
	require.Len(t, view.KPIs, 4)
	assert.Equal(t, "Total Impressions", view.KPIs[0].Label)
	assert.Equal(t, "4.07M", view.KPIs[0].Final)
	assert.Equal(t, "0.00M", view.KPIs[0].Display)
	assert.Equal(t, "+84%", view.KPIs[0].TrendText)
	assert.Equal(t, domain.Palette["green"], view.KPIs[0].TrendColor)
	assert.Equal(t, "51.7K", view.KPIs[1].Final)
	assert.Equal(t, "216", view.KPIs[2].Final)
	assert.Equal(t, domain.Palette["blue"], view.KPIs[2].TrendColor)
	assert.Equal(t, "8.5K", view.KPIs[3].Final)
	assert.Equal(t, int64(1200), view.KPIs[0].DurationMS)
	assert.Contains(t, view.KPIs[0].WidgetID, "kpi-")

	// distribuição de ranking
	bars := view.Rankings.Bars
	require.Len(t, bars, 7)
	percents := make([]float64, 0, len(bars))
	for _, b := range bars {
		percents = append(percents, b.Percent)
		assert.Equal(t, 0.0, b.Width)
	}
	assert.Equal(t, []float64{38.2, 39.3, 11.1, 4.8, 3.4, 2.2, 1.0}, percents)
	assert.InDelta(t, 100.0, view.Rankings.PercentSum, 0.5)
	assert.Equal(t, "8,456", view.Rankings.TotalLabel)
	assert.Equal(t, int64(0), view.Rankings.Discrepancy)
	assert.Equal(t, "39.3%", bars[1].PercentLabel)
	assert.Equal(t, "1%", bars[6].PercentLabel)
	assert.Equal(t, "3,320", bars[1].OverlayLabel)
	assert.Equal(t, "", bars[3].OverlayLabel)
	// o valor interno só aparece depois da revelação
	for _, b := range bars {
		assert.Empty(t, b.Overlay)
	}
	assert.Equal(t, int64(480), bars[6].DelayMS)
	assert.Equal(t, "#c08060", bars[0].Color)
	assert.Equal(t, domain.Palette["blue"], bars[2].Color)

	// navegação
	require.Len(t, view.Nav, 6)
	assert.True(t, view.Nav[0].Active)
	assert.Equal(t, "section-01", view.Nav[0].Anchor)

	assert.Equal(t, []domain.HeroBadge{
		{Key: "Period", Value: "Nov 2025 – Jan 2026"},
		{Key: "Domain", Value: "lyzr.ai"},
		{Key: "Generated", Value: "Feb 3, 2026"},
	}, view.Badges)
}

func TestService_Report_Tables(t *testing.T) {
	view, err := loadedService(t).Report(context.Background(), 2)
	require.NoError(t, err)

	column := func(table domain.TableView, col int) []string {
		labels := make([]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			labels = append(labels, row.Cells[col].Label)
		}
		return labels
	}

	assert.Equal(t, []string{"1.01M", "1.20M", "1.86M"}, column(view.Impressions, 1))
	assert.Equal(t, []string{"—", "+19%", "+55%"}, column(view.Impressions, 2))
	assert.Equal(t, domain.Palette["text_muted"], view.Impressions.Rows[0].Cells[2].Color)
	assert.Equal(t, domain.Palette["green"], view.Impressions.Rows[1].Cells[2].Color)

	assert.Equal(t, []string{"17.5K", "16.3K", "17.9K"}, column(view.Traffic, 1))
	assert.Equal(t, []string{"1.7%", "1.4%", "1.0%"}, column(view.Traffic, 2))
	assert.Equal(t, domain.Palette["gold"], view.Traffic.Rows[0].Cells[2].Color)
	assert.Equal(t, domain.Palette["blue"], view.Traffic.Rows[2].Cells[2].Color)

	assert.Equal(t, []string{"101", "56", "59"}, column(view.MQLs, 1))
	assert.Equal(t, []string{"0.58%", "0.34%", "0.33%"}, column(view.MQLs, 2))
	assert.Equal(t, domain.Palette["green"], view.MQLs.Rows[0].Cells[2].Color)

	require.Len(t, view.Funnel.Stages, 3)
	assert.Equal(t, "1.86M", view.Funnel.Stages[0].Values[2].Label)
	assert.True(t, view.Funnel.Stages[0].Values[2].Highlight)
	assert.False(t, view.Funnel.Stages[0].Values[0].Highlight)
	assert.Equal(t, "17.5K", view.Funnel.Stages[1].Values[0].Label)
	assert.Equal(t, "59", view.Funnel.Stages[2].Values[2].Label)

	assert.True(t, view.Nav[2].Active)
	assert.False(t, view.Nav[0].Active)

	assert.Equal(t, domain.Palette["rose"], view.Authority[1].ChangeColor)
	assert.Equal(t, domain.Palette["green"], view.Authority[0].ChangeColor)
	assert.Equal(t, "03", view.Outlook[2].Number)
	assert.Contains(t, view.Sections[0].IntroHTML, "<strong>+84%</strong>")
	require.NotNil(t, view.Sections[0].Insight)
	assert.Equal(t, domain.InsightGreen, view.Sections[0].Insight.Variant)
	assert.Nil(t, view.Sections[5].Insight)
	assert.Contains(t, view.BottomLine.LinesHTML[0], `<em class="accent-gold">scaling</em>`)
}

func TestService_Report_SectionOutOfRange(t *testing.T) {
	service := loadedService(t)

	for _, section := range []int{-1, 6, 99} {
		_, err := service.Report(context.Background(), section)
		assert.ErrorIs(t, err, ErrSectionOutOfRange)
		assert.Equal(t, apiErrors.ErrSectionOutOfRange, ErrorCode(err))
	}
}

func TestService_Report_WithoutDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSource(ctrl), animation.DefaultOptions())
	_, err := service.Report(context.Background(), 0)

	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	assert.Equal(t, apiErrors.ErrDatasetUnavailable, ErrorCode(err))
}

func TestService_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid, err := dataset.NewSource("").Load(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name        string
		setup       func(source *mocks.MockSource)
		expectedErr error
		validate    func(t *testing.T, service *Service)
	}{
		{
			name: "Falha ao carregar mantém o dataset anterior",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("disco indisponível"))
			},
			expectedErr: ErrDatasetLoad,
			validate: func(t *testing.T, service *Service) {
				assert.Equal(t, valid, service.Dataset())
				assert.Equal(t, "disco indisponível", service.Status()["last_error"])
			},
		},
		{
			name: "Dataset inválido é descartado",
			setup: func(source *mocks.MockSource) {
				broken := *valid
				broken.TotalKeywords = 0
				source.EXPECT().Load(gomock.Any()).Return(&broken, nil)
			},
			expectedErr: ErrDatasetInvalid,
			validate: func(t *testing.T, service *Service) {
				assert.Equal(t, int64(8456), service.Dataset().TotalKeywords)
			},
		},
		{
			name: "Divergência de ranking é tolerada e reportada",
			setup: func(source *mocks.MockSource) {
				changed := *valid
				changed.TotalKeywords = 8500
				source.EXPECT().Load(gomock.Any()).Return(&changed, nil)
			},
			validate: func(t *testing.T, service *Service) {
				status := service.Status()
				assert.Equal(t, 2, status["reloads"])
				assert.NotContains(t, status, "last_error")
				assert.Equal(t, int64(44), status["ranking_discrepancy"].(map[string]any)["diff"])

				view, err := service.Report(context.Background(), 0)
				require.NoError(t, err)
				assert.Equal(t, int64(44), view.Rankings.Discrepancy)
				assert.Equal(t, 38.0, view.Rankings.Bars[0].Percent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewMockSource(ctrl)
			source.EXPECT().Name().Return("mock").AnyTimes()

			service := NewService(source, animation.DefaultOptions())

			// primeira carga válida
			source.EXPECT().Load(gomock.Any()).Return(valid, nil)
			require.NoError(t, service.Reload(context.Background()))

			tt.setup(source)
			err := service.Reload(context.Background())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, apiErrors.ErrDatasetInvalid, ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}

			tt.validate(t, service)
		})
	}
}

func TestNavigator_Select(t *testing.T) {
	nav := NewNavigator([]string{"Executive Summary", "Visibility", "Traffic"})

	assert.NoError(t, nav.Select(2))
	assert.Equal(t, 2, nav.Active())

	err := nav.Select(3)
	assert.ErrorIs(t, err, ErrSectionOutOfRange)
	assert.Equal(t, 2, nav.Active())

	items := nav.Items()
	assert.Len(t, items, 3)
	assert.True(t, items[2].Active)
	assert.Equal(t, "Visibility", items[1].Label)
	assert.Equal(t, "section-02", items[1].Anchor)
}

func TestNavigator_SemSecoes(t *testing.T) {
	nav := NewNavigator(nil)

	assert.NoError(t, nav.Select(0))
	assert.Empty(t, nav.Items())
	assert.ErrorIs(t, nav.Select(1), ErrSectionOutOfRange)
}

func TestService_Report_DatasetSemSecoes(t *testing.T) {
	ds, err := dataset.Decode([]byte("months:\n  - month: Jan\n    impressions: 10\n    clicks: 2\n    mqls: 1\ntotal_keywords: 5\n"), "yaml")
	require.NoError(t, err)
	require.NoError(t, dataset.Validate(ds))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("mock").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(ds, nil)

	service := NewService(source, animation.DefaultOptions())
	require.NoError(t, service.Reload(context.Background()))

	view, err := service.Report(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, view.Nav)
	assert.Empty(t, view.Sections)

	_, err = service.Report(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSectionOutOfRange)
}

func TestService_StatusPrettyJson(t *testing.T) {
	service := loadedService(t)

	var out string
	require.NotPanics(t, func() { out = utils.PrettyJson(service.Status()) })
	assert.Contains(t, out, "\t\"loaded\": true")
}
