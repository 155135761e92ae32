package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/domain"
	"github.com/vfg2006/organic-report/pkg/htmlsanitize"
	"github.com/vfg2006/organic-report/pkg/utils"
)

const (
	// noGrowth é exibido na primeira linha de séries de crescimento
	noGrowth = "—"

	percentPlaces    int32 = 1
	growthPlaces     int32 = 0
	ctrPlaces        int32 = 1
	conversionPlaces int32 = 2
)

// Assemble monta a visão do relatório a partir do dataset.
// Os widgets animados saem no estado Hidden, o mesmo da primeira renderização.
func Assemble(ds *domain.Dataset, nav *Navigator, opts animation.Options) *domain.ReportView {
	opts = opts.WithDefaults()

	return &domain.ReportView{
		Brand:       ds.Brand,
		Domain:      ds.Domain,
		Title:       ds.Title,
		TitleAccent: ds.TitleAccent,
		Subtitle:    ds.Subtitle,
		Badges:      heroBadges(ds),
		Nav:         nav.Items(),
		KPIs:        kpiCards(ds.KPIs, opts),
		Sections:    sections(ds.Sections),
		Impressions: impressionsTable(ds),
		Traffic:     trafficTable(ds),
		MQLs:        mqlTable(ds),
		Rankings:    rankingView(ds, opts),
		Funnel:      funnelView(ds),
		Authority:   authorityCards(ds.Authority),
		Outlook:     outlookCards(ds.Outlook),
		BottomLine:  bottomLine(ds.BottomLine),
		Footer:      ds.Footer,
	}
}

func heroBadges(ds *domain.Dataset) []domain.HeroBadge {
	badges := []domain.HeroBadge{
		{Key: "Period", Value: ds.PeriodLabel},
		{Key: "Domain", Value: ds.Domain},
	}

	if generated, err := utils.ParseDate(ds.Generated); err == nil && ds.Generated != "" {
		badges = append(badges, domain.HeroBadge{Key: "Generated", Value: utils.FormatLongDate(generated)})
	}

	return badges
}

func kpiCards(kpis []domain.KPISummary, opts animation.Options) []domain.KPICard {
	cards := make([]domain.KPICard, 0, len(kpis))
	for _, k := range kpis {
		counter := animation.NewCounter(k.Value, nil, opts)
		fg, bg := domain.TrendColors(k.Trend)

		cards = append(cards, domain.KPICard{
			WidgetID:   utils.GenerateWidgetID("kpi"),
			Label:      k.Label,
			Value:      counter.Target(),
			Display:    counter.Display(),
			Final:      counter.FinalDisplay(),
			DurationMS: counter.Duration().Milliseconds(),
			TrendText:  k.TrendText,
			Trend:      k.Trend,
			TrendColor: fg,
			TrendBg:    bg,
			Accent:     domain.ResolveColor(k.Accent),
		})
	}
	return cards
}

func sections(specs []domain.Section) []domain.SectionView {
	views := make([]domain.SectionView, 0, len(specs))
	for i, s := range specs {
		view := domain.SectionView{
			Number:    SectionNumber(i),
			Anchor:    SectionAnchor(i),
			Title:     s.Title,
			IntroHTML: htmlsanitize.Sanitize(s.Intro),
		}

		if s.Insight != nil {
			view.Insight = &domain.InsightView{
				Variant:  s.Insight.Variant,
				Label:    s.Insight.Label,
				TextHTML: htmlsanitize.Sanitize(s.Insight.Text),
			}
		}

		views = append(views, view)
	}
	return views
}

func impressionsTable(ds *domain.Dataset) domain.TableView {
	table := domain.TableView{
		Title:   ds.Cards.Impressions.Title,
		Badge:   ds.Cards.Impressions.Badge,
		Headers: []string{"Month", "Impressions", "MoM Growth"},
	}

	for i, m := range ds.Months {
		growth := domain.TableCell{Label: noGrowth, Color: domain.Palette["text_muted"]}
		if i > 0 {
			if label := utils.GrowthLabel(ds.Months[i-1].Impressions, m.Impressions, growthPlaces); label != "" {
				growth = domain.TableCell{Label: label, Color: domain.Palette["green"]}
			}
		}

		table.Rows = append(table.Rows, domain.TableRow{Cells: []domain.TableCell{
			{Label: m.Month},
			{Label: utils.FormatCompact(m.Impressions)},
			growth,
		}})
	}

	return table
}

func trafficTable(ds *domain.Dataset) domain.TableView {
	table := domain.TableView{
		Title:   ds.Cards.Traffic.Title,
		Badge:   ds.Cards.Traffic.Badge,
		Headers: []string{"Month", "Clicks", "CTR"},
	}

	for i, m := range ds.Months {
		table.Rows = append(table.Rows, domain.TableRow{Cells: []domain.TableCell{
			{Label: m.Month},
			{Label: utils.FormatThousandsK(m.Clicks)},
			{Label: labelOrDash(utils.RateLabel(m.Clicks, m.Impressions, ctrPlaces)), Color: firstRowColor(i, "gold")},
		}})
	}

	return table
}

func mqlTable(ds *domain.Dataset) domain.TableView {
	table := domain.TableView{
		Title:   ds.Cards.MQLs.Title,
		Badge:   ds.Cards.MQLs.Badge,
		Headers: []string{"Month", "MQLs", "Conversion Rate"},
	}

	for i, m := range ds.Months {
		table.Rows = append(table.Rows, domain.TableRow{Cells: []domain.TableCell{
			{Label: m.Month},
			{Label: utils.FormatThousands(m.MQLs)},
			{Label: labelOrDash(utils.RateLabel(m.MQLs, m.Clicks, conversionPlaces)), Color: firstRowColor(i, "green")},
		}})
	}

	return table
}

// firstRowColor destaca a linha de base; as demais usam azul
func firstRowColor(row int, token string) string {
	if row == 0 {
		return domain.Palette[token]
	}
	return domain.Palette["blue"]
}

func labelOrDash(label string) string {
	if label == "" {
		return noGrowth
	}
	return label
}

func rankingView(ds *domain.Dataset, opts animation.Options) domain.RankingView {
	view := domain.RankingView{
		Title:      ds.Cards.Rankings.Title,
		Badge:      ds.Cards.Rankings.Badge,
		Total:      ds.TotalKeywords,
		TotalLabel: utils.FormatThousands(ds.TotalKeywords),
	}

	sum := decimal.Zero
	for i, b := range ds.Rankings {
		pct := utils.PercentOf(b.Count, ds.TotalKeywords, percentPlaces)
		sum = sum.Add(decimal.NewFromFloat(pct))

		bar := animation.NewBar(b.Label, b.Count, pct, domain.ResolveColor(b.Color), i, nil, opts)

		overlayLabel := ""
		if bar.ShowsOverlay() {
			overlayLabel = utils.FormatThousands(b.Count)
		}

		view.Bars = append(view.Bars, domain.BarView{
			WidgetID:     utils.GenerateWidgetID("bar"),
			Label:        bar.Label,
			Value:        bar.Value,
			Percent:      bar.Percent,
			PercentLabel: bar.PercentLabel(),
			Color:        bar.Color,
			Index:        bar.Index,
			DelayMS:      bar.Delay().Milliseconds(),
			DurationMS:   bar.Duration().Milliseconds(),
			Width:        bar.Width(),
			Overlay:      bar.Overlay(),
			OverlayLabel: overlayLabel,
		})
	}

	view.PercentSum = sum.InexactFloat64()
	view.Discrepancy = ds.TotalKeywords - ds.RankingSum()

	return view
}

func funnelView(ds *domain.Dataset) domain.FunnelView {
	months := ds.MonthLabels()
	view := domain.FunnelView{Months: months}

	for _, spec := range ds.Funnel {
		values := ds.MetricValues(spec.Metric)
		stage := domain.FunnelStage{
			Label: spec.Label,
			Sub:   spec.Sub,
			Icon:  spec.Icon,
			Dot:   domain.ResolveColor(spec.Dot),
		}

		for i, v := range values {
			stage.Values = append(stage.Values, domain.FunnelValue{
				Month:     months[i],
				Label:     utils.FormatCompact(v),
				Highlight: i == len(values)-1,
			})
		}

		view.Stages = append(view.Stages, stage)
	}

	return view
}

func authorityCards(metrics []domain.AuthorityMetric) []domain.AuthorityCard {
	cards := make([]domain.AuthorityCard, 0, len(metrics))
	for _, a := range metrics {
		color := domain.Palette["rose"]
		if a.Positive {
			color = domain.Palette["green"]
		}

		cards = append(cards, domain.AuthorityCard{
			Value:       a.Value,
			Label:       a.Label,
			Change:      a.Change,
			ChangeColor: color,
		})
	}
	return cards
}

func outlookCards(items []domain.OutlookItem) []domain.OutlookCard {
	cards := make([]domain.OutlookCard, 0, len(items))
	for i, item := range items {
		cards = append(cards, domain.OutlookCard{
			Number:      SectionNumber(i),
			Title:       item.Title,
			Description: item.Description,
		})
	}
	return cards
}

func bottomLine(b domain.BottomLine) domain.BottomLineView {
	lines := make([]string, 0, len(b.Lines))
	for _, line := range b.Lines {
		lines = append(lines, htmlsanitize.Sanitize(line))
	}

	return domain.BottomLineView{
		Eyebrow:   b.Eyebrow,
		LinesHTML: lines,
		Text:      b.Text,
	}
}
