// Package preview desenha o relatório no terminal com lipgloss. Os contadores e
// as barras são os mesmos widgets da página, revelados conforme a rolagem
// automática passa por eles.
package preview

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/animation/viewport"
	"github.com/vfg2006/organic-report/internal/domain"
	"github.com/vfg2006/organic-report/pkg/htmlsanitize"
)

const clearScreen = "\x1b[H\x1b[2J"

type Config struct {
	Width          int
	Rows           int
	ScrollStep     int
	ScrollInterval time.Duration
	FrameInterval  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Width < 40 {
		c.Width = 72
	}
	if c.Rows <= 0 {
		c.Rows = 18
	}
	// um passo maior que a tela pularia linhas sem revelá-las
	if c.ScrollStep <= 0 || c.ScrollStep > c.Rows {
		c.ScrollStep = 1
	}
	if c.ScrollInterval <= 0 {
		c.ScrollInterval = 120 * time.Millisecond
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = animation.DefaultFrameInterval
	}
	return c
}

// row é uma linha da página; também é o elemento observado pela viewport
type row struct {
	id     string
	render func(width int) string
}

func (r *row) ID() string {
	return r.id
}

type Preview struct {
	cfg      Config
	styles   styles
	loop     *animation.Loop
	viewport *viewport.Viewport

	rows     []*row
	counters []*animation.Counter
	bars     []*animation.Bar
	mounts   []func()
}

func New(report *domain.ReportView, opts animation.Options, cfg Config) *Preview {
	cfg = cfg.withDefaults()

	p := &Preview{
		cfg:      cfg,
		styles:   newStyles(),
		loop:     animation.NewLoop(cfg.FrameInterval),
		viewport: viewport.New(float64(cfg.Rows)),
	}
	p.build(report, opts.WithDefaults())

	// todas as linhas são posicionadas antes de montar os widgets
	for i, r := range p.rows {
		p.viewport.Place(r, float64(i), 1)
	}
	for _, mount := range p.mounts {
		mount()
	}

	return p
}

func (p *Preview) add(render func(width int) string) *row {
	r := &row{id: fmt.Sprintf("row-%03d", len(p.rows)), render: render}
	p.rows = append(p.rows, r)
	return r
}

func (p *Preview) blank() {
	p.add(func(int) string { return "" })
}

// text quebra s na largura da página, uma linha por row
func (p *Preview) text(s string, style lipgloss.Style) {
	wrapped := lipgloss.NewStyle().Width(p.cfg.Width).Render(s)
	for _, line := range strings.Split(wrapped, "\n") {
		line = strings.TrimRight(line, " ")
		p.add(func(int) string { return style.Render(line) })
	}
}

func (p *Preview) build(report *domain.ReportView, opts animation.Options) {
	s := p.styles

	p.text(report.Brand, s.brand)
	p.add(func(int) string {
		return s.title.Render(report.Title) + " " + s.accent.Render(report.TitleAccent)
	})
	p.text(report.Subtitle, s.muted)

	badges := make([]string, 0, len(report.Badges))
	for _, b := range report.Badges {
		badges = append(badges, b.Key+": "+b.Value)
	}
	p.text(strings.Join(badges, "  ·  "), s.muted)
	p.blank()

	for _, kpi := range report.KPIs {
		p.kpiRow(kpi, opts)
	}

	for i, section := range report.Sections {
		p.blank()
		p.add(func(int) string {
			return s.number.Render(section.Number) + "  " + s.heading.Render(section.Title)
		})
		p.text(htmlsanitize.PlainText(section.IntroHTML), s.body)

		switch i {
		case 1:
			p.table(report.Impressions)
			p.rankings(report.Rankings, opts)
		case 2:
			p.table(report.Traffic)
		case 3:
			p.table(report.MQLs)
		case 4:
			p.funnel(report.Funnel)
			p.authority(report.Authority)
		case 5:
			p.outlook(report.Outlook)
		}

		if section.Insight != nil {
			style := s.insightGold
			if section.Insight.Variant == domain.InsightGreen {
				style = s.insightGreen
			}
			p.text(section.Insight.Label+" "+htmlsanitize.PlainText(section.Insight.TextHTML), style)
		}
	}

	p.blank()
	p.text(report.BottomLine.Eyebrow, s.number)
	for _, line := range report.BottomLine.LinesHTML {
		p.text(htmlsanitize.PlainText(line), s.heading)
	}
	p.text(report.BottomLine.Text, s.body)
	p.blank()
	p.text(report.Footer, s.muted)
}

func (p *Preview) kpiRow(kpi domain.KPICard, opts animation.Options) {
	s := p.styles
	counter := animation.NewCounter(kpi.Value, p.loop, opts)
	p.counters = append(p.counters, counter)

	r := p.add(func(int) string {
		label := s.label.Width(22).Render(kpi.Label)
		value := s.value.Width(10).Render(counter.Display())
		trend := lipgloss.NewStyle().Foreground(lipgloss.Color(kpi.TrendColor)).Render(kpi.TrendText)
		return label + value + trend
	})
	p.mounts = append(p.mounts, func() { counter.Mount(p.viewport, r) })
}

func (p *Preview) table(table domain.TableView) {
	s := p.styles
	if len(table.Headers) == 0 {
		return
	}
	colWidth := p.cfg.Width / len(table.Headers)

	p.blank()
	p.add(func(int) string { return s.heading.Render(table.Title) + "  " + s.muted.Render(table.Badge) })

	header := make([]string, 0, len(table.Headers))
	for _, h := range table.Headers {
		header = append(header, s.label.Width(colWidth).Render(h))
	}
	headerLine := lipgloss.JoinHorizontal(lipgloss.Top, header...)
	p.add(func(int) string { return headerLine })

	for _, tr := range table.Rows {
		cells := make([]string, 0, len(tr.Cells))
		for _, cell := range tr.Cells {
			style := s.body.Width(colWidth)
			if cell.Color != "" {
				style = style.Foreground(lipgloss.Color(cell.Color)).Bold(true)
			}
			cells = append(cells, style.Render(cell.Label))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		p.add(func(int) string { return line })
	}
}

func (p *Preview) rankings(ranking domain.RankingView, opts animation.Options) {
	s := p.styles

	p.blank()
	p.add(func(int) string { return s.heading.Render(ranking.Title) + "  " + s.muted.Render(ranking.Badge) })

	for _, view := range ranking.Bars {
		bar := animation.NewBar(view.Label, view.Value, view.Percent, view.Color, view.Index, p.loop, opts)
		p.bars = append(p.bars, bar)

		r := p.add(func(width int) string { return p.renderBar(bar, width) })
		p.mounts = append(p.mounts, func() { bar.Mount(p.viewport, r) })
	}

	p.add(func(int) string {
		return s.label.Width(p.cfg.Width - 10).Render("Total Tracked") + s.value.Render(ranking.TotalLabel)
	})
}

func (p *Preview) renderBar(bar *animation.Bar, width int) string {
	s := p.styles
	track := width - 18
	if track < 10 {
		track = 10
	}

	filled := int(math.Round(bar.Width() / 100 * float64(track)))
	if filled > track {
		filled = track
	}

	fill := strings.Repeat(" ", filled)
	if overlay := bar.Overlay(); overlay != "" && len(overlay)+2 <= filled {
		fill = " " + overlay + strings.Repeat(" ", filled-len(overlay)-1)
	}

	label := s.label.Width(9).Align(lipgloss.Right).Render(bar.Label) + " "
	filledPart := lipgloss.NewStyle().Background(lipgloss.Color(bar.Color)).Foreground(lipgloss.Color("#ffffff")).Render(fill)
	rest := s.track.Render(strings.Repeat(" ", track-filled))
	return label + filledPart + rest + " " + s.value.Render(bar.PercentLabel())
}

func (p *Preview) funnel(funnel domain.FunnelView) {
	s := p.styles
	p.blank()

	for i, stage := range funnel.Stages {
		values := make([]string, 0, len(stage.Values))
		for _, v := range stage.Values {
			style := s.body
			if v.Highlight {
				style = s.accent
			}
			values = append(values, style.Render(v.Month+" "+v.Label))
		}
		line := s.label.Width(24).Render(stage.Icon+" "+stage.Label) + strings.Join(values, "   ")
		p.add(func(int) string { return line })

		if i < len(funnel.Stages)-1 {
			p.add(func(int) string { return s.muted.Render("   ↓") })
		}
	}
}

func (p *Preview) authority(cards []domain.AuthorityCard) {
	s := p.styles
	p.blank()

	for _, card := range cards {
		change := lipgloss.NewStyle().Foreground(lipgloss.Color(card.ChangeColor)).Render(card.Change)
		line := s.label.Width(24).Render(card.Label) + s.value.Width(10).Render(card.Value) + change
		p.add(func(int) string { return line })
	}
}

func (p *Preview) outlook(cards []domain.OutlookCard) {
	s := p.styles

	for _, card := range cards {
		p.blank()
		p.add(func(int) string { return s.accent.Render(card.Number) + "  " + s.heading.Render(card.Title) })
		p.text(card.Description, s.body)
	}
}

// Tick executa um quadro de animação
func (p *Preview) Tick(now time.Time) {
	p.loop.Step(now)
}

// Scroll rola a página um passo, até o fim do conteúdo
func (p *Preview) Scroll() {
	if p.viewport.AtBottom() {
		return
	}
	p.viewport.ScrollBy(float64(p.cfg.ScrollStep))
}

// Done indica que a rolagem terminou e todos os widgets chegaram ao valor final
func (p *Preview) Done() bool {
	if !p.viewport.AtBottom() {
		return false
	}
	for _, c := range p.counters {
		if !c.Done() {
			return false
		}
	}
	for _, b := range p.bars {
		if !b.Done() {
			return false
		}
	}
	return true
}

// View desenha as linhas visíveis dentro de uma moldura
func (p *Preview) View() string {
	start := int(p.viewport.Offset())
	end := start + p.cfg.Rows
	if end > len(p.rows) {
		end = len(p.rows)
	}

	lines := make([]string, 0, p.cfg.Rows)
	for _, r := range p.rows[start:end] {
		lines = append(lines, r.render(p.cfg.Width))
	}

	return p.styles.frame.Width(p.cfg.Width + 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Close desmonta os widgets e cancela os quadros pendentes
func (p *Preview) Close() {
	for _, c := range p.counters {
		c.Unmount()
	}
	for _, b := range p.bars {
		b.Unmount()
	}
}

// Run anima e rola a página em w até terminar ou até o contexto ser cancelado
func (p *Preview) Run(ctx context.Context, w io.Writer) error {
	defer p.Close()

	frames := time.NewTicker(p.cfg.FrameInterval)
	defer frames.Stop()
	scroll := time.NewTicker(p.cfg.ScrollInterval)
	defer scroll.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-scroll.C:
			p.Scroll()
		case now := <-frames.C:
			p.Tick(now)
			if _, err := io.WriteString(w, clearScreen+p.View()+"\n"); err != nil {
				return err
			}
			if p.Done() {
				return nil
			}
		}
	}
}
