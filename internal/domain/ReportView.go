package domain

// ReportView é o relatório pronto para exibição, montado a partir de um Dataset
type ReportView struct {
	Brand       string          `json:"brand"`
	Domain      string          `json:"domain"`
	Title       string          `json:"title"`
	TitleAccent string          `json:"title_accent"`
	Subtitle    string          `json:"subtitle"`
	Badges      []HeroBadge     `json:"badges"`
	Nav         []NavItem       `json:"nav"`
	KPIs        []KPICard       `json:"kpis"`
	Sections    []SectionView   `json:"sections"`
	Impressions TableView       `json:"impressions"`
	Traffic     TableView       `json:"traffic"`
	MQLs        TableView       `json:"mqls"`
	Rankings    RankingView     `json:"rankings"`
	Funnel      FunnelView      `json:"funnel"`
	Authority   []AuthorityCard `json:"authority"`
	Outlook     []OutlookCard   `json:"outlook"`
	BottomLine  BottomLineView  `json:"bottom_line"`
	Footer      string          `json:"footer"`
}

type HeroBadge struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type NavItem struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
	Active bool   `json:"active"`
}

// KPICard é um cartão da faixa de KPIs com seu contador animado.
// Display é o estado inicial (oculto) e Final o valor após a animação.
type KPICard struct {
	WidgetID   string         `json:"widget_id"`
	Label      string         `json:"label"`
	Value      int64          `json:"value"`
	Display    string         `json:"display"`
	Final      string         `json:"final"`
	DurationMS int64          `json:"duration_ms"`
	TrendText  string         `json:"trend_text"`
	Trend      TrendDirection `json:"trend"`
	TrendColor string         `json:"trend_color"`
	TrendBg    string         `json:"trend_bg"`
	Accent     string         `json:"accent"`
}

// SectionView é o cabeçalho de uma seção numerada; os campos HTML já foram sanitizados
type SectionView struct {
	Number    string       `json:"number"`
	Anchor    string       `json:"anchor"`
	Title     string       `json:"title"`
	IntroHTML string       `json:"intro_html"`
	Insight   *InsightView `json:"insight,omitempty"`
}

type InsightView struct {
	Variant  InsightVariant `json:"variant"`
	Label    string         `json:"label"`
	TextHTML string         `json:"text_html"`
}

type TableView struct {
	Title   string     `json:"title"`
	Badge   string     `json:"badge"`
	Headers []string   `json:"headers"`
	Rows    []TableRow `json:"rows"`
}

type TableRow struct {
	Cells []TableCell `json:"cells"`
}

// TableCell é uma célula de tabela; Color vazio usa a cor padrão da coluna
type TableCell struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// RankingView é a distribuição de ranking de palavras-chave
type RankingView struct {
	Title       string    `json:"title"`
	Badge       string    `json:"badge"`
	Bars        []BarView `json:"bars"`
	Total       int64     `json:"total"`
	TotalLabel  string    `json:"total_label"`
	PercentSum  float64   `json:"percent_sum"`
	Discrepancy int64     `json:"discrepancy"`
}

// BarView é uma barra animada no estado inicial (oculta): Width é 0 e Overlay
// vazio. OverlayLabel é o valor que aparece dentro da barra depois da
// revelação ("" quando omitido).
type BarView struct {
	WidgetID     string  `json:"widget_id"`
	Label        string  `json:"label"`
	Value        int64   `json:"value"`
	Percent      float64 `json:"percent"`
	PercentLabel string  `json:"percent_label"`
	Color        string  `json:"color"`
	Index        int     `json:"index"`
	DelayMS      int64   `json:"delay_ms"`
	DurationMS   int64   `json:"duration_ms"`
	Width        float64 `json:"width"`
	Overlay      string  `json:"overlay"`
	OverlayLabel string  `json:"overlay_label"`
}

type FunnelView struct {
	Months []string      `json:"months"`
	Stages []FunnelStage `json:"stages"`
}

type FunnelStage struct {
	Label  string        `json:"label"`
	Sub    string        `json:"sub"`
	Icon   string        `json:"icon"`
	Dot    string        `json:"dot"`
	Values []FunnelValue `json:"values"`
}

type FunnelValue struct {
	Month     string `json:"month"`
	Label     string `json:"label"`
	Highlight bool   `json:"highlight"`
}

type AuthorityCard struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Change      string `json:"change"`
	ChangeColor string `json:"change_color"`
}

type OutlookCard struct {
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BottomLineView struct {
	Eyebrow   string   `json:"eyebrow"`
	LinesHTML []string `json:"lines_html"`
	Text      string   `json:"text"`
}
