// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// TrendDirection indica a direção da tendência exibida em um KPI
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// InsightVariant define o estilo visual de uma caixa de insight
type InsightVariant string

const (
	InsightGold  InsightVariant = "gold"
	InsightGreen InsightVariant = "green"
)

// Métricas conhecidas pelo funil
const (
	MetricImpressions = "impressions"
	MetricClicks      = "clicks"
	MetricMQLs        = "mqls"
)

// Dataset é o objeto declarativo que alimenta o relatório inteiro.
// Os meses aparecem em ordem cronológica.
type Dataset struct {
	Brand         string            `mapstructure:"brand" json:"brand"`
	Domain        string            `mapstructure:"domain" json:"domain"`
	Title         string            `mapstructure:"title" json:"title"`
	TitleAccent   string            `mapstructure:"title_accent" json:"title_accent"`
	Subtitle      string            `mapstructure:"subtitle" json:"subtitle"`
	PeriodLabel   string            `mapstructure:"period_label" json:"period_label"`
	Generated     string            `mapstructure:"generated" json:"generated"` // Formato yyyy-mm-dd
	Months        []MonthlyMetrics  `mapstructure:"months" json:"months"`
	KPIs          []KPISummary      `mapstructure:"kpis" json:"kpis"`
	Rankings      []RankingBucket   `mapstructure:"rankings" json:"rankings"`
	TotalKeywords int64             `mapstructure:"total_keywords" json:"total_keywords"`
	Cards         CardTitles        `mapstructure:"cards" json:"cards"`
	Sections      []Section         `mapstructure:"sections" json:"sections"`
	Funnel        []FunnelStageSpec `mapstructure:"funnel" json:"funnel"`
	Authority     []AuthorityMetric `mapstructure:"authority" json:"authority"`
	Outlook       []OutlookItem     `mapstructure:"outlook" json:"outlook"`
	BottomLine    BottomLine        `mapstructure:"bottom_line" json:"bottom_line"`
	Footer        string            `mapstructure:"footer" json:"footer"`
}

// MonthlyMetrics agrupa as métricas orgânicas de um mês
type MonthlyMetrics struct {
	Month       string `mapstructure:"month" json:"month"`
	Impressions int64  `mapstructure:"impressions" json:"impressions"`
	Clicks      int64  `mapstructure:"clicks" json:"clicks"`
	MQLs        int64  `mapstructure:"mqls" json:"mqls"`
}

// KPISummary representa um cartão da faixa de KPIs
type KPISummary struct {
	Label     string         `mapstructure:"label" json:"label"`
	Value     int64          `mapstructure:"value" json:"value"`
	TrendText string         `mapstructure:"trend_text" json:"trend_text"`
	Trend     TrendDirection `mapstructure:"trend" json:"trend"`
	Accent    string         `mapstructure:"accent" json:"accent"`
}

// RankingBucket representa uma faixa de posições de palavras-chave
type RankingBucket struct {
	Label string `mapstructure:"label" json:"label"`
	Count int64  `mapstructure:"count" json:"count"`
	Color string `mapstructure:"color" json:"color"`
}

// Card é o título e o selo de um cartão do relatório
type Card struct {
	Title string `mapstructure:"title" json:"title"`
	Badge string `mapstructure:"badge" json:"badge"`
}

type CardTitles struct {
	Impressions Card `mapstructure:"impressions" json:"impressions"`
	Rankings    Card `mapstructure:"rankings" json:"rankings"`
	Traffic     Card `mapstructure:"traffic" json:"traffic"`
	MQLs        Card `mapstructure:"mqls" json:"mqls"`
}

// Section descreve uma seção numerada do relatório e seu item de navegação.
// Intro e Insight.Text aceitam rich text (strong, em, br).
type Section struct {
	Nav     string   `mapstructure:"nav" json:"nav"`
	Title   string   `mapstructure:"title" json:"title"`
	Intro   string   `mapstructure:"intro" json:"intro"`
	Insight *Insight `mapstructure:"insight" json:"insight,omitempty"`
}

type Insight struct {
	Variant InsightVariant `mapstructure:"variant" json:"variant"`
	Label   string         `mapstructure:"label" json:"label"`
	Text    string         `mapstructure:"text" json:"text"`
}

// FunnelStageSpec descreve um estágio do funil e a métrica mensal que ele exibe
type FunnelStageSpec struct {
	Metric string `mapstructure:"metric" json:"metric"`
	Label  string `mapstructure:"label" json:"label"`
	Sub    string `mapstructure:"sub" json:"sub"`
	Icon   string `mapstructure:"icon" json:"icon"`
	Dot    string `mapstructure:"dot" json:"dot"`
}

type AuthorityMetric struct {
	Value    string `mapstructure:"value" json:"value"`
	Label    string `mapstructure:"label" json:"label"`
	Change   string `mapstructure:"change" json:"change"`
	Positive bool   `mapstructure:"positive" json:"positive"`
}

type OutlookItem struct {
	Title       string `mapstructure:"title" json:"title"`
	Description string `mapstructure:"description" json:"description"`
}

// BottomLine é o bloco escuro de fechamento
type BottomLine struct {
	Eyebrow string   `mapstructure:"eyebrow" json:"eyebrow"`
	Lines   []string `mapstructure:"lines" json:"lines"`
	Text    string   `mapstructure:"text" json:"text"`
}

// MonthLabels retorna os rótulos dos meses na ordem do dataset
func (d *Dataset) MonthLabels() []string {
	labels := make([]string, 0, len(d.Months))
	for _, m := range d.Months {
		labels = append(labels, m.Month)
	}
	return labels
}

// MetricValues retorna a série mensal de uma métrica conhecida
func (d *Dataset) MetricValues(metric string) []int64 {
	values := make([]int64, 0, len(d.Months))
	for _, m := range d.Months {
		switch metric {
		case MetricImpressions:
			values = append(values, m.Impressions)
		case MetricClicks:
			values = append(values, m.Clicks)
		case MetricMQLs:
			values = append(values, m.MQLs)
		default:
			return nil
		}
	}
	return values
}

// RankingSum soma as contagens de todas as faixas de ranking
func (d *Dataset) RankingSum() int64 {
	var sum int64
	for _, b := range d.Rankings {
		sum += b.Count
	}
	return sum
}
