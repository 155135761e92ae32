package dataset

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/organic-report/internal/domain"
	"github.com/vfg2006/organic-report/pkg/utils"
)

var (
	ErrEmptyDataset = errors.New("dataset sem meses")
	ErrInvalid      = errors.New("dataset inválido")
)

// Discrepancy compara a soma das faixas de ranking com o total declarado
type Discrepancy struct {
	Sum   int64
	Total int64
}

func (d Discrepancy) Diff() int64 {
	return d.Total - d.Sum
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("soma das faixas %d, total declarado %d (diferença %d)", d.Sum, d.Total, d.Diff())
}

// RankingDiscrepancy retorna a diferença entre soma e total, se houver.
// A diferença é tolerada na exibição: as porcentagens usam sempre o total declarado.
func RankingDiscrepancy(ds *domain.Dataset) (Discrepancy, bool) {
	d := Discrepancy{Sum: ds.RankingSum(), Total: ds.TotalKeywords}
	return d, d.Sum != d.Total
}

// Validate faz as verificações estruturais do dataset
func Validate(ds *domain.Dataset) error {
	if ds == nil || len(ds.Months) == 0 {
		return ErrEmptyDataset
	}

	seen := make(map[string]bool, len(ds.Months))
	for i, m := range ds.Months {
		if m.Month == "" {
			return errors.Wrapf(ErrInvalid, "mês %d sem rótulo", i)
		}
		if seen[m.Month] {
			return errors.Wrapf(ErrInvalid, "mês %s repetido", m.Month)
		}
		seen[m.Month] = true

		if m.Impressions < 0 || m.Clicks < 0 || m.MQLs < 0 {
			return errors.Wrapf(ErrInvalid, "métrica negativa em %s", m.Month)
		}
	}

	if ds.TotalKeywords <= 0 {
		return errors.Wrap(ErrInvalid, "total_keywords precisa ser positivo")
	}

	for _, b := range ds.Rankings {
		if b.Count < 0 {
			return errors.Wrapf(ErrInvalid, "faixa %s com contagem negativa", b.Label)
		}
	}

	for _, k := range ds.KPIs {
		if k.Value < 0 {
			return errors.Wrapf(ErrInvalid, "KPI %s com valor negativo", k.Label)
		}
		switch k.Trend {
		case domain.TrendUp, domain.TrendDown, domain.TrendNeutral:
		default:
			return errors.Wrapf(ErrInvalid, "KPI %s com tendência desconhecida %q", k.Label, k.Trend)
		}
	}

	for _, s := range ds.Sections {
		if s.Nav == "" || s.Title == "" {
			return errors.Wrap(ErrInvalid, "seção sem navegação ou título")
		}
		if s.Insight != nil && s.Insight.Variant != domain.InsightGold && s.Insight.Variant != domain.InsightGreen {
			return errors.Wrapf(ErrInvalid, "seção %s com insight %q", s.Nav, s.Insight.Variant)
		}
	}

	for _, f := range ds.Funnel {
		if ds.MetricValues(f.Metric) == nil {
			return errors.Wrapf(ErrInvalid, "funil com métrica desconhecida %q", f.Metric)
		}
	}

	if ds.Generated != "" {
		if _, err := utils.ParseDate(ds.Generated); err != nil {
			return errors.Wrapf(ErrInvalid, "data de geração %q", ds.Generated)
		}
	}

	return nil
}
