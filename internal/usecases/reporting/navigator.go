package reporting

import (
	"fmt"

	"github.com/vfg2006/organic-report/internal/domain"
	"github.com/vfg2006/organic-report/pkg/apiErrors"
)

// Navigator guarda a seção ativa da navegação. É apenas destaque visual.
type Navigator struct {
	labels []string
	active int
}

func NewNavigator(labels []string) *Navigator {
	return &Navigator{labels: labels}
}

// Select muda a seção ativa. Fora do intervalo a seção ativa não muda.
// Sem seções a navegação fica vazia e só o índice 0 é aceito.
func (n *Navigator) Select(index int) error {
	if len(n.labels) == 0 && index == 0 {
		n.active = 0
		return nil
	}
	if index < 0 || index >= len(n.labels) {
		return NewReportError(ErrSectionOutOfRange, apiErrors.ErrSectionOutOfRange,
			fmt.Sprintf("index %d, available 0-%d", index, len(n.labels)-1))
	}

	n.active = index
	return nil
}

func (n *Navigator) Active() int {
	return n.active
}

func (n *Navigator) Len() int {
	return len(n.labels)
}

func (n *Navigator) Items() []domain.NavItem {
	items := make([]domain.NavItem, 0, len(n.labels))
	for i, label := range n.labels {
		items = append(items, domain.NavItem{
			Index:  i,
			Label:  label,
			Anchor: SectionAnchor(i),
			Active: i == n.active,
		})
	}
	return items
}

// SectionNumber é o número exibido da seção (01, 02, ...)
func SectionNumber(index int) string {
	return fmt.Sprintf("%02d", index+1)
}

func SectionAnchor(index int) string {
	return "section-" + SectionNumber(index)
}
