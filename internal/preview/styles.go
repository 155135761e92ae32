package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vfg2006/organic-report/internal/domain"
)

type styles struct {
	frame        lipgloss.Style
	brand        lipgloss.Style
	title        lipgloss.Style
	accent       lipgloss.Style
	heading      lipgloss.Style
	number       lipgloss.Style
	label        lipgloss.Style
	value        lipgloss.Style
	body         lipgloss.Style
	muted        lipgloss.Style
	track        lipgloss.Style
	insightGold  lipgloss.Style
	insightGreen lipgloss.Style
}

func color(token string) lipgloss.Color {
	return lipgloss.Color(domain.ResolveColor(token))
}

func newStyles() styles {
	return styles{
		frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color("gold")).
			Padding(0, 1),
		brand:        lipgloss.NewStyle().Bold(true).Foreground(color("warm_brown")),
		title:        lipgloss.NewStyle().Bold(true).Foreground(color("warm_brown")),
		accent:       lipgloss.NewStyle().Italic(true).Bold(true).Foreground(color("gold")),
		heading:      lipgloss.NewStyle().Bold(true).Foreground(color("warm_brown_mid")),
		number:       lipgloss.NewStyle().Foreground(color("text_muted")),
		label:        lipgloss.NewStyle().Foreground(color("text_sec")),
		value:        lipgloss.NewStyle().Bold(true).Foreground(color("warm_brown")),
		body:         lipgloss.NewStyle().Foreground(color("warm_brown_mid")),
		muted:        lipgloss.NewStyle().Foreground(color("text_muted")),
		track:        lipgloss.NewStyle().Background(color("cream_dark")),
		insightGold:  lipgloss.NewStyle().Foreground(color("gold")),
		insightGreen: lipgloss.NewStyle().Foreground(color("green")),
	}
}
