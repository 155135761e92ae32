package domain

import "strings"

// Palette contém os design tokens do relatório
var Palette = map[string]string{
	"cream":          "#f4efe9",
	"cream_dark":     "#ebe4db",
	"warm_brown":     "#3a2e2a",
	"warm_brown_mid": "#5c4f47",
	"text_sec":       "#7a6e66",
	"text_muted":     "#a89588",
	"gold":           "#b8956a",
	"gold_light":     "#d4b896",
	"gold_pale":      "rgba(184,149,106,0.13)",
	"green":          "#4a8c6f",
	"green_light":    "#eaf4ef",
	"rose":           "#b86b5a",
	"rose_pale":      "rgba(184,107,90,0.1)",
	"blue":           "#5a8da8",
	"blue_pale":      "rgba(90,141,168,0.1)",
}

// ResolveColor traduz um token para a cor correspondente.
// Cores literais (#hex, rgb, rgba) são devolvidas sem alteração.
func ResolveColor(token string) string {
	if strings.HasPrefix(token, "#") || strings.HasPrefix(token, "rgb") {
		return token
	}
	if color, ok := Palette[token]; ok {
		return color
	}
	return token
}

// TrendColors retorna as cores de texto e fundo do selo de tendência
func TrendColors(trend TrendDirection) (fg string, bg string) {
	switch trend {
	case TrendUp:
		return Palette["green"], Palette["green_light"]
	case TrendDown:
		return Palette["rose"], Palette["rose_pale"]
	default:
		return Palette["blue"], Palette["blue_pale"]
	}
}
