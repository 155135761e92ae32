package utils

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Million  = 1_000_000
	Thousand = 1_000

	// minusSign é o sinal usado nos rótulos de variação negativa
	minusSign = "−"
)

var (
	decMillion  = decimal.NewFromInt(Million)
	decThousand = decimal.NewFromInt(Thousand)
	decHundred  = decimal.NewFromInt(100)

	printer = message.NewPrinter(language.English)
)

// FormatMillions formata um valor como X.XXM
func FormatMillions(v int64) string {
	return decimal.NewFromInt(v).Div(decMillion).StringFixed(2) + "M"
}

// FormatThousandsK formata um valor como X.XK
func FormatThousandsK(v int64) string {
	return decimal.NewFromInt(v).Div(decThousand).StringFixed(1) + "K"
}

// FormatThousands formata um valor com separador de milhar (8,456)
func FormatThousands(v int64) string {
	return printer.Sprintf("%d", v)
}

// FormatCompactFor formata v usando a unidade escolhida a partir de target.
// Um contador animado mantém a unidade do valor final durante toda a animação.
func FormatCompactFor(target, v int64) string {
	switch {
	case target >= Million:
		return FormatMillions(v)
	case target >= Thousand:
		return FormatThousandsK(v)
	default:
		return FormatThousands(v)
	}
}

// FormatCompact formata um valor escolhendo a unidade pelo próprio valor
func FormatCompact(v int64) string {
	return FormatCompactFor(v, v)
}

// PercentOf calcula count/total*100 arredondado para places casas decimais.
// Total zero resulta em zero.
func PercentOf(count, total int64, places int32) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(count).
		Mul(decHundred).
		Div(decimal.NewFromInt(total)).
		Round(places).
		InexactFloat64()
}

// FormatPercent formata uma porcentagem sem zeros à direita (39.3%, 1%)
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// RateLabel formata num/den como porcentagem com places casas fixas (1.7%, 0.58%)
func RateLabel(num, den int64, places int32) string {
	if den == 0 {
		return ""
	}

	return decimal.NewFromInt(num).
		Mul(decHundred).
		Div(decimal.NewFromInt(den)).
		StringFixed(places) + "%"
}

// GrowthLabel formata a variação percentual entre prev e curr (+19%, −4%).
// Retorna "" quando não há base de comparação.
func GrowthLabel(prev, curr int64, places int32) string {
	if prev == 0 {
		return ""
	}

	change := decimal.NewFromInt(curr - prev).
		Mul(decHundred).
		Div(decimal.NewFromInt(prev)).
		Round(places)

	switch change.Sign() {
	case 1:
		return "+" + change.StringFixed(places) + "%"
	case -1:
		return minusSign + change.Abs().StringFixed(places) + "%"
	default:
		return change.StringFixed(places) + "%"
	}
}
