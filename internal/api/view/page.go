// Package view renderiza a página HTML do relatório
package view

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/organic-report/internal/domain"
)

var funcs = template.FuncMap{
	// conteúdo já sanitizado em reporting
	"safe":    func(s string) template.HTML { return template.HTML(s) },
	// cores vêm da paleta ou do dataset
	"css":     func(s string) template.CSS { return template.CSS(s) },
	"percent": func(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) },
	"last":    func(i, n int) bool { return i == n-1 },
}

var pageTemplate = template.Must(template.New("report").Funcs(funcs).Parse(pageHTML))

// PageData é o que a página precisa além do relatório
type PageData struct {
	Report            *domain.ReportView
	RevealThreshold   float64
	OverlayMinPercent float64
	Palette           map[string]string
}

func NewPageData(report *domain.ReportView, revealThreshold, overlayMinPercent float64) PageData {
	return PageData{
		Report:            report,
		RevealThreshold:   revealThreshold,
		OverlayMinPercent: overlayMinPercent,
		Palette:           domain.Palette,
	}
}

// Render escreve a página completa. A renderização acontece em memória para
// que um erro no template não deixe uma resposta pela metade.
func Render(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return errors.Wrap(err, "renderizando página do relatório")
	}

	_, err := buf.WriteTo(w)
	return err
}
