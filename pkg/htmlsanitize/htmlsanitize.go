// Package htmlsanitize limpa o rich text dos textos do relatório com bluemonday,
// mantendo apenas a formatação inline usada nas seções e insights.
package htmlsanitize

import (
	"html"
	"html/template"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
	strict     = bluemonday.StrictPolicy()

	classPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*( [a-z][a-z0-9-]*)*$`)
	brPattern    = regexp.MustCompile(`(?i)<br\s*/?>`)
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.NewPolicy()
		policy.AllowElements("strong", "em", "b", "i", "br", "span")
		policy.AllowAttrs("class").Matching(classPattern).OnElements("strong", "em", "span")
	})
	return policy
}

// Sanitize remove tudo que não for formatação inline permitida
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// SanitizeToHTML retorna o texto limpo pronto para ser usado em templates
func SanitizeToHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}

// PlainText remove todas as tags, para saídas que não entendem HTML.
// <br> vira espaço para as palavras não grudarem.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	s = brPattern.ReplaceAllString(s, " ")
	return html.UnescapeString(strict.Sanitize(s))
}
