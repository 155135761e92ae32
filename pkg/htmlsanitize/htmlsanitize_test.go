package htmlsanitize

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Texto vazio", "", ""},
		{"Mantém strong", "Impressions surged <strong>+84%</strong>", "Impressions surged <strong>+84%</strong>"},
		{"Mantém em com classe", `Discoverability is <em class="accent-gold">scaling</em>.`, `Discoverability is <em class="accent-gold">scaling</em>.`},
		{"Remove script", `ok<script>alert(1)</script>`, "ok"},
		{"Remove atributo de estilo", `<strong style="color:red">59</strong>`, "<strong>59</strong>"},
		{"Remove link mantendo o texto", `<a href="https://example.com">site</a>`, "site"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeToHTML(t *testing.T) {
	assert.Equal(t, template.HTML("a<br/>b"), SanitizeToHTML("a<br/>b"))
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Texto vazio", "", ""},
		{"Remove formatação", "Impressions surged <strong>+84%</strong>", "Impressions surged +84%"},
		{"Quebra de linha vira espaço", "first<br>second", "first second"},
		{"Preserva entidades", "Q&amp;A <em>now</em>", "Q&A now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.input))
		})
	}
}
