package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"Mapa com chaves ordenadas", map[string]int{"b": 1, "a": 2}, "{\n\t\"a\": 2,\n\t\"b\": 1\n}"},
		{"Bytes com JSON válido", []byte(`{"loaded":true}`), "{\n\t\"loaded\": true\n}"},
		{"Bytes inválidos voltam como texto", []byte("not json"), "not json"},
		{"Valor não serializável", make(chan int), ""},
		{"Estado do dataset", map[string]any{"loaded": true, "reloads": 1, "loaded_at": time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
			"{\n\t\"loaded\": true,\n\t\"loaded_at\": \"2026-02-03T00:00:00Z\",\n\t\"reloads\": 1\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrettyJson(tt.input))
		})
	}
}

func TestPrettyJson_IndentaSemPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		PrettyJson(map[string]any{"source": "embedded:organic_report.yaml", "loaded": true, "reloads": 1})
	})
}
