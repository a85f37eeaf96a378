package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected string
	}{
		{name: "known term", term: "abate", expected: "Azalmak, dinmek"},
		{name: "case insensitive", term: "Ephemeral", expected: "Geçici, kısa ömürlü"},
		{name: "unknown term", term: "zephyr", expected: `[Türkçe: "zephyr"]`},
		{name: "unknown keeps original casing", term: "Zephyr", expected: `[Türkçe: "Zephyr"]`},
		{name: "unknown term is not escaped", term: `o"reilly`, expected: `[Türkçe: "o"reilly"]`},
		{name: "unknown accented term", term: "résumé", expected: `[Türkçe: "résumé"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Translate(tt.term))
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	assert.Equal(t, Translate("obscure"), Translate("obscure"))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("indicate"))
	assert.True(t, Known("DILIGENT"))
	assert.False(t, Known("zephyr"))
}

func TestTableCoversFallbackWords(t *testing.T) {
	for _, term := range []string{"abate", "benevolent", "candid", "diligent", "ephemeral"} {
		assert.True(t, Known(term), term)
	}
}
