package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKoreanDefault(t *testing.T) {
	tr := NewTranslator("ko")

	assert.Equal(t, "[사진]", tr.T("", "photo", nil))
	assert.Equal(t, "[번역 실패]", tr.T("ko", "translate_failed", nil))
}

func TestEnglishLocale(t *testing.T) {
	tr := NewTranslator("ko")

	assert.Equal(t, "[photo]", tr.T("en", "photo", nil))
}

func TestUnknownLocaleFallsBackToDefault(t *testing.T) {
	tr := NewTranslator("ko")

	// Destination languages without a message file get the default locale.
	assert.Equal(t, "[사진]", tr.T("fr", "photo", nil))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("ko")

	assert.Equal(t, "nope", tr.T("ko", "nope", nil))
}

func TestTemplateData(t *testing.T) {
	tr := NewTranslator("ko")

	out := tr.T("en", "bind_success", map[string]any{"Language": "ja"})
	assert.Contains(t, out, "`ja`")
}
