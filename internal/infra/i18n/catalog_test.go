package i18n

import (
	"testing"

	"tidewise/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := NewCatalog("en")

	tests := []struct {
		name       string
		key        string
		lang       string
		wantLang   string
		wantLocale string
	}{
		{"exact tag", entity.PhraseDangerZone, "te", "te", "te-IN"},
		{"regional tag", entity.PhraseDangerZone, "hi-IN", "hi", "hi-IN"},
		{"accept-language header", entity.PhraseSOSNearby, "fr-FR, ta;q=0.8, en;q=0.5", "ta", "ta-IN"},
		{"unsupported language", entity.PhraseSOSReceived, "fr", "en", "en-IN"},
		{"garbage", entity.PhraseSOSReceived, "!!", "en", "en-IN"},
		{"empty uses default", entity.PhraseDangerZone, "", "en", "en-IN"},
		{"missing translation falls back", entity.PhraseAuthoritySOS, "ur", "en", "en-IN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase, ok := catalog.Lookup(tt.key, tt.lang)
			require.True(t, ok)
			assert.Equal(t, tt.key, phrase.Key)
			assert.Equal(t, tt.wantLang, phrase.Language)
			assert.Equal(t, tt.wantLocale, phrase.Locale)
			assert.Equal(t, phrases[tt.wantLang][tt.key], phrase.Text)
		})
	}
}

func TestCatalog_UnknownKey(t *testing.T) {
	_, ok := NewCatalog("en").Lookup("man_overboard", "en")
	assert.False(t, ok)
}

func TestCatalog_DefaultLanguage(t *testing.T) {
	catalog := NewCatalog("te")

	assert.Equal(t, "te-IN", catalog.Locale(""))
	assert.Equal(t, "hi-IN", catalog.Locale("hi"))

	phrase, ok := catalog.Lookup(entity.PhraseDangerZone, "")
	require.True(t, ok)
	assert.Equal(t, "te", phrase.Language)
}

func TestCatalog_EveryLanguageHasDangerZone(t *testing.T) {
	for _, code := range supported {
		assert.NotEmpty(t, phrases[code][entity.PhraseDangerZone], code)
	}
}
