package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdCopies(t *testing.T) {
	content := "1. Primeira legenda 🚀\n\n2.   Segunda legenda\n   \n3. Terceira\n4. Quarta"

	copies := ParseAdCopies(content, PlatformInstagram, "bold")

	assert.Equal(t, []AdCopy{
		{ID: 1, Text: "Primeira legenda 🚀", Platform: PlatformInstagram, Style: "bold"},
		{ID: 2, Text: "Segunda legenda", Platform: PlatformInstagram, Style: "bold"},
		{ID: 3, Text: "Terceira", Platform: PlatformInstagram, Style: "bold"},
	}, copies)
}

func TestParseAdCopies_Empty(t *testing.T) {
	assert.Empty(t, ParseAdCopies("\n  \n", PlatformTikTok, "modern"))
}

func TestParseAdCopies_LeadingSpacesBeforeNumber(t *testing.T) {
	// a numeração só é removida quando inicia a linha
	copies := ParseAdCopies("  1. Texto", PlatformTikTok, "modern")
	assert.Equal(t, "1. Texto", copies[0].Text)
}

func TestPromptHelpers(t *testing.T) {
	assert.Equal(t, 150, CopyCharacterLimit(PlatformTikTok))
	assert.Equal(t, 200, CopyCharacterLimit(PlatformInstagram))
	assert.Equal(t, "1024x1024", ImageSize(PlatformInstagram))
	assert.Equal(t, "1024x1792", ImageSize(PlatformTikTok))
	assert.Contains(t, AdCopyPrompt("Tênis", PlatformTikTok, "bold"), "Under 150 characters")
	assert.Contains(t, CopywriterSystemPrompt(PlatformInstagram), "specializing in instagram ads")
}
