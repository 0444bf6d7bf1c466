package letters

import (
	"testing"

	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTone_Default(t *testing.T) {
	tone, err := ParseTone("")

	require.NoError(t, err)
	assert.Equal(t, ToneProfessional, tone)
}

func TestParseTone_Valid(t *testing.T) {
	for _, raw := range []string{"professional", "friendly", "confident", "enthusiastic"} {
		tone, err := ParseTone(raw)

		require.NoError(t, err)
		assert.Equal(t, Tone(raw), tone)
	}
}

func TestParseTone_Invalid(t *testing.T) {
	_, err := ParseTone("sarcastic")

	assert.ErrorContains(t, err, "tone must be one of")
}

func TestSystemPrompt_RequiredFields(t *testing.T) {
	prompt := SystemPrompt(&profiles.Profile{
		Name:              "Ada Lovelace",
		Title:             "Backend Developer",
		Skills:            "Go, Postgres",
		ExperienceSummary: "Ten years building APIs",
		PortfolioLinks:    "https://example.com",
	})

	assert.Contains(t, prompt, "Name: Ada Lovelace")
	assert.Contains(t, prompt, "Skills: Go, Postgres")
	assert.NotContains(t, prompt, "Rate:")
	assert.NotContains(t, prompt, "Location:")
	assert.NotContains(t, prompt, "Bio:")
}

func TestSystemPrompt_OptionalFields(t *testing.T) {
	prompt := SystemPrompt(&profiles.Profile{
		Name:              "Ada Lovelace",
		Title:             "Backend Developer",
		Skills:            "Go",
		ExperienceSummary: "APIs",
		PortfolioLinks:    "",
		HourlyRate:        "$80/hr",
		Location:          "London",
		Bio:               "I like engines",
	})

	assert.Contains(t, prompt, "Rate: $80/hr")
	assert.Contains(t, prompt, "Location: London")
	assert.Contains(t, prompt, "Bio: I like engines")
}

func TestUserPrompt_IncludesToneGuide(t *testing.T) {
	prompt := UserPrompt("Build a Go API", ToneConfident)

	assert.Contains(t, prompt, "Job Description:\nBuild a Go API")
	assert.Contains(t, prompt, "bold, assertive")
}
