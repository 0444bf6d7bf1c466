package letters

import (
	"fmt"
	"strings"

	"github.com/aydnep/upwork-cover-ai/internal/profiles"
)

// Tone selects the voice of the generated letter
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneConfident    Tone = "confident"
	ToneEnthusiastic Tone = "enthusiastic"
)

var toneGuides = map[Tone]string{
	ToneProfessional: "Use a polished, professional tone. Be direct and business-focused.",
	ToneFriendly:     "Use a warm, approachable tone. Be conversational but still competent.",
	ToneConfident:    "Use a bold, assertive tone. Emphasize achievements and capability.",
	ToneEnthusiastic: "Use an energetic, passionate tone. Show genuine excitement for the project.",
}

// ParseTone validates a user-supplied tone, defaulting to professional when
// empty
func ParseTone(raw string) (Tone, error) {
	if raw == "" {
		return ToneProfessional, nil
	}

	tone := Tone(raw)
	if _, ok := toneGuides[tone]; !ok {
		return "", fmt.Errorf("tone must be one of: professional, friendly, confident, enthusiastic")
	}

	return tone, nil
}

// SystemPrompt instructs the model to write as the given freelancer
func SystemPrompt(p *profiles.Profile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are an expert Upwork cover letter writer. Write a personalized cover letter for the following freelancer:

Name: %s
Title: %s
Skills: %s
Experience: %s
Portfolio: %s`, p.Name, p.Title, p.Skills, p.ExperienceSummary, p.PortfolioLinks)

	if p.HourlyRate != "" {
		fmt.Fprintf(&sb, "\nRate: %s", p.HourlyRate)
	}

	if p.Location != "" {
		fmt.Fprintf(&sb, "\nLocation: %s", p.Location)
	}

	if p.Bio != "" {
		fmt.Fprintf(&sb, "\nBio: %s", p.Bio)
	}

	sb.WriteString(`

Guidelines:
- Write 150-250 words
- Start with a compelling hook that addresses the client's specific need
- Highlight 2-3 most relevant skills/experiences for this particular job
- Show understanding of their project requirements
- End with a clear call to action
- Use first person ("I")
- Be specific, not generic — reference details from the job posting
- Do not use filler phrases like "I came across your job posting"
- Do not include a subject line or greeting — just the body text
- Do not use markdown formatting — write plain text`)

	return sb.String()
}

// UserPrompt carries the job description and the tone instruction
func UserPrompt(jobDescription string, tone Tone) string {
	return fmt.Sprintf("Job Description:\n%s\n\nTone: %s", jobDescription, toneGuides[tone])
}

// ExtractionPrompt instructs the model to pull a structured profile out of a
// scraped Upwork profile page
const ExtractionPrompt = `You are a data extraction assistant. Extract the freelancer's profile information from the following Upwork profile page content. Return a JSON object with these fields:

- "name" (string, required): Full name of the freelancer
- "title" (string, required): Professional title/headline
- "skills" (string, required): Comma-separated list of skills
- "experienceSummary" (string, required): A brief summary of their experience and work history
- "portfolioLinks" (string, required): Any portfolio or website links found, comma-separated (use empty string if none found)
- "hourlyRate" (string, optional): Their hourly rate if listed
- "location" (string, optional): Their location if listed
- "bio" (string, optional): Their bio/overview text

Only return valid JSON. Do not include any text outside the JSON object.`
