package profiles

import (
	"encoding/json"
	"fmt"
)

// FromModelJSON builds a profile from LLM extraction output. The model is
// prompted to return strings but is not trusted to: non-string values are
// dropped rather than failing the whole import.
func FromModelJSON(data []byte) (*Profile, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	str := func(key string) string {
		value, _ := raw[key].(string)
		return value
	}

	return &Profile{
		Name:              str("name"),
		Title:             str("title"),
		Skills:            str("skills"),
		ExperienceSummary: str("experienceSummary"),
		PortfolioLinks:    str("portfolioLinks"),
		HourlyRate:        str("hourlyRate"),
		Location:          str("location"),
		Bio:               str("bio"),
	}, nil
}
