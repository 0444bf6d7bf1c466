package profiles

import (
	"fmt"
	"strings"
)

// Profile is the freelancer profile used to personalize cover letters,
// keyed by the owner's email.
type Profile struct {
	Name              string `json:"name"`
	Title             string `json:"title"`
	Skills            string `json:"skills"`
	ExperienceSummary string `json:"experienceSummary"`
	PortfolioLinks    string `json:"portfolioLinks"`
	HourlyRate        string `json:"hourlyRate,omitempty"`
	Location          string `json:"location,omitempty"`
	Bio               string `json:"bio,omitempty"`
}

// Validate trims all fields in place and checks the required ones are
// non-empty. Error messages name the JSON field.
func (p *Profile) Validate() error {
	required := []struct {
		name  string
		value *string
	}{
		{"name", &p.Name},
		{"title", &p.Title},
		{"skills", &p.Skills},
		{"experienceSummary", &p.ExperienceSummary},
		{"portfolioLinks", &p.PortfolioLinks},
	}

	for _, field := range required {
		*field.value = strings.TrimSpace(*field.value)

		if *field.value == "" {
			return fmt.Errorf("%s is required and must be a non-empty string", field.name)
		}
	}

	p.HourlyRate = strings.TrimSpace(p.HourlyRate)
	p.Location = strings.TrimSpace(p.Location)
	p.Bio = strings.TrimSpace(p.Bio)

	return nil
}
