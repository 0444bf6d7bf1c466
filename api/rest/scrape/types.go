package scrape

import "github.com/aydnep/upwork-cover-ai/internal/profiles"

// ScrapeRequest names the Upwork page to fetch
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeResponse carries the scraped page as markdown
type ScrapeResponse struct {
	Markdown string `json:"markdown"`
}

// ImportResponse carries the profile extracted from a scraped page
type ImportResponse struct {
	Profile *profiles.Profile `json:"profile"`
}
