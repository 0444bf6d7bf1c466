package profile

import "github.com/aydnep/upwork-cover-ai/internal/profiles"

// ProfileResponse wraps the stored profile; Profile is null when the user
// has not saved one yet
type ProfileResponse struct {
	Profile *profiles.Profile `json:"profile"`
}

// SaveResponse acknowledges a successful save
type SaveResponse struct {
	Success bool `json:"success"`
}
