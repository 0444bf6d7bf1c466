package generate

// GenerateRequest describes the cover letter to write
type GenerateRequest struct {
	JobDescription string `json:"jobDescription"`
	Tone           string `json:"tone"`
}

// streamEvent is one SSE data payload; exactly one field is set
type streamEvent struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}
