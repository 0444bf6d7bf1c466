package generate

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/aydnep/upwork-cover-ai/internal/errors"
	"github.com/aydnep/upwork-cover-ai/internal/letters"
	"github.com/aydnep/upwork-cover-ai/internal/llm"
	"github.com/aydnep/upwork-cover-ai/internal/logger"
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/gin-gonic/gin"
)

// GenerateHandler streams an AI cover letter as server-sent events. All
// validation happens before the first byte of the stream; once streaming
// starts, failures are reported in-band as a data event.
func GenerateHandler(store profiles.Store, model *llm.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		req.JobDescription = strings.TrimSpace(req.JobDescription)
		if req.JobDescription == "" {
			errors.BadRequest(c, "jobDescription is required", nil)
			return
		}

		tone, err := letters.ParseTone(req.Tone)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		profile, err := store.Get(c.Request.Context(), claims.Email)
		if err != nil {
			if stderrors.Is(err, profiles.ErrNotFound) {
				errors.BadRequest(c, "please save your profile first", nil)
				return
			}

			errors.InternalError(c, "failed to load profile", err)

			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		completion := llm.CompletionRequest{
			SystemPrompt: letters.SystemPrompt(profile),
			UserPrompt:   letters.UserPrompt(req.JobDescription, tone),
			Temperature:  0.7,
			MaxTokens:    1024,
		}

		err = model.Stream(c.Request.Context(), completion, func(content string) error {
			return writeEvent(c, streamEvent{Content: content})
		})
		if err != nil {
			logger.ErrorErr(err, "cover letter stream failed", "email", claims.Email)
			writeEvent(c, streamEvent{Error: "stream error"})

			return
		}

		fmt.Fprint(c.Writer, "data: [DONE]\n\n")
		c.Writer.Flush()
	}
}

// writeEvent emits one SSE data frame and flushes it to the client
func writeEvent(c *gin.Context, event streamEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
		return err
	}

	c.Writer.Flush()

	return nil
}
