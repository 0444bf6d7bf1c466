package scrape

import (
	"net/http"
	"strings"

	"github.com/aydnep/upwork-cover-ai/internal/errors"
	"github.com/aydnep/upwork-cover-ai/internal/letters"
	"github.com/aydnep/upwork-cover-ai/internal/llm"
	"github.com/aydnep/upwork-cover-ai/internal/logger"
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/aydnep/upwork-cover-ai/internal/scraper"
	"github.com/gin-gonic/gin"
)

// bindURL parses the request body and returns the trimmed URL, or writes
// the error response and returns false
func bindURL(c *gin.Context) (string, bool) {
	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "invalid request body", err)
		return "", false
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		errors.BadRequest(c, "url is required", nil)
		return "", false
	}

	return url, true
}

// ScrapeHandler fetches an Upwork job page as markdown. A nil client means
// scraping is not configured for this deployment.
func ScrapeHandler(client *scraper.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			errors.NotImplemented(c, "scraping is not configured")
			return
		}

		url, ok := bindURL(c)
		if !ok {
			return
		}

		markdown, err := client.Scrape(c.Request.Context(), url)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		c.JSON(http.StatusOK, ScrapeResponse{Markdown: markdown})
	}
}

// ImportProfileHandler scrapes an Upwork profile page and asks the model to
// extract a structured profile from it. The result is returned for the user
// to review, not saved directly.
func ImportProfileHandler(client *scraper.Client, model *llm.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			errors.NotImplemented(c, "scraping is not configured")
			return
		}

		url, ok := bindURL(c)
		if !ok {
			return
		}

		markdown, err := client.Scrape(c.Request.Context(), url)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		content, err := model.Complete(c.Request.Context(), llm.CompletionRequest{
			SystemPrompt: letters.ExtractionPrompt,
			UserPrompt:   markdown,
			Temperature:  0.1,
			MaxTokens:    1024,
			JSONResponse: true,
		})
		if err != nil {
			errors.InternalError(c, "profile extraction failed", err)
			return
		}

		profile, err := profiles.FromModelJSON([]byte(content))
		if err != nil {
			logger.ErrorErr(err, "model returned unparseable profile JSON")
			errors.InternalError(c, "profile extraction failed", err)

			return
		}

		c.JSON(http.StatusOK, ImportResponse{Profile: profile})
	}
}
