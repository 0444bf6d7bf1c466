package scrape

import (
	"github.com/aydnep/upwork-cover-ai/internal/llm"
	"github.com/aydnep/upwork-cover-ai/internal/scraper"
	"github.com/gin-gonic/gin"
)

// registers the scraping routes on an authenticated group; client is nil
// when no Firecrawl key is configured
func RegisterRoutes(group *gin.RouterGroup, client *scraper.Client, model *llm.Client) {
	group.POST("/scrape", ScrapeHandler(client))
	group.POST("/import-profile", ImportProfileHandler(client, model))
}
