package generate

import (
	"github.com/aydnep/upwork-cover-ai/internal/llm"
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/gin-gonic/gin"
)

// registers the cover letter route on an authenticated group
func RegisterRoutes(group *gin.RouterGroup, store profiles.Store, model *llm.Client) {
	group.POST("/generate", GenerateHandler(store, model))
}
