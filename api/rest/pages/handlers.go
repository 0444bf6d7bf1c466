package pages

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/aydnep/upwork-cover-ai/internal/logger"
	"github.com/gin-gonic/gin"
)

//go:embed index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "index.html"))

// pageData drives the index template; User is nil for anonymous visitors
type pageData struct {
	User             *auth.Claims
	ScraperAvailable bool
}

// IndexHandler renders the single-page UI. An invalid or expired session
// cookie renders the signed-out page rather than an error.
func IndexHandler(codec *auth.Codec, scraperAvailable bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := pageData{
			User:             auth.Resolve(c.Request, codec),
			ScraperAvailable: scraperAvailable,
		}

		c.Status(http.StatusOK)
		c.Header("Content-Type", "text/html; charset=utf-8")

		// headers are already out by the time Execute can fail
		if err := indexTemplate.Execute(c.Writer, data); err != nil {
			logger.ErrorErr(err, "failed to render index page")
		}
	}
}
