package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sitemap serves the current sitemap document.
func (h *Handler) Sitemap(c *gin.Context) {
	c.Data(http.StatusOK, "application/xml; charset=utf-8", h.SitemapService.Current())
}

// Robots serves robots.txt pointing crawlers at the sitemap.
func (h *Handler) Robots(c *gin.Context) {
	body := "User-agent: *\nAllow: /\nDisallow: /admin\n\nSitemap: " + h.Config.Site.BaseURL() + "/sitemap.xml\n"
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
