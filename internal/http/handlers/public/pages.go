package public

import (
	"errors"
	"net/http"

	"github.com/linque-cms/internal/http/response"
	"github.com/linque-cms/internal/seo"
	"github.com/linque-cms/internal/service"

	"github.com/gin-gonic/gin"
)

// renderPage mounts the page metadata on the shared shell, serializes the
// result and restores the shell. The mount/render/restore sequence runs under
// the handler mutex so overlapping requests never see each other's tags.
func (h *Handler) renderPage(c *gin.Context, meta seo.PageMeta) {
	doc, err := h.baseDocument()
	if err != nil {
		respondError(c, response.CodeInternal, "page shell unavailable", err)
		return
	}

	h.mu.Lock()
	session := seo.Mount(doc, meta)
	page, renderErr := doc.RenderString()
	session.Close()
	h.mu.Unlock()

	if renderErr != nil {
		respondError(c, response.CodeInternal, "page render failed", renderErr)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) siteName() string {
	if name := h.Config.Site.Name; name != "" {
		return name
	}
	return "Linque Resourcing"
}

func (h *Handler) pageMeta(title, description, path string) seo.PageMeta {
	base := h.Config.Site.BaseURL()
	return seo.PageMeta{
		Title:        title,
		Description:  description,
		CanonicalURL: base + path,
		OpenGraph: seo.OpenGraph{
			URL:   base + path,
			Image: h.Config.Site.DefaultImage,
		},
	}
}

// HomePage renders the landing page shell.
func (h *Handler) HomePage(c *gin.Context) {
	meta := h.pageMeta(
		h.siteName()+" | People-First HR Consulting",
		"HR strategy, talent acquisition and people operations consulting for growing companies.",
		"/",
	)
	meta.StructuredData = seo.OrganizationLD(h.siteName(), h.Config.Site.BaseURL(), h.Config.Site.DefaultImage)
	h.renderPage(c, meta)
}

// BlogPage renders the blog listing shell.
func (h *Handler) BlogPage(c *gin.Context) {
	h.renderPage(c, h.pageMeta(
		"Insights | "+h.siteName(),
		"Perspectives on HR strategy, culture and people operations.",
		"/blog",
	))
}

// BlogPostPage renders one post's shell with article metadata. Unknown slugs
// redirect to the listing.
func (h *Handler) BlogPostPage(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.ContentCache.GetPostBySlug(slug, false)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		respondError(c, response.CodeInternal, "post fetch failed", err)
		return
	}

	path := "/blog/" + post.Slug
	meta := h.pageMeta(post.Title+" | "+h.siteName(), post.Description, path)
	meta.OpenGraph.Type = "article"
	if post.HeroImage != "" {
		meta.OpenGraph.Image = post.HeroImage
	}
	meta.StructuredData = seo.BlogPostingLD(post, h.Config.Site.BaseURL()+path, h.siteName())
	h.renderPage(c, meta)
}

// CareersPage renders the job board shell.
func (h *Handler) CareersPage(c *gin.Context) {
	h.renderPage(c, h.pageMeta(
		"Careers | "+h.siteName(),
		"Open roles with our clients and our own team.",
		"/careers",
	))
}

// CareerJobPage renders one job posting's shell. Unknown slugs redirect to
// the board.
func (h *Handler) CareerJobPage(c *gin.Context) {
	slug := c.Param("slug")
	job, err := h.ContentCache.GetJobBySlug(slug, false)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Redirect(http.StatusFound, "/careers")
			return
		}
		respondError(c, response.CodeInternal, "job fetch failed", err)
		return
	}

	path := "/careers/" + job.Slug
	meta := h.pageMeta(job.Title+" | "+h.siteName(), job.Summary, path)
	meta.StructuredData = seo.JobPostingLD(job, h.siteName(), h.Config.Site.BaseURL())
	h.renderPage(c, meta)
}

// AboutPage renders the about shell.
func (h *Handler) AboutPage(c *gin.Context) {
	h.renderPage(c, h.pageMeta(
		"About | "+h.siteName(),
		"Who we are and how we work.",
		"/about",
	))
}

// ServicesPage renders the services shell.
func (h *Handler) ServicesPage(c *gin.Context) {
	h.renderPage(c, h.pageMeta(
		"Services | "+h.siteName(),
		"HR strategy, talent acquisition, learning and people operations services.",
		"/services",
	))
}

// ContactPage renders the contact shell.
func (h *Handler) ContactPage(c *gin.Context) {
	h.renderPage(c, h.pageMeta(
		"Contact | "+h.siteName(),
		"Talk to us about your people challenges.",
		"/contact",
	))
}
