package public

import (
	"fmt"
	"os"
	"sync"

	"github.com/linque-cms/internal/provider"
	"github.com/linque-cms/internal/seo"
)

// defaultIndexPage is the shell served when no index_html_path is configured,
// matching the built frontend's head so prerendered tags land in the same
// places.
const defaultIndexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Linque Resourcing</title>
<meta name="description" content="People-first HR consulting for growing companies."/>
</head>
<body>
<div id="root"></div>
</body>
</html>`

// Handler serves the public API and the prerendered pages. Page renders
// mutate a single shared document head, so they are serialized.
type Handler struct {
	*provider.Container

	docOnce sync.Once
	docErr  error
	doc     *seo.Document
	mu      sync.Mutex
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// baseDocument lazily parses the page shell all prerendered routes share.
func (h *Handler) baseDocument() (*seo.Document, error) {
	h.docOnce.Do(func() {
		page := defaultIndexPage
		if path := h.Config.Site.IndexHTMLPath; path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				h.docErr = fmt.Errorf("read index html: %w", err)
				return
			}
			page = string(raw)
		}
		h.doc, h.docErr = seo.ParseDocumentString(page)
	})
	return h.doc, h.docErr
}
