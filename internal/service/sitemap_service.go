package service

import (
	"encoding/xml"
	"sync"
	"time"

	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/logger"
)

// staticSitemapPaths are the fixed marketing pages.
var staticSitemapPaths = []string{
	"/",
	"/about",
	"/services",
	"/blog",
	"/careers",
	"/contact",
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapService renders sitemap.xml from the published content listings and
// keeps the last rendered document in memory. Rebuilds run at startup and,
// when the queue is enabled, whenever content changes.
type SitemapService struct {
	cfg      *config.Config
	resolver *ContentService

	mu      sync.RWMutex
	current []byte
	builtAt time.Time
}

func NewSitemapService(cfg *config.Config, resolver *ContentService) *SitemapService {
	return &SitemapService{cfg: cfg, resolver: resolver}
}

// Current returns the last rendered sitemap, rendering on first use.
func (s *SitemapService) Current() []byte {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current != nil {
		return current
	}
	return s.Rebuild()
}

// Rebuild renders the sitemap from current content and swaps it in.
func (s *SitemapService) Rebuild() []byte {
	base := s.cfg.Site.BaseURL()
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}
	for _, path := range staticSitemapPaths {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + path})
	}
	for _, post := range s.resolver.ListPosts(false) {
		entry := sitemapURL{Loc: base + "/blog/" + post.Slug}
		if post.UpdatedAt != nil {
			entry.LastMod = post.UpdatedAt.UTC().Format("2006-01-02")
		} else if post.PublishedAt != nil {
			entry.LastMod = post.PublishedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, entry)
	}
	for _, job := range s.resolver.ListJobs(false) {
		entry := sitemapURL{Loc: base + "/careers/" + job.Slug}
		if job.PostedAt != nil {
			entry.LastMod = job.PostedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, entry)
	}

	payload, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		logger.Errorw("sitemap_render_failed", "error", err)
		return s.current
	}
	document := append([]byte(xml.Header), payload...)

	s.mu.Lock()
	s.current = document
	s.builtAt = time.Now()
	s.mu.Unlock()

	logger.Infow("sitemap_rebuilt", "urls", len(set.URLs))
	return document
}
