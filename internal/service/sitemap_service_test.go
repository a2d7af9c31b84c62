package service

import (
	"strings"
	"testing"
	"time"

	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/content"
)

func sitemapConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Site.URL = "https://linqueresourcing.com/"
	return cfg
}

func TestSitemapIncludesCatalogContent(t *testing.T) {
	svc := NewSitemapService(sitemapConfig(), NewContentService(nil, nil))

	xml := string(svc.Current())
	if !strings.Contains(xml, "<loc>https://linqueresourcing.com/blog</loc>") {
		t.Fatal("static blog page missing from sitemap")
	}
	if !strings.Contains(xml, "<loc>https://linqueresourcing.com/careers/senior-hr-business-partner</loc>") {
		t.Fatal("catalog job missing from sitemap")
	}
	if strings.Contains(xml, "https://linqueresourcing.com//") {
		t.Fatal("double slash in sitemap URL")
	}
}

func TestSitemapRebuildPicksUpNewPosts(t *testing.T) {
	resolver, _ := newStoreBackedService(t)
	svc := NewSitemapService(sitemapConfig(), resolver)

	before := string(svc.Current())
	if strings.Contains(before, "/blog/fresh-take") {
		t.Fatal("unexpected post before publish")
	}

	now := time.Now().UTC()
	if _, err := resolver.UpsertPost(content.Post{
		Slug:        "fresh-take",
		Title:       "Fresh Take",
		Status:      content.StatusPublished,
		PublishedAt: &now,
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	after := string(svc.Rebuild())
	if !strings.Contains(after, "<loc>https://linqueresourcing.com/blog/fresh-take</loc>") {
		t.Fatal("rebuilt sitemap missing new post")
	}
}

func TestSitemapExcludesDrafts(t *testing.T) {
	resolver, _ := newStoreBackedService(t)
	if _, err := resolver.UpsertPost(content.Post{Slug: "secret-draft", Title: "Secret", Status: content.StatusDraft}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	svc := NewSitemapService(sitemapConfig(), resolver)
	if strings.Contains(string(svc.Current()), "secret-draft") {
		t.Fatal("draft leaked into sitemap")
	}
}
