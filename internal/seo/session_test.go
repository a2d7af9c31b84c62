package seo

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const basePage = `<!DOCTYPE html><html><head>
<title>Linque Resourcing</title>
<meta charset="utf-8"/>
<meta name="description" content="People-first HR consulting." data-origin="build"/>
<script type="application/ld+json">{"@type":"Organization"}</script>
</head><body><div id="root"></div></body></html>`

func parseTestDocument(t *testing.T, page string) *Document {
	t.Helper()
	doc, err := ParseDocumentString(page)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

func renderTest(t *testing.T, doc *Document) string {
	t.Helper()
	out, err := doc.RenderString()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func attrsOf(n *html.Node) map[string]string {
	out := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		out[a.Key] = a.Val
	}
	return out
}

func TestMountAppliesPageMetadata(t *testing.T) {
	doc := parseTestDocument(t, basePage)

	session := Mount(doc, PageMeta{
		Title:        "Strategic Workforce Planning",
		Description:  "Plan the workforce you will need.",
		CanonicalURL: "https://linqueresourcing.com/blog/strategic-workforce-planning-2024",
		OpenGraph: OpenGraph{
			Image: "https://linqueresourcing.com/assets/blog-workforce.svg",
		},
	})
	defer session.Close()

	if got := doc.Title(); got != "Strategic Workforce Planning" {
		t.Fatalf("title not applied, got %q", got)
	}
	desc := doc.FindTag("meta", "name", "description")
	if desc == nil {
		t.Fatal("description meta missing")
	}
	if got := attr(desc, "content"); got != "Plan the workforce you will need." {
		t.Fatalf("description not applied, got %q", got)
	}
	// Pre-existing attributes survive the mutation.
	if got := attr(desc, "data-origin"); got != "build" {
		t.Fatalf("unmanaged attribute lost, got %q", got)
	}
	robots := doc.FindTag("meta", "name", "robots")
	if robots == nil || attr(robots, "content") != "index, follow" {
		t.Fatal("robots meta not applied")
	}
	ogTitle := doc.FindTag("meta", "property", "og:title")
	if ogTitle == nil || attr(ogTitle, "content") != "Strategic Workforce Planning" {
		t.Fatal("og:title should fall back to the page title")
	}
	twitterImage := doc.FindTag("meta", "name", "twitter:image")
	if twitterImage == nil || attr(twitterImage, "content") != "https://linqueresourcing.com/assets/blog-workforce.svg" {
		t.Fatal("twitter:image should fall back to og:image")
	}
	canonical := doc.FindTag("link", "rel", "canonical")
	if canonical == nil {
		t.Fatal("canonical link missing")
	}
}

func TestMountThenCloseIsANoOp(t *testing.T) {
	doc := parseTestDocument(t, basePage)
	before := renderTest(t, doc)

	descBefore := attrsOf(doc.FindTag("meta", "name", "description"))
	scriptBefore := textContent(doc.FindTag("script", "type", jsonLDType))

	session := Mount(doc, PageMeta{
		Title:        "Careers",
		Description:  "Open roles.",
		CanonicalURL: "https://linqueresourcing.com/careers",
		NoIndex:      true,
		StructuredData: map[string]any{
			"@type": "JobPosting",
		},
	})
	session.Close()

	after := renderTest(t, doc)
	if after != before {
		t.Fatalf("document changed across mount/close:\nbefore: %s\nafter:  %s", before, after)
	}
	descAfter := attrsOf(doc.FindTag("meta", "name", "description"))
	if len(descAfter) != len(descBefore) {
		t.Fatalf("description attribute set changed: %v vs %v", descBefore, descAfter)
	}
	for k, v := range descBefore {
		if descAfter[k] != v {
			t.Fatalf("description attribute %s changed: %q vs %q", k, v, descAfter[k])
		}
	}
	if got := textContent(doc.FindTag("script", "type", jsonLDType)); got != scriptBefore {
		t.Fatalf("script text not restored: %q vs %q", scriptBefore, got)
	}
}

func TestCloseRemovesCreatedTags(t *testing.T) {
	page := `<html><head><title>Home</title></head><body></body></html>`
	doc := parseTestDocument(t, page)

	session := Mount(doc, PageMeta{
		Title:        "About",
		Description:  "Who we are.",
		CanonicalURL: "https://linqueresourcing.com/about",
	})

	if doc.FindTag("link", "rel", "canonical") == nil {
		t.Fatal("canonical link should exist while mounted")
	}
	if doc.FindTag("meta", "name", "description") == nil {
		t.Fatal("description meta should exist while mounted")
	}

	session.Close()

	if doc.FindTag("link", "rel", "canonical") != nil {
		t.Fatal("created canonical link left behind after close")
	}
	if doc.FindTag("meta", "name", "description") != nil {
		t.Fatal("created description meta left behind after close")
	}
	if doc.FindTag("meta", "name", "robots") != nil {
		t.Fatal("created robots meta left behind after close")
	}
	if got := doc.Title(); got != "Home" {
		t.Fatalf("title not restored, got %q", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	doc := parseTestDocument(t, basePage)
	before := renderTest(t, doc)

	session := Mount(doc, PageMeta{Title: "Contact", Description: "Say hello."})
	session.Close()
	session.Close()

	if after := renderTest(t, doc); after != before {
		t.Fatal("second close disturbed the document")
	}
}

func TestPageChangeResynchronizes(t *testing.T) {
	doc := parseTestDocument(t, basePage)
	before := renderTest(t, doc)

	first := Mount(doc, PageMeta{Title: "Blog", Description: "Insights.", NoIndex: false})
	first.Close()
	second := Mount(doc, PageMeta{Title: "Admin", Description: "Panel.", NoIndex: true})

	robots := doc.FindTag("meta", "name", "robots")
	if robots == nil || attr(robots, "content") != "noindex, nofollow" {
		t.Fatal("robots should reflect the second page")
	}
	if got := doc.Title(); got != "Admin" {
		t.Fatalf("expected second page title, got %q", got)
	}

	second.Close()
	if after := renderTest(t, doc); after != before {
		t.Fatal("document not restored after page sequence")
	}
}

func TestTitleCreatedWhenAbsentAndRemovedOnClose(t *testing.T) {
	page := `<html><head><meta charset="utf-8"/></head><body></body></html>`
	doc := parseTestDocument(t, page)

	session := Mount(doc, PageMeta{Title: "Landing", Description: "Hi."})
	if got := doc.Title(); got != "Landing" {
		t.Fatalf("expected created title, got %q", got)
	}
	session.Close()
	if got := doc.Title(); got != "" {
		t.Fatalf("expected no title after close, got %q", got)
	}
}

func TestStructuredDataRendersIntoScript(t *testing.T) {
	doc := parseTestDocument(t, basePage)

	session := Mount(doc, PageMeta{
		Title:          "Org",
		Description:    "Org page.",
		StructuredData: OrganizationLD("Linque Resourcing", "https://linqueresourcing.com", ""),
	})
	defer session.Close()

	text := textContent(doc.FindTag("script", "type", jsonLDType))
	if !strings.Contains(text, `"@type":"Organization"`) {
		t.Fatalf("structured data not rendered: %s", text)
	}
	if !strings.Contains(text, `"name":"Linque Resourcing"`) {
		t.Fatalf("organization name missing: %s", text)
	}
}
