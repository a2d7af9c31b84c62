// Package seo synchronizes per-page metadata into an HTML document head and
// restores the prior state when the page view ends. A Session is one
// mount-to-restore cycle; sessions must not overlap on the same document.
package seo

// OpenGraph carries the social sharing tag values for one page. Empty Title,
// Description and Type fall back to the page values when mounted.
type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
	Image       string
}

// Twitter carries the twitter card tag values. Empty fields fall back to the
// Open Graph values.
type Twitter struct {
	Title       string
	Description string
	Image       string
}

// PageMeta is everything a page publishes into the document head.
type PageMeta struct {
	Title        string
	Description  string
	CanonicalURL string
	NoIndex      bool
	OpenGraph    OpenGraph
	Twitter      Twitter

	// StructuredData is marshaled to JSON and placed in the ld+json script
	// tag. Nil leaves any existing script untouched.
	StructuredData any
}

const (
	robotsIndex   = "index, follow"
	robotsNoIndex = "noindex, nofollow"

	defaultOpenGraphType = "website"
)

// robotsContent is the only managed value that toggles rather than being
// present or absent.
func robotsContent(noIndex bool) string {
	if noIndex {
		return robotsNoIndex
	}
	return robotsIndex
}

func fallback(value, alt string) string {
	if value != "" {
		return value
	}
	return alt
}
