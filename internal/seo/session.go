package seo

import (
	"encoding/json"

	"github.com/linque-cms/internal/logger"

	"golang.org/x/net/html"
)

// Session is one metadata mount. Mount snapshots whatever the managed tags
// held before, applies the page values, and Close restores the snapshot
// exactly: created tags are removed, pre-existing tags get their full prior
// attribute set and text back. A change of page is Close followed by a new
// Mount; sessions never overlap on one document.
type Session struct {
	doc       *Document
	prevTitle string
	hadTitle  bool
	records   []tagRecord
	closed    bool
}

type tagRecord struct {
	node        *html.Node
	created     bool
	attrs       []html.Attribute
	text        string
	restoreText bool
}

const jsonLDType = "application/ld+json"

// Mount applies the page metadata to the document head.
func Mount(doc *Document, meta PageMeta) *Session {
	s := &Session{
		doc:       doc,
		prevTitle: doc.Title(),
		hadTitle:  findElement(doc.head, "title") != nil,
	}
	doc.SetTitle(meta.Title)

	ogTitle := fallback(meta.OpenGraph.Title, meta.Title)
	ogDescription := fallback(meta.OpenGraph.Description, meta.Description)

	s.applyMeta("name", "description", meta.Description)
	s.applyMeta("name", "robots", robotsContent(meta.NoIndex))
	s.applyMeta("property", "og:title", ogTitle)
	s.applyMeta("property", "og:description", ogDescription)
	s.applyMeta("property", "og:type", fallback(meta.OpenGraph.Type, defaultOpenGraphType))
	if meta.OpenGraph.URL != "" {
		s.applyMeta("property", "og:url", meta.OpenGraph.URL)
	}
	if meta.OpenGraph.Image != "" {
		s.applyMeta("property", "og:image", meta.OpenGraph.Image)
	}
	s.applyMeta("name", "twitter:title", fallback(meta.Twitter.Title, ogTitle))
	s.applyMeta("name", "twitter:description", fallback(meta.Twitter.Description, ogDescription))
	if image := fallback(meta.Twitter.Image, meta.OpenGraph.Image); image != "" {
		s.applyMeta("name", "twitter:image", image)
	}
	if meta.CanonicalURL != "" {
		s.applyLink("canonical", meta.CanonicalURL)
	}
	if meta.StructuredData != nil {
		s.applyStructuredData(meta.StructuredData)
	}
	return s
}

// Close restores the document head to its pre-mount state. Safe to call more
// than once; only the first call does anything.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if s.hadTitle {
		s.doc.SetTitle(s.prevTitle)
	} else if title := findElement(s.doc.head, "title"); title != nil {
		s.doc.RemoveTag(title)
	}

	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if rec.created {
			s.doc.RemoveTag(rec.node)
			continue
		}
		rec.node.Attr = copyAttrs(rec.attrs)
		if rec.restoreText {
			setTextContent(rec.node, rec.text)
		}
	}
	s.records = nil
}

func (s *Session) applyMeta(keyAttr, name, content string) {
	node := s.doc.FindTag("meta", keyAttr, name)
	if node == nil {
		node = &html.Node{
			Type: html.ElementNode,
			Data: "meta",
			Attr: []html.Attribute{
				{Key: keyAttr, Val: name},
				{Key: "content", Val: content},
			},
		}
		s.doc.AppendTag(node)
		s.records = append(s.records, tagRecord{node: node, created: true})
		return
	}
	s.records = append(s.records, tagRecord{node: node, attrs: copyAttrs(node.Attr)})
	setAttr(node, "content", content)
}

func (s *Session) applyLink(rel, href string) {
	node := s.doc.FindTag("link", "rel", rel)
	if node == nil {
		node = &html.Node{
			Type: html.ElementNode,
			Data: "link",
			Attr: []html.Attribute{
				{Key: "rel", Val: rel},
				{Key: "href", Val: href},
			},
		}
		s.doc.AppendTag(node)
		s.records = append(s.records, tagRecord{node: node, created: true})
		return
	}
	s.records = append(s.records, tagRecord{node: node, attrs: copyAttrs(node.Attr)})
	setAttr(node, "href", href)
}

func (s *Session) applyStructuredData(data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Warnw("structured_data_marshal_failed", "error", err)
		return
	}
	node := s.doc.FindTag("script", "type", jsonLDType)
	if node == nil {
		node = &html.Node{
			Type: html.ElementNode,
			Data: "script",
			Attr: []html.Attribute{{Key: "type", Val: jsonLDType}},
		}
		node.AppendChild(&html.Node{Type: html.TextNode, Data: string(payload)})
		s.doc.AppendTag(node)
		s.records = append(s.records, tagRecord{node: node, created: true})
		return
	}
	s.records = append(s.records, tagRecord{
		node:        node,
		attrs:       copyAttrs(node.Attr),
		text:        textContent(node),
		restoreText: true,
	})
	setTextContent(node, string(payload))
}
