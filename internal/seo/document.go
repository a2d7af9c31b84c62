package seo

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed HTML page and exposes the head manipulation the
// metadata session needs. It is not safe for concurrent use; callers serialize
// page views over a shared document.
type Document struct {
	root *html.Node
	head *html.Node
}

// ParseDocument parses a full HTML page. Pages without a head element are
// rejected; the session has nowhere to publish tags.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	head := findElement(root, "head")
	if head == nil {
		return nil, fmt.Errorf("document has no head element")
	}
	return &Document{root: root, head: head}, nil
}

// ParseDocumentString parses a page held in memory.
func ParseDocumentString(page string) (*Document, error) {
	return ParseDocument(strings.NewReader(page))
}

// Title returns the current document title, or "" when no title tag exists.
func (d *Document) Title() string {
	title := findElement(d.head, "title")
	if title == nil {
		return ""
	}
	return textContent(title)
}

// SetTitle replaces the document title, creating the tag when absent.
func (d *Document) SetTitle(value string) {
	title := findElement(d.head, "title")
	if title == nil {
		title = &html.Node{Type: html.ElementNode, Data: "title"}
		d.head.AppendChild(title)
	}
	setTextContent(title, value)
}

// FindTag locates the first head element matching tag[attrKey="attrValue"].
func (d *Document) FindTag(tag, attrKey, attrValue string) *html.Node {
	for n := d.head.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode || n.Data != tag {
			continue
		}
		if attr(n, attrKey) == attrValue {
			return n
		}
	}
	return nil
}

// AppendTag inserts a node at the end of the head.
func (d *Document) AppendTag(n *html.Node) {
	d.head.AppendChild(n)
}

// RemoveTag detaches a node from its parent.
func (d *Document) RemoveTag(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Render serializes the whole page.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderString serializes the whole page into memory.
func (d *Document) RenderString() (string, error) {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func copyAttrs(attrs []html.Attribute) []html.Attribute {
	out := make([]html.Attribute, len(attrs))
	copy(out, attrs)
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func setTextContent(n *html.Node, value string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: value})
}
