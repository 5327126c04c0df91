// Package markdown turns post content into HTML that is safe to render.
// Locally authored content is markdown; content fetched from the Forum API is
// already HTML and is only sanitized.
package markdown

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	contentPolicy = newContentPolicy()
	textOnly      = bluemonday.StrictPolicy()
)

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "div", "strong", "em", "u", "del",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "code", "pre",
	)
	return p
}

// Sanitize keeps a small set of formatting elements, drops every attribute
// and keeps the text of anything it removes.
func Sanitize(dirty string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(dirty))
}

// HasPayload reports whether html contains any visible text.
func HasPayload(html string) bool {
	return strings.TrimSpace(textOnly.Sanitize(html)) != ""
}

// PlainText strips every tag and collapses whitespace.
func PlainText(content string) string {
	return strings.Join(strings.Fields(stdhtml.UnescapeString(textOnly.Sanitize(content))), " ")
}

type TextProcessor struct {
	md goldmark.Markdown
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	return &TextProcessor{md: md}
}

// Render converts markdown to sanitized HTML. The boolean is false when the
// result has no visible text.
func (tp *TextProcessor) Render(text string) (string, bool) {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		// goldmark only fails on writer errors; fall back to the raw text
		buf.Reset()
		buf.WriteString(text)
	}
	safe := Sanitize(buf.String())
	return safe, HasPayload(safe)
}
