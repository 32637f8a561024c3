package transform

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

// markdownConverter is built once; goldmark instances are safe to share.
func markdownConverter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithXHTML()),
		)
	})
	return markdown
}

// MarkdownToHTML renders GitHub-flavoured Markdown to HTML. Raw HTML in the
// input is omitted.
func MarkdownToHTML(input string, _ Options) Result {
	if input == "" {
		return fail("input is empty")
	}

	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(input), &buf); err != nil {
		return fail("failed to render markdown: %v", err)
	}
	return Result{Output: buf.String()}
}
