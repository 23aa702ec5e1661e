package utils

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	articlePolicy = bluemonday.UGCPolicy()
	commentPolicy = bluemonday.StrictPolicy()
)

func init() {
	articlePolicy.AllowImages()
	articlePolicy.AddTargetBlankToFullyQualifiedLinks(true)
	articlePolicy.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown mengubah isi artikel (markdown) menjadi HTML yang
// sudah disanitasi, untuk response detail artikel.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return source // Fallback
	}
	return string(articlePolicy.SanitizeBytes(buf.Bytes()))
}

// SanitizeComment membuang semua markup dari isi komentar. Komentar
// disimpan dan ditampilkan sebagai teks polos.
func SanitizeComment(content string) string {
	return commentPolicy.Sanitize(content)
}
