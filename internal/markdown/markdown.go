// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders blog post bodies. ToHTML produces the
// published HTML; PlainText strips markup so excerpts and read-time
// estimates are computed over prose, not syntax.
package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // tables, strikethrough, autolinks
		extension.Typographer, // smart quotes and dashes
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // posts imported from the old site contain raw HTML
	),
)

// ToHTML converts Markdown source into HTML. Raw HTML embedded in the
// Markdown passes through unchanged.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var (
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	fenceRe  = regexp.MustCompile("(?s)```.*?```")
	inlineRe = regexp.MustCompile("`([^`]*)`")
	linkRe   = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	markRe   = regexp.MustCompile(`[*_~#>]+`)
)

// PlainText reduces Markdown source to its prose content: fenced code
// blocks are removed entirely, links keep their label, and emphasis,
// heading and quote markers are stripped.
func PlainText(source string) string {
	s := fenceRe.ReplaceAllString(source, " ")
	s = inlineRe.ReplaceAllString(s, "$1")
	s = linkRe.ReplaceAllString(s, "$1")
	s = tagRe.ReplaceAllString(s, " ")
	s = markRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
