// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package text provides the derived-field helpers used by the blog
// editor: read-time estimation and excerpt building. All functions are
// pure string transforms.
package text

import (
	"fmt"
	"strings"
)

const (
	// wordsPerMinute is the assumed reading speed.
	wordsPerMinute = 200

	// DefaultExcerptBudget is the character budget for auto-built excerpts.
	DefaultExcerptBudget = 200
)

// ReadTime estimates how long a text takes to read and formats the
// result for the Russian-language UI, e.g. "4 мин". Minimum one minute.
func ReadTime(s string) string {
	words := len(strings.Fields(s))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d мин", minutes)
}

// Excerpt truncates s to at most budget runes, cutting at a word
// boundary and appending an ellipsis when anything was cut. Whitespace
// runs are collapsed first so multi-line post bodies produce a single
// line.
func Excerpt(s string, budget int) string {
	if budget <= 0 {
		budget = DefaultExcerptBudget
	}

	collapsed := strings.Join(strings.Fields(s), " ")
	runes := []rune(collapsed)
	if len(runes) <= budget {
		return collapsed
	}

	cut := string(runes[:budget])
	// Back off to the last full word.
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:—-") + "…"
}
