// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFAQCategory is the fallback vocabulary used when the admin saves
// an empty category list.
const DefaultFAQCategory = "Общее"

// FAQHero is the heading block of the FAQ page.
type FAQHero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// FAQItem is one question/answer pair, filed under a category.
type FAQItem struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQCTA is the optional call-to-action block under the question list.
type FAQCTA struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
	ButtonHref  string `json:"buttonHref,omitempty"`
}

// FAQContent is the editable document behind the FAQ page.
type FAQContent struct {
	Hero       FAQHero   `json:"hero"`
	Categories []string  `json:"categories"`
	Items      []FAQItem `json:"items"`
	CTA        FAQCTA    `json:"cta"`
}

// ParseFAQContent decodes and validates a FAQ document. Items with blank
// question or answer are tolerated here; the normalizer prunes them.
func ParseFAQContent(raw []byte) (*FAQContent, error) {
	c := &FAQContent{}
	if err := decode(raw, c); err != nil {
		return nil, fmt.Errorf("страница FAQ: %w", err)
	}
	if strings.TrimSpace(c.Hero.Title) == "" {
		return nil, errors.New("страница FAQ: заполните заголовок")
	}
	return c, nil
}

// IsFAQContent reports whether raw is a valid FAQ document.
func IsFAQContent(raw []byte) bool {
	_, err := ParseFAQContent(raw)
	return err == nil
}

// NormalizeFAQContent returns a canonical copy: the category vocabulary is
// de-duplicated (first-seen casing wins) and never empty, items with blank
// question or answer are dropped, and every surviving item's category is
// resolved into the vocabulary; blank or unknown categories fall back to
// the first entry.
func NormalizeFAQContent(c *FAQContent) *FAQContent {
	categories := dedupeList(c.Categories)
	if len(categories) == 0 {
		categories = []string{DefaultFAQCategory}
	}

	items := make([]FAQItem, 0, len(c.Items))
	for _, it := range c.Items {
		n := FAQItem{
			Category: strings.TrimSpace(it.Category),
			Question: strings.TrimSpace(it.Question),
			Answer:   strings.TrimSpace(it.Answer),
		}
		if n.Question == "" || n.Answer == "" {
			continue
		}
		if n.Category == "" || !containsFold(categories, n.Category) {
			n.Category = categories[0]
		}
		items = append(items, n)
	}

	return &FAQContent{
		Hero: FAQHero{
			Title:       strings.TrimSpace(c.Hero.Title),
			Subtitle:    strings.TrimSpace(c.Hero.Subtitle),
			Description: strings.TrimSpace(c.Hero.Description),
		},
		Categories: categories,
		Items:      items,
		CTA: FAQCTA{
			Title:       strings.TrimSpace(c.CTA.Title),
			Description: strings.TrimSpace(c.CTA.Description),
			ButtonLabel: strings.TrimSpace(c.CTA.ButtonLabel),
			ButtonHref:  strings.TrimSpace(c.CTA.ButtonHref),
		},
	}
}

// CloneFAQContent deep-copies a FAQ document without normalizing it.
func CloneFAQContent(c *FAQContent) *FAQContent {
	out := *c
	out.Categories = append([]string(nil), c.Categories...)
	out.Items = append([]FAQItem(nil), c.Items...)
	return &out
}
