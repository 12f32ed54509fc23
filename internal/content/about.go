// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
	"strings"
)

// AboutHero is the opening block of the "О нас" page.
type AboutHero struct {
	Subtitle    string `json:"subtitle"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryCard is one product-direction card on the about page.
type CategoryCard struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Href        string `json:"href,omitempty"`
}

// AlphabetItem is one letter of the "алфавит искусства" gallery.
type AlphabetItem struct {
	Letter           string `json:"letter"`
	Title            string `json:"title"`
	Image            string `json:"image"`
	Video            string `json:"video,omitempty"`
	Caption          string `json:"caption,omitempty"`
	CaptionLinkLabel string `json:"captionLinkLabel,omitempty"`
	CaptionLinkHref  string `json:"captionLinkHref,omitempty"`
	Description      string `json:"description"`
}

// AboutOutro is the closing block of the about page.
type AboutOutro struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutContent is the editable document behind the about page.
type AboutContent struct {
	Hero       AboutHero      `json:"hero"`
	Categories []CategoryCard `json:"categories"`
	Alphabet   []AlphabetItem `json:"alphabet"`
	Outro      AboutOutro     `json:"outro"`
}

// ParseAboutContent decodes and validates an about-page document.
func ParseAboutContent(raw []byte) (*AboutContent, error) {
	c := &AboutContent{}
	if err := decode(raw, c); err != nil {
		return nil, fmt.Errorf("страница «О нас»: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("страница «О нас»: %w", err)
	}
	return c, nil
}

// IsAboutContent reports whether raw is a valid about-page document.
func IsAboutContent(raw []byte) bool {
	_, err := ParseAboutContent(raw)
	return err == nil
}

func (c *AboutContent) validate() error {
	if strings.TrimSpace(c.Hero.Title) == "" ||
		strings.TrimSpace(c.Hero.Subtitle) == "" ||
		strings.TrimSpace(c.Hero.Description) == "" {
		return errors.New("заполните подзаголовок, заголовок и описание вступления")
	}
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Title) == "" ||
			strings.TrimSpace(cat.Image) == "" ||
			strings.TrimSpace(cat.Description) == "" {
			return fmt.Errorf("категория %d: нужны название, изображение и описание", i+1)
		}
	}
	for i, it := range c.Alphabet {
		if strings.TrimSpace(it.Letter) == "" {
			return fmt.Errorf("элемент алфавита %d: не указана буква", i+1)
		}
		if strings.TrimSpace(it.Title) == "" ||
			strings.TrimSpace(it.Image) == "" ||
			strings.TrimSpace(it.Description) == "" {
			return fmt.Errorf("элемент алфавита %d: нужны название, изображение и описание", i+1)
		}
	}
	if strings.TrimSpace(c.Outro.Title) == "" || strings.TrimSpace(c.Outro.Description) == "" {
		return errors.New("заполните заголовок и описание завершающего блока")
	}
	return nil
}

// NormalizeAboutContent returns a canonical copy: trimmed strings, blank
// optional fields dropped, fully blank cards pruned. The input is not
// mutated.
func NormalizeAboutContent(c *AboutContent) *AboutContent {
	out := &AboutContent{
		Hero: AboutHero{
			Subtitle:    strings.TrimSpace(c.Hero.Subtitle),
			Title:       strings.TrimSpace(c.Hero.Title),
			Description: strings.TrimSpace(c.Hero.Description),
		},
		Outro: AboutOutro{
			Title:       strings.TrimSpace(c.Outro.Title),
			Description: strings.TrimSpace(c.Outro.Description),
		},
		Categories: make([]CategoryCard, 0, len(c.Categories)),
		Alphabet:   make([]AlphabetItem, 0, len(c.Alphabet)),
	}

	for _, cat := range c.Categories {
		n := CategoryCard{
			Title:       strings.TrimSpace(cat.Title),
			Image:       strings.TrimSpace(cat.Image),
			Description: strings.TrimSpace(cat.Description),
			Href:        strings.TrimSpace(cat.Href),
		}
		if n.Title == "" && n.Image == "" && n.Description == "" {
			continue
		}
		out.Categories = append(out.Categories, n)
	}

	for _, it := range c.Alphabet {
		n := AlphabetItem{
			Letter:           strings.TrimSpace(it.Letter),
			Title:            strings.TrimSpace(it.Title),
			Image:            strings.TrimSpace(it.Image),
			Video:            strings.TrimSpace(it.Video),
			Caption:          strings.TrimSpace(it.Caption),
			CaptionLinkLabel: strings.TrimSpace(it.CaptionLinkLabel),
			CaptionLinkHref:  strings.TrimSpace(it.CaptionLinkHref),
			Description:      strings.TrimSpace(it.Description),
		}
		if n.Letter == "" && n.Title == "" && n.Image == "" && n.Description == "" {
			continue
		}
		out.Alphabet = append(out.Alphabet, n)
	}

	return out
}

// CloneAboutContent deep-copies a document without normalizing it, so form
// state never aliases the last-saved snapshot.
func CloneAboutContent(c *AboutContent) *AboutContent {
	out := *c
	out.Categories = append([]CategoryCard(nil), c.Categories...)
	out.Alphabet = append([]AlphabetItem(nil), c.Alphabet...)
	return &out
}
