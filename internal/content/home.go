// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
	"strings"
)

// AnimatedOverlay configures the intro animation shown on first visit.
type AnimatedOverlay struct {
	Enabled bool     `json:"enabled"`
	Phrases []string `json:"phrases,omitempty"`
}

// HomeDescription is the descriptive block under the hero tagline. The
// adjectives feed the rotating word animation.
type HomeDescription struct {
	Lead       string   `json:"lead,omitempty"`
	Text       string   `json:"text,omitempty"`
	Adjectives []string `json:"adjectives"`
}

// HomeHero is the hero block of the home page.
type HomeHero struct {
	Tagline     string          `json:"tagline"`
	Description HomeDescription `json:"description"`
}

// HomeContact is the contact block of the home page.
type HomeContact struct {
	Title   string `json:"title,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// HomeContent is the editable document behind the home page.
type HomeContent struct {
	AnimatedOverlay AnimatedOverlay `json:"animatedOverlay"`
	Hero            HomeHero        `json:"hero"`
	Contact         HomeContact     `json:"contact"`
}

// ParseHomeContent decodes and validates a home-page document.
func ParseHomeContent(raw []byte) (*HomeContent, error) {
	c := &HomeContent{}
	if err := decode(raw, c); err != nil {
		return nil, fmt.Errorf("главная страница: %w", err)
	}
	if strings.TrimSpace(c.Hero.Tagline) == "" {
		return nil, errors.New("главная страница: заполните слоган")
	}
	return c, nil
}

// IsHomeContent reports whether raw is a valid home-page document.
func IsHomeContent(raw []byte) bool {
	_, err := ParseHomeContent(raw)
	return err == nil
}

// NormalizeHomeContent returns a canonical copy with trimmed strings and
// blank list entries dropped. It does NOT enforce the non-empty adjectives
// rule; that is a save-time policy applied by the admin handler against
// the previously stored document.
func NormalizeHomeContent(c *HomeContent) *HomeContent {
	return &HomeContent{
		AnimatedOverlay: AnimatedOverlay{
			Enabled: c.AnimatedOverlay.Enabled,
			Phrases: cleanList(c.AnimatedOverlay.Phrases),
		},
		Hero: HomeHero{
			Tagline: strings.TrimSpace(c.Hero.Tagline),
			Description: HomeDescription{
				Lead:       strings.TrimSpace(c.Hero.Description.Lead),
				Text:       strings.TrimSpace(c.Hero.Description.Text),
				Adjectives: cleanList(c.Hero.Description.Adjectives),
			},
		},
		Contact: HomeContact{
			Title:   strings.TrimSpace(c.Contact.Title),
			Phone:   strings.TrimSpace(c.Contact.Phone),
			Email:   strings.TrimSpace(c.Contact.Email),
			Address: strings.TrimSpace(c.Contact.Address),
		},
	}
}

// CloneHomeContent deep-copies a home document without normalizing it.
func CloneHomeContent(c *HomeContent) *HomeContent {
	out := *c
	out.AnimatedOverlay.Phrases = append([]string(nil), c.AnimatedOverlay.Phrases...)
	out.Hero.Description.Adjectives = append([]string(nil), c.Hero.Description.Adjectives...)
	return &out
}
