// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
	"strings"
)

// PaymentHero is the heading block of the payment & delivery page.
type PaymentHero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// PaymentFeature is one delivery-option card.
type PaymentFeature struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// ConciergeSection describes the white-glove delivery service block.
type ConciergeSection struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// LogisticsSection describes shipping partners and terms.
type LogisticsSection struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Partners    []string `json:"partners,omitempty"`
}

// PaymentLogo is one payment-method logo entry.
type PaymentLogo struct {
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// PaymentSection describes accepted payment methods.
type PaymentSection struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Logos       []PaymentLogo `json:"logos"`
	TrustBadges []string      `json:"trustBadges,omitempty"`
}

// PaymentDeliveryContent is the editable document behind the payment &
// delivery page.
type PaymentDeliveryContent struct {
	Hero      PaymentHero      `json:"hero"`
	Features  []PaymentFeature `json:"features"`
	Concierge ConciergeSection `json:"concierge"`
	Logistics LogisticsSection `json:"logistics"`
	Payment   PaymentSection   `json:"payment"`
}

// ParsePaymentDeliveryContent decodes and validates a payment & delivery
// document.
func ParsePaymentDeliveryContent(raw []byte) (*PaymentDeliveryContent, error) {
	c := &PaymentDeliveryContent{}
	if err := decode(raw, c); err != nil {
		return nil, fmt.Errorf("страница «Оплата и доставка»: %w", err)
	}
	if strings.TrimSpace(c.Hero.Title) == "" {
		return nil, errors.New("страница «Оплата и доставка»: заполните заголовок")
	}
	return c, nil
}

// IsPaymentDeliveryContent reports whether raw is a valid payment &
// delivery document.
func IsPaymentDeliveryContent(raw []byte) bool {
	_, err := ParsePaymentDeliveryContent(raw)
	return err == nil
}

// NormalizePaymentDeliveryContent returns a canonical copy. Blank entries
// are filtered from every list-valued sub-field; a feature survives if
// either its title or its description is non-blank; a logo is dropped only
// when name, image and alt are all blank.
func NormalizePaymentDeliveryContent(c *PaymentDeliveryContent) *PaymentDeliveryContent {
	out := &PaymentDeliveryContent{
		Hero: PaymentHero{
			Title:       strings.TrimSpace(c.Hero.Title),
			Subtitle:    strings.TrimSpace(c.Hero.Subtitle),
			Description: strings.TrimSpace(c.Hero.Description),
		},
		Concierge: ConciergeSection{
			Title:       strings.TrimSpace(c.Concierge.Title),
			Description: strings.TrimSpace(c.Concierge.Description),
			Highlights:  cleanList(c.Concierge.Highlights),
		},
		Logistics: LogisticsSection{
			Title:       strings.TrimSpace(c.Logistics.Title),
			Description: strings.TrimSpace(c.Logistics.Description),
			Partners:    cleanList(c.Logistics.Partners),
		},
		Payment: PaymentSection{
			Title:       strings.TrimSpace(c.Payment.Title),
			Description: strings.TrimSpace(c.Payment.Description),
			TrustBadges: cleanList(c.Payment.TrustBadges),
			Logos:       make([]PaymentLogo, 0, len(c.Payment.Logos)),
		},
		Features: make([]PaymentFeature, 0, len(c.Features)),
	}

	for _, f := range c.Features {
		n := PaymentFeature{
			Title:       strings.TrimSpace(f.Title),
			Description: strings.TrimSpace(f.Description),
			Bullets:     cleanList(f.Bullets),
		}
		if n.Title == "" && n.Description == "" {
			continue
		}
		out.Features = append(out.Features, n)
	}

	for _, l := range c.Payment.Logos {
		n := PaymentLogo{
			Name:  strings.TrimSpace(l.Name),
			Image: strings.TrimSpace(l.Image),
			Alt:   strings.TrimSpace(l.Alt),
		}
		if n.Name == "" && n.Image == "" && n.Alt == "" {
			continue
		}
		out.Payment.Logos = append(out.Payment.Logos, n)
	}

	return out
}

// ClonePaymentDeliveryContent deep-copies a payment & delivery document
// without normalizing it.
func ClonePaymentDeliveryContent(c *PaymentDeliveryContent) *PaymentDeliveryContent {
	out := *c
	out.Features = make([]PaymentFeature, len(c.Features))
	for i, f := range c.Features {
		cf := f
		cf.Bullets = append([]string(nil), f.Bullets...)
		out.Features[i] = cf
	}
	out.Concierge.Highlights = append([]string(nil), c.Concierge.Highlights...)
	out.Logistics.Partners = append([]string(nil), c.Logistics.Partners...)
	out.Payment.Logos = append([]PaymentLogo(nil), c.Payment.Logos...)
	out.Payment.TrustBadges = append([]string(nil), c.Payment.TrustBadges...)
	return &out
}
