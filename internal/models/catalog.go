// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CatalogItem is one product card in the catalog. Category holds a
// catalog section id ("painting", "photo", ...); Tags feed the filter
// chips on the section pages.
type CatalogItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Price       *string   `json:"price,omitempty"` // formatted, e.g. "от 45 000 ₽"
	Href        *string   `json:"href,omitempty"`
	Tags        []string  `json:"tags"`
	SortOrder   int       `json:"sort_order"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
