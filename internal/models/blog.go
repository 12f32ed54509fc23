// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogStatus represents the publishing state of a post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogPost is a journal article. Body text is Markdown in ContentText;
// ContentHTML is the rendered form served to the public site. ReadTime
// and Excerpt are derived from the body when the editor leaves them
// blank.
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Subtitle    *string    `json:"subtitle,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Date        *string    `json:"date,omitempty"` // display date, e.g. "12 мая 2026"
	ReadTime    *string    `json:"read_time,omitempty"`
	Image       *string    `json:"image,omitempty"`
	ContentText *string    `json:"content_text,omitempty"`
	ContentHTML *string    `json:"content_html,omitempty"`
	Status      BlogStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPublished returns true if the post is visible on the public site.
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogStatusPublished
}

// BlogCategory is a vocabulary entry for the journal category filter.
type BlogCategory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
