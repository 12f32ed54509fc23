// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PageContent is one editable page document. The document itself is an
// opaque JSONB blob whose shape is owned by the content package; this
// row only tracks which page it belongs to and who saved it last.
type PageContent struct {
	Page      string          `json:"page"` // content.Kind value
	Data      json.RawMessage `json:"data"`
	UpdatedBy *uuid.UUID      `json:"updated_by,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
