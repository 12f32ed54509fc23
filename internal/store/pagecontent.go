// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arthaus/internal/models"
)

// PageContentStore manages the editable page documents. One JSONB row
// per page key; the document shape is validated by the content package
// before anything reaches this store.
type PageContentStore struct {
	db *sql.DB
}

// NewPageContentStore returns a new PageContentStore backed by the given database.
func NewPageContentStore(db *sql.DB) *PageContentStore {
	return &PageContentStore{db: db}
}

// Get returns the stored document for a page, or nil if none exists.
func (s *PageContentStore) Get(page string) (*models.PageContent, error) {
	pc := &models.PageContent{}
	var data []byte
	err := s.db.QueryRow(`
		SELECT page, data, updated_by, updated_at FROM page_content WHERE page = $1
	`, page).Scan(&pc.Page, &data, &pc.UpdatedBy, &pc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get page content: %w", err)
	}
	pc.Data = json.RawMessage(data)
	return pc, nil
}

// Set upserts the document for a page, recording who saved it.
func (s *PageContentStore) Set(page string, data json.RawMessage, updatedBy *uuid.UUID) error {
	_, err := s.db.Exec(`
		INSERT INTO page_content (page, data, updated_by, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (page)
		DO UPDATE SET data = EXCLUDED.data, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at`,
		page, []byte(data), updatedBy, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set page content: %w", err)
	}
	return nil
}

// All returns every stored page document keyed by page.
func (s *PageContentStore) All() (map[string]models.PageContent, error) {
	rows, err := s.db.Query(`SELECT page, data, updated_by, updated_at FROM page_content ORDER BY page`)
	if err != nil {
		return nil, fmt.Errorf("list page content: %w", err)
	}
	defer rows.Close()

	out := make(map[string]models.PageContent)
	for rows.Next() {
		var pc models.PageContent
		var data []byte
		if err := rows.Scan(&pc.Page, &data, &pc.UpdatedBy, &pc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan page content: %w", err)
		}
		pc.Data = json.RawMessage(data)
		out[pc.Page] = pc
	}
	return out, rows.Err()
}
