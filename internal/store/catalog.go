// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"arthaus/internal/models"
)

// CatalogStore handles product cards. Tags are stored as a JSONB array
// so they round-trip through database/sql without array support.
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore creates a new CatalogStore with the given database connection.
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

const catalogColumns = `id, title, category, description, image, price, href,
	tags, sort_order, visible, created_at, updated_at`

func scanCatalogItem(scanner interface{ Scan(...any) error }) (*models.CatalogItem, error) {
	it := &models.CatalogItem{}
	var tags []byte
	err := scanner.Scan(
		&it.ID, &it.Title, &it.Category, &it.Description, &it.Image, &it.Price,
		&it.Href, &tags, &it.SortOrder, &it.Visible, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &it.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if it.Tags == nil {
		it.Tags = []string{}
	}
	return it, nil
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

// Create inserts a new item and returns it with the generated ID.
func (s *CatalogStore) Create(it *models.CatalogItem) (*models.CatalogItem, error) {
	tags, err := encodeTags(it.Tags)
	if err != nil {
		return nil, fmt.Errorf("create catalog item: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO catalog_items (title, category, description, image, price, href,
			tags, sort_order, visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+catalogColumns,
		it.Title, it.Category, it.Description, it.Image, it.Price, it.Href,
		tags, it.SortOrder, it.Visible,
	)
	created, err := scanCatalogItem(row)
	if err != nil {
		return nil, fmt.Errorf("create catalog item: %w", err)
	}
	return created, nil
}

// List returns all items regardless of visibility, capped at limit.
func (s *CatalogStore) List(limit int) ([]models.CatalogItem, error) {
	return s.list(`
		SELECT `+catalogColumns+`
		FROM catalog_items
		ORDER BY sort_order ASC, created_at DESC
		LIMIT $1
	`, limit)
}

// ListVisible returns the items shown on the public catalog, ordered by
// sort_order then recency.
func (s *CatalogStore) ListVisible() ([]models.CatalogItem, error) {
	return s.list(`
		SELECT ` + catalogColumns + `
		FROM catalog_items
		WHERE visible
		ORDER BY sort_order ASC, created_at DESC
	`)
}

func (s *CatalogStore) list(query string, args ...any) ([]models.CatalogItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		it, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// FindByID retrieves an item by UUID. Returns nil if not found.
func (s *CatalogStore) FindByID(id uuid.UUID) (*models.CatalogItem, error) {
	row := s.db.QueryRow(`SELECT `+catalogColumns+` FROM catalog_items WHERE id = $1`, id)
	it, err := scanCatalogItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find catalog item by id: %w", err)
	}
	return it, nil
}

// CatalogPatch carries the editable item fields. Nil leaves a field
// unchanged.
type CatalogPatch struct {
	Title       *string
	Category    *string
	Description *string
	Image       *string
	Price       *string
	Href        *string
	Tags        []string // nil = unchanged, empty = clear
	SortOrder   *int
	Visible     *bool
}

// Update applies a sparse patch and returns the number of rows changed.
// Zero means no row with that id exists.
func (s *CatalogStore) Update(id uuid.UUID, patch CatalogPatch) (int64, error) {
	var tags []byte
	if patch.Tags != nil {
		encoded, err := encodeTags(patch.Tags)
		if err != nil {
			return 0, fmt.Errorf("update catalog item: %w", err)
		}
		tags = encoded
	}

	res, err := s.db.Exec(`
		UPDATE catalog_items SET
			title = COALESCE($1, title),
			category = COALESCE($2, category),
			description = COALESCE($3, description),
			image = COALESCE($4, image),
			price = COALESCE($5, price),
			href = COALESCE($6, href),
			tags = COALESCE($7, tags),
			sort_order = COALESCE($8, sort_order),
			visible = COALESCE($9, visible),
			updated_at = NOW()
		WHERE id = $10
	`, patch.Title, patch.Category, patch.Description, patch.Image, patch.Price,
		patch.Href, tags, patch.SortOrder, patch.Visible, id)
	if err != nil {
		return 0, fmt.Errorf("update catalog item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update catalog item rows: %w", err)
	}
	return n, nil
}

// Delete removes an item and returns the number of rows removed.
func (s *CatalogStore) Delete(id uuid.UUID) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM catalog_items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete catalog item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete catalog item rows: %w", err)
	}
	return n, nil
}
