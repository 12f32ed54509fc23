// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"arthaus/internal/models"
)

// RequestStore handles inbound form submissions. Rows are created by
// the public submit handler; admins only touch status, priority and
// notes afterwards.
type RequestStore struct {
	db *sql.DB
}

// NewRequestStore creates a new RequestStore with the given database connection.
func NewRequestStore(db *sql.DB) *RequestStore {
	return &RequestStore{db: db}
}

const requestColumns = `id, form_type, name, email, phone, subject, message,
	product, price, options_json, notes, status, priority, created_at`

func scanRequest(scanner interface{ Scan(...any) error }) (*models.Request, error) {
	r := &models.Request{}
	err := scanner.Scan(
		&r.ID, &r.FormType, &r.Name, &r.Email, &r.Phone, &r.Subject, &r.Message,
		&r.Product, &r.Price, &r.OptionsJSON, &r.Notes, &r.Status, &r.Priority, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Create inserts a new submission and returns it with the generated ID.
func (s *RequestStore) Create(r *models.Request) (*models.Request, error) {
	if r.Status == "" {
		r.Status = models.RequestStatusNew
	}
	if r.Priority == "" {
		r.Priority = models.RequestPriorityNormal
	}

	row := s.db.QueryRow(`
		INSERT INTO requests (form_type, name, email, phone, subject, message,
			product, price, options_json, notes, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+requestColumns,
		r.FormType, r.Name, r.Email, r.Phone, r.Subject, r.Message,
		r.Product, r.Price, r.OptionsJSON, r.Notes, r.Status, r.Priority,
	)
	created, err := scanRequest(row)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return created, nil
}

// List returns submissions ordered newest first, capped at limit.
func (s *RequestStore) List(limit int) ([]models.Request, error) {
	rows, err := s.db.Query(`
		SELECT `+requestColumns+`
		FROM requests
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var items []models.Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// FindByID retrieves a single submission. Returns nil if not found.
func (s *RequestStore) FindByID(id uuid.UUID) (*models.Request, error) {
	row := s.db.QueryRow(`SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	r, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find request by id: %w", err)
	}
	return r, nil
}

// RequestPatch carries the admin-mutable fields. A nil field is left
// unchanged; a pointer to the empty string clears notes.
type RequestPatch struct {
	Status   *models.RequestStatus
	Priority *models.RequestPriority
	Notes    *string
}

// Update applies a sparse patch and returns the number of rows changed.
// Zero means no row with that id exists.
func (s *RequestStore) Update(id uuid.UUID, patch RequestPatch) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE requests SET
			status = COALESCE($1, status),
			priority = COALESCE($2, priority),
			notes = COALESCE($3, notes)
		WHERE id = $4
	`, patch.Status, patch.Priority, patch.Notes, id)
	if err != nil {
		return 0, fmt.Errorf("update request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update request rows: %w", err)
	}
	return n, nil
}

// Delete removes a submission and returns the number of rows removed.
func (s *RequestStore) Delete(id uuid.UUID) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete request rows: %w", err)
	}
	return n, nil
}
