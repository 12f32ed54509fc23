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

// BlogStore handles journal posts and the category vocabulary.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

const blogColumns = `id, slug, title, subtitle, excerpt, category, date, read_time,
	image, content_text, content_html, status, created_at, updated_at`

func scanBlogPost(scanner interface{ Scan(...any) error }) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := scanner.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Subtitle, &p.Excerpt, &p.Category, &p.Date,
		&p.ReadTime, &p.Image, &p.ContentText, &p.ContentHTML, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID.
func (s *BlogStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	if p.Status == "" {
		p.Status = models.BlogStatusDraft
	}

	row := s.db.QueryRow(`
		INSERT INTO blog_posts (slug, title, subtitle, excerpt, category, date,
			read_time, image, content_text, content_html, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+blogColumns,
		p.Slug, p.Title, p.Subtitle, p.Excerpt, p.Category, p.Date,
		p.ReadTime, p.Image, p.ContentText, p.ContentHTML, p.Status,
	)
	created, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return created, nil
}

// List returns posts of any status, newest first, capped at limit.
func (s *BlogStore) List(limit int) ([]models.BlogPost, error) {
	return s.list(`SELECT `+blogColumns+` FROM blog_posts ORDER BY created_at DESC LIMIT $1`, limit)
}

// ListPublished returns published posts, newest first, capped at limit.
// Used by the public journal page.
func (s *BlogStore) ListPublished(limit int) ([]models.BlogPost, error) {
	return s.list(`
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE status = 'published'
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
}

func (s *BlogStore) list(query string, args ...any) ([]models.BlogPost, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by UUID. Returns nil if not found.
func (s *BlogStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a published post by slug. Used by the public
// article page; drafts are invisible here.
func (s *BlogStore) FindBySlug(slug string) (*models.BlogPost, error) {
	row := s.db.QueryRow(`
		SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1 AND status = 'published'
	`, slug)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// BlogPatch carries the editable post fields. Nil leaves a field
// unchanged; a pointer to the empty string clears a nullable one.
type BlogPatch struct {
	Slug        *string
	Title       *string
	Subtitle    *string
	Excerpt     *string
	Category    *string
	Date        *string
	ReadTime    *string
	Image       *string
	ContentText *string
	ContentHTML *string
	Status      *models.BlogStatus
}

// Update applies a sparse patch and returns the number of rows changed.
// Zero means no row with that id exists.
func (s *BlogStore) Update(id uuid.UUID, patch BlogPatch) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE blog_posts SET
			slug = COALESCE($1, slug),
			title = COALESCE($2, title),
			subtitle = COALESCE($3, subtitle),
			excerpt = COALESCE($4, excerpt),
			category = COALESCE($5, category),
			date = COALESCE($6, date),
			read_time = COALESCE($7, read_time),
			image = COALESCE($8, image),
			content_text = COALESCE($9, content_text),
			content_html = COALESCE($10, content_html),
			status = COALESCE($11, status),
			updated_at = NOW()
		WHERE id = $12
	`, patch.Slug, patch.Title, patch.Subtitle, patch.Excerpt, patch.Category,
		patch.Date, patch.ReadTime, patch.Image, patch.ContentText,
		patch.ContentHTML, patch.Status, id)
	if err != nil {
		return 0, fmt.Errorf("update blog post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update blog post rows: %w", err)
	}
	return n, nil
}

// Delete removes a post and returns the number of rows removed.
func (s *BlogStore) Delete(id uuid.UUID) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete blog post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete blog post rows: %w", err)
	}
	return n, nil
}

// ListCategories returns the category vocabulary ordered by name.
func (s *BlogStore) ListCategories() ([]models.BlogCategory, error) {
	rows, err := s.db.Query(`SELECT id, name, slug, created_at FROM blog_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list blog categories: %w", err)
	}
	defer rows.Close()

	var items []models.BlogCategory
	for rows.Next() {
		var c models.BlogCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blog category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// CreateCategory adds a vocabulary entry.
func (s *BlogStore) CreateCategory(name, slug string) (*models.BlogCategory, error) {
	c := &models.BlogCategory{}
	err := s.db.QueryRow(`
		INSERT INTO blog_categories (name, slug)
		VALUES ($1, $2)
		RETURNING id, name, slug, created_at
	`, name, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create blog category: %w", err)
	}
	return c, nil
}

// DeleteCategory removes a vocabulary entry and returns the number of
// rows removed. Posts keep their category string; it simply stops being
// offered in the editor.
func (s *BlogStore) DeleteCategory(id uuid.UUID) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM blog_categories WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete blog category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete blog category rows: %w", err)
	}
	return n, nil
}
