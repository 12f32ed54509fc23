// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arthaus/internal/coerce"
	"arthaus/internal/markdown"
	"arthaus/internal/models"
	"arthaus/internal/slug"
	"arthaus/internal/store"
	"arthaus/internal/text"
)

// Blog groups handlers for blog posts and their categories.
type Blog struct {
	store *store.BlogStore
}

// NewBlog creates a new Blog handler group.
func NewBlog(blogStore *store.BlogStore) *Blog {
	return &Blog{store: blogStore}
}

// PublicList returns published posts, newest first.
func (h *Blog) PublicList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListPublished(limitParam(r, 50, 200))
	if err != nil {
		slog.Error("blog public list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// PublicBySlug returns a single published post.
func (h *Blog) PublicBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("blog find by slug failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "статья не найдена")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

// AdminList returns all posts including drafts.
func (h *Blog) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(limitParam(r, 100, 500))
	if err != nil {
		slog.Error("blog admin list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// AdminCreate creates a post. The slug derives from the title unless
// provided; read_time and excerpt derive from the markdown body when
// left blank.
func (h *Blog) AdminCreate(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	title := coerce.String(body["title"])
	if title == "" {
		writeError(w, http.StatusBadRequest, "укажите заголовок")
		return
	}

	slugVal := coerce.String(body["slug"])
	if slugVal == "" {
		slugVal = slug.Generate(title)
	}

	status := models.BlogStatusDraft
	if v, ok := body["status"]; ok {
		parsed, ok := parseBlogStatus(coerce.String(v))
		if !ok {
			writeError(w, http.StatusBadRequest, "недопустимый статус")
			return
		}
		status = parsed
	}

	post := &models.BlogPost{
		Slug:     slugVal,
		Title:    title,
		Subtitle: coerce.NullString(body["subtitle"]),
		Excerpt:  coerce.NullString(body["excerpt"]),
		Category: coerce.NullString(body["category"]),
		Date:     coerce.NullString(body["date"]),
		Image:    coerce.NullString(body["image"]),
		Status:   status,
	}
	if v, ok := bodyKey(body, "read_time", "readTime"); ok {
		post.ReadTime = coerce.NullString(v)
	}
	if v, ok := bodyKey(body, "content_text", "contentText"); ok {
		post.ContentText = coerce.NullString(v)
	}

	if post.ContentText != nil {
		html, err := markdown.ToHTML(*post.ContentText)
		if err != nil {
			writeError(w, http.StatusBadRequest, "не удалось обработать текст статьи")
			return
		}
		post.ContentHTML = &html

		plain := markdown.PlainText(*post.ContentText)
		if post.ReadTime == nil {
			rt := text.ReadTime(plain)
			post.ReadTime = &rt
		}
		if post.Excerpt == nil {
			ex := text.Excerpt(plain, 0)
			post.Excerpt = &ex
		}
	}

	created, err := h.store.Create(post)
	if err != nil {
		slog.Error("blog create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"item": created})
}

// AdminGet returns a single post by id, draft or published.
func (h *Blog) AdminGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	item, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("blog find failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "статья не найдена")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

// AdminUpdate applies a sparse patch. A new markdown body re-renders
// the HTML and re-derives read_time and excerpt unless those fields
// come with the patch.
func (h *Blog) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	var patch store.BlogPatch

	if v, ok := body["title"]; ok {
		title := coerce.String(v)
		if title == "" {
			writeError(w, http.StatusBadRequest, "укажите заголовок")
			return
		}
		patch.Title = &title
	}
	if v, ok := body["slug"]; ok {
		s := coerce.String(v)
		if s == "" && patch.Title != nil {
			s = slug.Generate(*patch.Title)
		}
		if s != "" {
			patch.Slug = &s
		}
	}
	if v, ok := body["subtitle"]; ok {
		s := coerce.String(v)
		patch.Subtitle = &s
	}
	if v, ok := body["excerpt"]; ok {
		s := coerce.String(v)
		patch.Excerpt = &s
	}
	if v, ok := body["category"]; ok {
		s := coerce.String(v)
		patch.Category = &s
	}
	if v, ok := body["date"]; ok {
		s := coerce.String(v)
		patch.Date = &s
	}
	if v, ok := body["image"]; ok {
		s := coerce.String(v)
		patch.Image = &s
	}
	if v, ok := bodyKey(body, "read_time", "readTime"); ok {
		s := coerce.String(v)
		patch.ReadTime = &s
	}
	if v, ok := body["status"]; ok {
		status, ok := parseBlogStatus(coerce.String(v))
		if !ok {
			writeError(w, http.StatusBadRequest, "недопустимый статус")
			return
		}
		patch.Status = &status
	}
	if v, ok := bodyKey(body, "content_text", "contentText"); ok {
		contentText := coerce.String(v)
		patch.ContentText = &contentText

		html, err := markdown.ToHTML(contentText)
		if err != nil {
			writeError(w, http.StatusBadRequest, "не удалось обработать текст статьи")
			return
		}
		patch.ContentHTML = &html

		plain := markdown.PlainText(contentText)
		if patch.ReadTime == nil {
			rt := text.ReadTime(plain)
			patch.ReadTime = &rt
		}
		if patch.Excerpt == nil {
			ex := text.Excerpt(plain, 0)
			patch.Excerpt = &ex
		}
	}

	changed, err := h.store.Update(id, patch)
	if err != nil {
		slog.Error("blog update failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if changed == 0 {
		writeError(w, http.StatusNotFound, "статья не найдена")
		return
	}

	item, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("blog reload failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

// AdminDelete removes a post.
func (h *Blog) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	changed, err := h.store.Delete(id)
	if err != nil {
		slog.Error("blog delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if changed == 0 {
		writeError(w, http.StatusNotFound, "статья не найдена")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// CategoriesList returns the blog categories.
func (h *Blog) CategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListCategories()
	if err != nil {
		slog.Error("blog categories list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CategoryCreate adds a category; the slug derives from the name unless
// provided.
func (h *Blog) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	name := coerce.String(body["name"])
	if name == "" {
		writeError(w, http.StatusBadRequest, "укажите название")
		return
	}

	slugVal := coerce.String(body["slug"])
	if slugVal == "" {
		slugVal = slug.Generate(name)
	}

	created, err := h.store.CreateCategory(name, slugVal)
	if err != nil {
		slog.Error("blog category create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": created})
}

// CategoryDelete removes a category.
func (h *Blog) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	changed, err := h.store.DeleteCategory(id)
	if err != nil {
		slog.Error("blog category delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if changed == 0 {
		writeError(w, http.StatusNotFound, "категория не найдена")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// parseBlogStatus validates a status string from a request body.
func parseBlogStatus(s string) (models.BlogStatus, bool) {
	switch models.BlogStatus(s) {
	case models.BlogStatusDraft, models.BlogStatusPublished:
		return models.BlogStatus(s), true
	}
	return "", false
}

// bodyKey reads a field under either of two names. The admin frontend
// sends camelCase, the import scripts snake_case.
func bodyKey(body map[string]any, snake, camel string) (any, bool) {
	if v, ok := body[snake]; ok {
		return v, true
	}
	v, ok := body[camel]
	return v, ok
}
