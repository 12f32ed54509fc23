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
	"arthaus/internal/models"
	"arthaus/internal/store"
)

// Catalog groups handlers for gallery catalog items.
type Catalog struct {
	store *store.CatalogStore
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(catalogStore *store.CatalogStore) *Catalog {
	return &Catalog{store: catalogStore}
}

// PublicList returns visible items in display order.
func (h *Catalog) PublicList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListVisible()
	if err != nil {
		slog.Error("catalog public list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// AdminList returns all items including hidden ones.
func (h *Catalog) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(limitParam(r, 200, 1000))
	if err != nil {
		slog.Error("catalog admin list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// AdminCreate creates an item. Tags accept a JSON array or a
// comma-separated string; sortOrder takes any numeric shape.
func (h *Catalog) AdminCreate(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	title := coerce.String(body["title"])
	if title == "" {
		writeError(w, http.StatusBadRequest, "укажите название")
		return
	}
	category := coerce.String(body["category"])
	if category == "" {
		writeError(w, http.StatusBadRequest, "укажите категорию")
		return
	}

	item := &models.CatalogItem{
		Title:       title,
		Category:    category,
		Description: coerce.NullString(body["description"]),
		Image:       coerce.NullString(body["image"]),
		Price:       coerce.NullString(body["price"]),
		Href:        coerce.NullString(body["href"]),
		Tags:        coerce.StringList(body["tags"]),
		Visible:     true,
	}
	if v, ok := bodyKey(body, "sort_order", "sortOrder"); ok {
		item.SortOrder = coerce.Int(v)
	}
	if v, ok := body["visible"]; ok {
		item.Visible = coerce.Bool(v)
	}

	created, err := h.store.Create(item)
	if err != nil {
		slog.Error("catalog create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": created})
}

// AdminGet returns a single item by id.
func (h *Catalog) AdminGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	item, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("catalog find failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "позиция не найдена")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

// AdminUpdate applies a sparse patch.
func (h *Catalog) AdminUpdate(w http.ResponseWriter, r *http.Request) {
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

	var patch store.CatalogPatch

	if v, ok := body["title"]; ok {
		title := coerce.String(v)
		if title == "" {
			writeError(w, http.StatusBadRequest, "укажите название")
			return
		}
		patch.Title = &title
	}
	if v, ok := body["category"]; ok {
		category := coerce.String(v)
		if category == "" {
			writeError(w, http.StatusBadRequest, "укажите категорию")
			return
		}
		patch.Category = &category
	}
	if v, ok := body["description"]; ok {
		s := coerce.String(v)
		patch.Description = &s
	}
	if v, ok := body["image"]; ok {
		s := coerce.String(v)
		patch.Image = &s
	}
	if v, ok := body["price"]; ok {
		s := coerce.String(v)
		patch.Price = &s
	}
	if v, ok := body["href"]; ok {
		s := coerce.String(v)
		patch.Href = &s
	}
	if v, ok := body["tags"]; ok {
		patch.Tags = coerce.StringList(v)
	}
	if v, ok := bodyKey(body, "sort_order", "sortOrder"); ok {
		n := coerce.Int(v)
		patch.SortOrder = &n
	}
	if v, ok := body["visible"]; ok {
		b := coerce.Bool(v)
		patch.Visible = &b
	}

	changed, err := h.store.Update(id, patch)
	if err != nil {
		slog.Error("catalog update failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if changed == 0 {
		writeError(w, http.StatusNotFound, "позиция не найдена")
		return
	}

	item, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("catalog reload failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

// AdminDelete removes an item.
func (h *Catalog) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	changed, err := h.store.Delete(id)
	if err != nil {
		slog.Error("catalog delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if changed == 0 {
		writeError(w, http.StatusNotFound, "позиция не найдена")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
