// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arthaus/internal/cache"
	"arthaus/internal/content"
	"arthaus/internal/middleware"
	"arthaus/internal/store"
)

// errAdjectivesEmptied guards the rotating hero animation on the home
// page from being saved with nothing to rotate.
var errAdjectivesEmptied = errors.New("главная страница: список прилагательных нельзя оставить пустым")

// Content groups handlers for the per-page editable JSON documents.
// Public reads go through the Valkey content cache; admin saves
// re-validate, normalize, persist, and invalidate.
type Content struct {
	pages           *store.PageContentStore
	cache           *cache.ContentCache
	adjectivesGuard bool
}

// NewContent creates a new Content handler group. When adjectivesGuard
// is set, a home save may not empty a previously non-empty hero
// adjectives list.
func NewContent(pages *store.PageContentStore, contentCache *cache.ContentCache, adjectivesGuard bool) *Content {
	return &Content{
		pages:           pages,
		cache:           contentCache,
		adjectivesGuard: adjectivesGuard,
	}
}

// PublicGet serves the stored document for a page, or null when no
// valid override exists. The frontend renders its own compiled-in copy
// on null.
func (c *Content) PublicGet(w http.ResponseWriter, r *http.Request) {
	kind, ok := content.ParseKind(chi.URLParam(r, "page"))
	if !ok {
		writeError(w, http.StatusNotFound, "страница не найдена")
		return
	}

	ctx := r.Context()
	if cached, hit := c.cache.Get(ctx, string(kind)); hit {
		writeJSON(w, http.StatusOK, map[string]any{"item": json.RawMessage(cached)})
		return
	}

	stored, err := c.pages.Get(string(kind))
	if err != nil {
		slog.Error("page content lookup failed", "error", err, "page", kind)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	// Missing or invalid overrides both serve as null.
	if stored == nil || content.Validate(kind, stored.Data) != nil {
		writeJSON(w, http.StatusOK, map[string]any{"item": nil})
		return
	}

	c.cache.Set(ctx, string(kind), stored.Data)
	writeJSON(w, http.StatusOK, map[string]any{"item": stored.Data})
}

// AdminGet returns the stored document, falling back to the compiled-in
// default so the editor form always has something to seed from.
func (c *Content) AdminGet(w http.ResponseWriter, r *http.Request) {
	kind, ok := content.ParseKind(chi.URLParam(r, "page"))
	if !ok {
		writeError(w, http.StatusNotFound, "страница не найдена")
		return
	}

	stored, err := c.pages.Get(string(kind))
	if err != nil {
		slog.Error("page content lookup failed", "error", err, "page", kind)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	if stored != nil && content.Validate(kind, stored.Data) == nil {
		writeJSON(w, http.StatusOK, map[string]any{"item": stored.Data})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"item": content.Default(kind)})
}

// AdminPut validates and saves a full document for a page, then
// invalidates the public cache. Validation failures come back with the
// validator's message.
func (c *Content) AdminPut(w http.ResponseWriter, r *http.Request) {
	kind, ok := content.ParseKind(chi.URLParam(r, "page"))
	if !ok {
		writeError(w, http.StatusNotFound, "страница не найдена")
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	if err := content.Validate(kind, raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if kind == content.KindHome && c.adjectivesGuard {
		if err := c.checkAdjectives(raw); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	normalized, err := content.Normalize(kind, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	var updatedBy *uuid.UUID
	if sess != nil {
		id := sess.UserID
		updatedBy = &id
	}

	if err := c.pages.Set(string(kind), normalized, updatedBy); err != nil {
		slog.Error("page content save failed", "error", err, "page", kind)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	c.cache.Invalidate(r.Context(), string(kind))

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "item": normalized})
}

// checkAdjectives rejects a home save that would empty a previously
// non-empty hero adjectives list.
func (c *Content) checkAdjectives(raw []byte) error {
	next, err := content.ParseHomeContent(raw)
	if err != nil {
		return err
	}
	if len(content.NormalizeHomeContent(next).Hero.Description.Adjectives) > 0 {
		return nil
	}

	stored, err := c.pages.Get(string(content.KindHome))
	if err != nil || stored == nil {
		return nil
	}
	prev, err := content.ParseHomeContent(stored.Data)
	if err != nil {
		return nil
	}
	if len(prev.Hero.Description.Adjectives) > 0 {
		return errAdjectivesEmptied
	}
	return nil
}
