// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arthaus/internal/coerce"
	"arthaus/internal/models"
	"arthaus/internal/store"
)

// Requests groups handlers for contact and order form inquiries.
type Requests struct {
	store *store.RequestStore
}

// NewRequests creates a new Requests handler group.
func NewRequests(requestStore *store.RequestStore) *Requests {
	return &Requests{store: requestStore}
}

// Create accepts a public form submission. Field values arrive loosely
// typed from the frontend forms, so everything goes through coercion.
// At least one contact coordinate is required.
func (h *Requests) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	formType := coerce.String(body["form_type"])
	if formType == "" {
		formType = coerce.String(body["formType"])
	}
	if formType == "" {
		formType = "contact"
	}

	req := &models.Request{
		FormType: formType,
		Name:     coerce.NullString(body["name"]),
		Email:    coerce.NullString(body["email"]),
		Phone:    coerce.NullString(body["phone"]),
		Subject:  coerce.NullString(body["subject"]),
		Message:  coerce.NullString(body["message"]),
		Product:  coerce.NullString(body["product"]),
		Price:    coerce.NullString(body["price"]),
	}

	// Order forms attach the selected options as an opaque blob.
	if opts, ok := body["options"]; ok && opts != nil {
		encoded, err := json.Marshal(opts)
		if err == nil {
			s := string(encoded)
			req.OptionsJSON = &s
		}
	}

	if !req.HasContact() {
		writeError(w, http.StatusBadRequest, "укажите имя, контакт или сообщение")
		return
	}

	created, err := h.store.Create(req)
	if err != nil {
		slog.Error("request create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"item": created})
}

// List returns inquiries for the admin inbox, newest first.
func (h *Requests) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(limitParam(r, 100, 500))
	if err != nil {
		slog.Error("request list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Update applies a sparse patch: only status, priority, and notes are
// editable after submission.
func (h *Requests) Update(w http.ResponseWriter, r *http.Request) {
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

	var patch store.RequestPatch

	if v, ok := body["status"]; ok {
		status := models.RequestStatus(coerce.String(v))
		switch status {
		case models.RequestStatusNew, models.RequestStatusInProgress, models.RequestStatusClosed:
			patch.Status = &status
		default:
			writeError(w, http.StatusBadRequest, "недопустимый статус")
			return
		}
	}

	if v, ok := body["priority"]; ok {
		priority := models.RequestPriority(coerce.String(v))
		switch priority {
		case models.RequestPriorityNormal, models.RequestPriorityHigh:
			patch.Priority = &priority
		default:
			writeError(w, http.StatusBadRequest, "недопустимый приоритет")
			return
		}
	}

	if v, ok := body["notes"]; ok {
		notes := coerce.String(v)
		patch.Notes = &notes
	}

	changed, err := h.store.Update(id, patch)
	if err != nil {
		slog.Error("request update failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if changed == 0 {
		writeError(w, http.StatusNotFound, "заявка не найдена")
		return
	}

	item, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("request reload failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

// Delete removes an inquiry.
func (h *Requests) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	changed, err := h.store.Delete(id)
	if err != nil {
		slog.Error("request delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if changed == 0 {
		writeError(w, http.StatusNotFound, "заявка не найдена")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
