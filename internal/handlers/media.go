// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arthaus/internal/imaging"
	"arthaus/internal/middleware"
	"arthaus/internal/models"
	"arthaus/internal/storage"
	"arthaus/internal/store"
)

// maxUploadSize is the maximum allowed file upload size (50 MB).
const maxUploadSize = 50 << 20

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// Media groups handlers for file uploads and the media library.
type Media struct {
	store         *store.MediaStore
	storageClient *storage.Client
}

// NewMedia creates a new Media handler group. storageClient may be nil
// if S3 is not configured; uploads then return 503.
func NewMedia(mediaStore *store.MediaStore, storageClient *storage.Client) *Media {
	return &Media{
		store:         mediaStore,
		storageClient: storageClient,
	}
}

// Upload handles multipart file upload to S3. The content type is
// sniffed from the file bytes, never trusted from the request. Large
// raster images get a JPEG thumbnail alongside the original.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storageClient == nil {
		writeError(w, http.StatusServiceUnavailable, "хранилище файлов не настроено")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "файл слишком большой, максимум 50 МБ")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "файл не передан")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "файл слишком большой, максимум 50 МБ")
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusInternalServerError, "не удалось прочитать файл")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG detection: DetectContentType returns text/xml or application/xml for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("тип файла %q не поддерживается", contentType))
		return
	}

	// Seek back to start after sniffing.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "не удалось обработать файл")
		return
	}

	// Generate a unique storage key.
	now := time.Now()
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	fileID := uuid.New().String()
	s3Key := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), fileID, ext)

	// Read the entire file into memory for upload and thumbnail generation.
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "не удалось прочитать файл")
		return
	}

	ctx := r.Context()
	if err := h.storageClient.Upload(ctx, s3Key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", s3Key)
		writeError(w, http.StatusInternalServerError, "не удалось загрузить файл")
		return
	}

	// Generate and upload a thumbnail for supported image types.
	var thumbKey *string
	if imaging.CanThumbnail(contentType) {
		thumb, err := imaging.Generate(fileBytes, imaging.DefaultThumbWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", s3Key)
		} else {
			tk := fmt.Sprintf("media/%d/%02d/%s_thumb.jpg", now.Year(), now.Month(), fileID)
			if err := h.storageClient.Upload(ctx, tk, thumb.ContentType, bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	media := &models.Media{
		Filename:     fileID + ext,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(fileBytes)),
		S3Key:        s3Key,
		ThumbS3Key:   thumbKey,
		URL:          h.storageClient.FileURL(s3Key),
		UploaderID:   sess.UserID,
	}

	created, err := h.store.Create(media)
	if err != nil {
		slog.Error("media db insert failed", "error", err, "key", s3Key)
		writeError(w, http.StatusInternalServerError, "не удалось сохранить метаданные файла")
		return
	}

	var thumbURL string
	if created.ThumbS3Key != nil {
		thumbURL = h.storageClient.FileURL(*created.ThumbS3Key)
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        created.ID,
		"url":       created.URL,
		"thumb_url": thumbURL,
		"filename":  created.OriginalName,
		"size":      created.HumanSize(),
		"type":      created.ContentType,
	})
}

// List returns uploaded files for the media library, newest first.
func (h *Media) List(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, 50, 200)
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}

	items, err := h.store.List(limit, offset)
	if err != nil {
		slog.Error("media list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	total, err := h.store.Count()
	if err != nil {
		slog.Error("media count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

// Delete removes a media item from both the database and S3.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	// Delete from DB first (returns the row for S3 cleanup).
	deleted, err := h.store.Delete(id)
	if err != nil {
		slog.Error("media db delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if deleted == nil {
		writeError(w, http.StatusNotFound, "файл не найден")
		return
	}

	// Clean up S3 objects (best-effort, don't fail the request).
	if h.storageClient != nil {
		ctx := r.Context()
		if err := h.storageClient.Delete(ctx, deleted.S3Key); err != nil {
			slog.Warn("s3 original delete failed", "error", err, "key", deleted.S3Key)
		}
		if deleted.ThumbS3Key != nil {
			if err := h.storageClient.Delete(ctx, *deleted.ThumbS3Key); err != nil {
				slog.Warn("s3 thumbnail delete failed", "error", err, "key", *deleted.ThumbS3Key)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
