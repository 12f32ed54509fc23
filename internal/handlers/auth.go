// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"arthaus/internal/coerce"
	"arthaus/internal/middleware"
	"arthaus/internal/session"
	"arthaus/internal/store"
)

// totpIssuer is the issuer shown in authenticator apps.
const totpIssuer = "Arthaus"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

// Login checks credentials and opens a session. The session starts with
// 2FA incomplete; the client must continue to setup or verify.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	email := coerce.String(body["email"])
	password := coerce.String(body["password"])

	user, err := a.userStore.FindByEmail(email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, password) {
		writeError(w, http.StatusUnauthorized, "неверный email или пароль")
		return
	}

	// 2FA is not complete yet, so the session is created restricted.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		TwoFADone:   false,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	next := "verify"
	if user.Needs2FASetup() {
		next = "setup"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": user,
		"next": next,
	})
}

// TwoFASetup generates a TOTP secret for the logged-in user and returns
// the provisioning URL plus a QR code as base64 PNG.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
		"qr_png":      base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// TwoFAVerify validates a TOTP code and completes authentication.
// On first-time setup it also enables TOTP on the account.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}
	code := coerce.String(body["code"])

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	if user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "сначала настройте двухфакторную аутентификацию")
		return
	}

	if !totp.Validate(code, *user.TOTPSecret) {
		writeError(w, http.StatusBadRequest, "неверный код, попробуйте ещё раз")
		return
	}

	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
}

// Me returns the current session's user.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("me lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}
	if user == nil {
		// Session survived the account; treat as logged out.
		a.sessions.Destroy(r.Context(), w, r)
		writeError(w, http.StatusUnauthorized, "требуется авторизация")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":        user,
		"two_fa_done": sess.TwoFADone,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
