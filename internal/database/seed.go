package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"arthaus/internal/content"
)

// Seed populates the database with initial development data: a default
// admin user (when no users exist) and the compiled-in default document
// for every page that has no stored override. Seeding is idempotent.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedPageContent(db)
}

func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// 2FA is not enabled; the admin must set it up on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@arthaus.local", string(hash), "Администратор", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@arthaus.local",
		"password", "admin",
	)
	return nil
}

func seedPageContent(db *sql.DB) error {
	for _, kind := range content.Kinds() {
		doc, err := json.Marshal(content.Default(kind))
		if err != nil {
			return fmt.Errorf("seed marshal %s: %w", kind, err)
		}

		// ON CONFLICT DO NOTHING keeps admin edits intact across restarts.
		_, err = db.Exec(`
			INSERT INTO page_content (page, data)
			VALUES ($1, $2)
			ON CONFLICT (page) DO NOTHING
		`, string(kind), doc)
		if err != nil {
			return fmt.Errorf("seed page content %s: %w", kind, err)
		}
	}

	slog.Info("default page content seeded")
	return nil
}
