package database

import (
	"testing"

	"arthaus/internal/content"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed should be callable safely: it creates data only when missing.
	// We call it twice to verify idempotency. We don't clear the database
	// first because other test packages may be running concurrently
	// against the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	// Verify admin user exists.
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = 'admin@arthaus.local'").Scan(&userCount); err != nil {
		t.Fatalf("count admin users: %v", err)
	}
	if userCount < 1 {
		t.Errorf("expected at least 1 admin user, got %d", userCount)
	}

	// Every page kind must have a seeded document and it must validate.
	for _, kind := range content.Kinds() {
		var data []byte
		err := db.QueryRow("SELECT data FROM page_content WHERE page = $1", string(kind)).Scan(&data)
		if err != nil {
			t.Fatalf("page content for %s: %v", kind, err)
		}
		if err := content.Validate(kind, data); err != nil {
			t.Errorf("seeded document for %s is invalid: %v", kind, err)
		}
	}
}
