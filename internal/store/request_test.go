// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"arthaus/internal/models"
)

func strptr(s string) *string { return &s }

func TestRequestStoreCreateDefaults(t *testing.T) {
	db := testDB(t)
	s := NewRequestStore(db)

	created, err := s.Create(&models.Request{
		FormType: "contact",
		Name:     strptr("Тест Заявка"),
		Phone:    strptr("+7 900 000-00-00"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM requests WHERE id = $1", created.ID) })

	if created.ID == uuid.Nil {
		t.Error("expected generated UUID")
	}
	if created.Status != models.RequestStatusNew {
		t.Errorf("status: got %q, want %q", created.Status, models.RequestStatusNew)
	}
	if created.Priority != models.RequestPriorityNormal {
		t.Errorf("priority: got %q, want %q", created.Priority, models.RequestPriorityNormal)
	}
	if created.Email != nil {
		t.Error("unset email should stay NULL")
	}
}

func TestRequestStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewRequestStore(db)

	created, err := s.Create(&models.Request{
		FormType: "order",
		Email:    strptr("update@store-test.local"),
		Product:  strptr("Картина «Шантарам»"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM requests WHERE id = $1", created.ID) })

	status := models.RequestStatusInProgress
	n, err := s.Update(created.ID, RequestPatch{
		Status: &status,
		Notes:  strptr("Позвонить после 18:00"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 1 {
		t.Fatalf("Update affected %d rows, want 1", n)
	}

	got, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != models.RequestStatusInProgress {
		t.Errorf("status not updated: %q", got.Status)
	}
	if got.Notes == nil || *got.Notes != "Позвонить после 18:00" {
		t.Error("notes not updated")
	}
	// Priority was not in the patch and must be untouched.
	if got.Priority != models.RequestPriorityNormal {
		t.Errorf("priority changed unexpectedly: %q", got.Priority)
	}
}

func TestRequestStoreUpdateMissing(t *testing.T) {
	db := testDB(t)
	s := NewRequestStore(db)

	status := models.RequestStatusClosed
	n, err := s.Update(uuid.New(), RequestPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 0 {
		t.Errorf("Update of missing row affected %d rows, want 0", n)
	}
}

func TestRequestStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewRequestStore(db)

	created, err := s.Create(&models.Request{
		FormType: "contact",
		Message:  strptr("удалите меня"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := s.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("Delete affected %d rows, want 1", n)
	}

	n, err = s.Delete(created.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if n != 0 {
		t.Errorf("second Delete affected %d rows, want 0", n)
	}
}

func TestRequestStoreListOrder(t *testing.T) {
	db := testDB(t)
	s := NewRequestStore(db)

	first, err := s.Create(&models.Request{FormType: "contact", Name: strptr("Первый")})
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := s.Create(&models.Request{FormType: "contact", Name: strptr("Второй")})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM requests WHERE id IN ($1, $2)", first.ID, second.ID)
	})

	items, err := s.List(1000)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var posFirst, posSecond = -1, -1
	for i, r := range items {
		switch r.ID {
		case first.ID:
			posFirst = i
		case second.ID:
			posSecond = i
		}
	}
	if posFirst == -1 || posSecond == -1 {
		t.Fatal("created requests missing from List")
	}
	if posSecond > posFirst {
		t.Error("List is not ordered newest first")
	}
}
