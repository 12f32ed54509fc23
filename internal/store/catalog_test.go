// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"arthaus/internal/models"
)

func TestCatalogStoreCreate(t *testing.T) {
	db := testDB(t)
	s := NewCatalogStore(db)

	created, err := s.Create(&models.CatalogItem{
		Title:    "Тестовая картина",
		Category: "painting",
		Price:    strptr("от 45 000 ₽"),
		Tags:     []string{"абстракция", "холст"},
		Visible:  true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM catalog_items WHERE id = $1", created.ID) })

	if created.ID == uuid.Nil {
		t.Error("expected generated UUID")
	}
	if !reflect.DeepEqual(created.Tags, []string{"абстракция", "холст"}) {
		t.Errorf("tags round-trip: got %v", created.Tags)
	}
}

func TestCatalogStoreCreateNilTags(t *testing.T) {
	db := testDB(t)
	s := NewCatalogStore(db)

	created, err := s.Create(&models.CatalogItem{
		Title:    "Без тегов",
		Category: "photo",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM catalog_items WHERE id = $1", created.ID) })

	if created.Tags == nil {
		t.Error("tags must come back as an empty slice, not nil")
	}
	if len(created.Tags) != 0 {
		t.Errorf("tags: got %v, want empty", created.Tags)
	}
}

func TestCatalogStoreVisibility(t *testing.T) {
	db := testDB(t)
	s := NewCatalogStore(db)

	hidden, err := s.Create(&models.CatalogItem{
		Title:    "Скрытый товар",
		Category: "textile",
		Visible:  false,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM catalog_items WHERE id = $1", hidden.ID) })

	visible, err := s.ListVisible()
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	for _, it := range visible {
		if it.ID == hidden.ID {
			t.Error("hidden item leaked into ListVisible")
		}
	}

	all, err := s.List(1000)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, it := range all {
		if it.ID == hidden.ID {
			found = true
		}
	}
	if !found {
		t.Error("hidden item missing from admin List")
	}
}

func TestCatalogStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewCatalogStore(db)

	created, err := s.Create(&models.CatalogItem{
		Title:    "До правки",
		Category: "painting",
		Tags:     []string{"старый"},
		Visible:  true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM catalog_items WHERE id = $1", created.ID) })

	order := 5
	vis := false
	n, err := s.Update(created.ID, CatalogPatch{
		Title:     strptr("После правки"),
		Tags:      []string{"новый", "тег"},
		SortOrder: &order,
		Visible:   &vis,
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
	if got.Title != "После правки" {
		t.Errorf("title not updated: %q", got.Title)
	}
	if !reflect.DeepEqual(got.Tags, []string{"новый", "тег"}) {
		t.Errorf("tags not updated: %v", got.Tags)
	}
	if got.SortOrder != 5 {
		t.Errorf("sort_order not updated: %d", got.SortOrder)
	}
	if got.Visible {
		t.Error("visible not updated")
	}
	// Category was not in the patch.
	if got.Category != "painting" {
		t.Errorf("category changed unexpectedly: %q", got.Category)
	}
}

func TestCatalogStoreUpdateMissing(t *testing.T) {
	db := testDB(t)
	s := NewCatalogStore(db)

	n, err := s.Update(uuid.New(), CatalogPatch{Title: strptr("нет")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 0 {
		t.Errorf("Update of missing row affected %d rows, want 0", n)
	}
}

func TestCatalogStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewCatalogStore(db)

	created, err := s.Create(&models.CatalogItem{Title: "Удалить", Category: "collections"})
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

	got, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}
