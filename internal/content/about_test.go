package content

import (
	"encoding/json"
	"testing"
)

func validAboutMap(t *testing.T) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(mustJSON(t, DefaultAboutContent()), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return doc
}

func TestIsAboutContent(t *testing.T) {
	if !IsAboutContent(mustJSON(t, DefaultAboutContent())) {
		t.Fatal("default about document should be valid")
	}
}

// TestAboutValidatorNecessity removes required fields one at a time from a
// known-valid fixture and checks each removal flips the validator.
func TestAboutValidatorNecessity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{"no hero", func(d map[string]any) { delete(d, "hero") }},
		{"no hero title", func(d map[string]any) { delete(d["hero"].(map[string]any), "title") }},
		{"no hero subtitle", func(d map[string]any) { delete(d["hero"].(map[string]any), "subtitle") }},
		{"no hero description", func(d map[string]any) { delete(d["hero"].(map[string]any), "description") }},
		{"no outro title", func(d map[string]any) { delete(d["outro"].(map[string]any), "title") }},
		{"category without image", func(d map[string]any) {
			cat := d["categories"].([]any)[0].(map[string]any)
			delete(cat, "image")
		}},
		{"category with blank title", func(d map[string]any) {
			cat := d["categories"].([]any)[1].(map[string]any)
			cat["title"] = "   "
		}},
		{"alphabet item without letter", func(d map[string]any) {
			it := d["alphabet"].([]any)[0].(map[string]any)
			delete(it, "letter")
		}},
		{"alphabet item without description", func(d map[string]any) {
			it := d["alphabet"].([]any)[2].(map[string]any)
			delete(it, "description")
		}},
		{"wrong-typed optional href", func(d map[string]any) {
			cat := d["categories"].([]any)[0].(map[string]any)
			cat["href"] = 77
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validAboutMap(t)
			tt.mutate(doc)
			if IsAboutContent(mustJSON(t, doc)) {
				t.Error("expected invalid document")
			}
		})
	}
}

func TestNormalizeAboutContent(t *testing.T) {
	in := &AboutContent{
		Hero: AboutHero{Subtitle: " О галерее ", Title: " Заголовок ", Description: " Описание "},
		Categories: []CategoryCard{
			{Title: " Живопись ", Image: " /img.jpg ", Description: " Текст ", Href: "   "},
			{Title: "  ", Image: "", Description: "   "}, // fully blank, pruned
		},
		Alphabet: []AlphabetItem{
			{Letter: " А ", Title: " Авторство ", Image: "/a.jpg", Description: "Текст", Video: "  "},
		},
		Outro: AboutOutro{Title: "Финал", Description: "Описание"},
	}

	got := NormalizeAboutContent(in)

	if len(got.Categories) != 1 {
		t.Fatalf("categories: got %d, want 1", len(got.Categories))
	}
	if got.Categories[0].Title != "Живопись" || got.Categories[0].Href != "" {
		t.Errorf("category not trimmed: %+v", got.Categories[0])
	}
	if got.Alphabet[0].Letter != "А" || got.Alphabet[0].Video != "" {
		t.Errorf("alphabet item not trimmed: %+v", got.Alphabet[0])
	}

	// Input must be untouched.
	if in.Categories[0].Title != " Живопись " {
		t.Error("normalize mutated its input")
	}

	// Blank optional fields must be absent from the encoded document.
	raw := mustJSON(t, got)
	var m map[string]any
	json.Unmarshal(raw, &m)
	cat := m["categories"].([]any)[0].(map[string]any)
	if _, ok := cat["href"]; ok {
		t.Error("blank href should be dropped from JSON")
	}
}

func TestCloneAboutContentNonAliasing(t *testing.T) {
	orig := DefaultAboutContent()
	clone := CloneAboutContent(orig)

	clone.Hero.Title = "другое"
	clone.Categories[0].Title = "изменено"
	clone.Alphabet[0].Letter = "Я"

	if orig.Hero.Title == "другое" {
		t.Error("clone aliases hero")
	}
	if orig.Categories[0].Title == "изменено" {
		t.Error("clone aliases categories slice")
	}
	if orig.Alphabet[0].Letter == "Я" {
		t.Error("clone aliases alphabet slice")
	}
}
