// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary
// strings. Cyrillic titles are transliterated to ASCII, so catalog and
// blog URLs stay readable for Russian-language content.
package slug

import (
	gslug "github.com/gosimple/slug"
)

func init() {
	// Slugs are compared lowercase everywhere in the store layer.
	gslug.Lowercase = true
}

// Generate creates a URL-friendly ASCII slug from the given string:
// lowercase, hyphen-separated, Cyrillic transliterated. Generate is
// deterministic and idempotent: feeding a slug back in returns it
// unchanged.
func Generate(s string) string {
	return gslug.MakeLang(s, "ru")
}

// IsValid reports whether s is already a well-formed slug.
func IsValid(s string) bool {
	return s != "" && gslug.IsSlug(s)
}
