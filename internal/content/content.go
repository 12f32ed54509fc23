// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content defines the editable JSON documents behind each public
// page of the site, together with their validators, normalizers, deep-copy
// helpers, and compiled-in fallback copy. The admin panel edits these
// documents; the public pages consume them read-only.
//
// Validators are total: they return an error for any byte sequence that is
// not a structurally valid document (null, arrays, primitives, wrong-typed
// fields) and never panic. Unknown keys are ignored. Normalizers are pure
// and idempotent: they trim every string leaf, drop blank optional fields,
// prune list entries that became fully blank, and de-duplicate vocabulary
// lists preserving first-seen casing.
package content

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	errUnknownKind   = errors.New("неизвестная страница")
	errEmptyDocument = errors.New("документ пуст")
)

// Kind identifies one editable page document.
type Kind string

const (
	KindHome            Kind = "home"
	KindAbout           Kind = "about"
	KindFAQ             Kind = "faq"
	KindCatalog         Kind = "catalog"
	KindPaymentDelivery Kind = "payment-delivery"
)

// Kinds returns every known page document kind.
func Kinds() []Kind {
	return []Kind{KindHome, KindAbout, KindFAQ, KindCatalog, KindPaymentDelivery}
}

// ParseKind maps a URL path segment to a Kind. The second return value is
// false for unknown pages.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindHome, KindAbout, KindFAQ, KindCatalog, KindPaymentDelivery:
		return Kind(s), true
	}
	return "", false
}

// Validate checks that raw is a structurally valid document for the given
// kind. It never panics; any malformed input yields an error.
func Validate(kind Kind, raw []byte) error {
	switch kind {
	case KindHome:
		_, err := ParseHomeContent(raw)
		return err
	case KindAbout:
		_, err := ParseAboutContent(raw)
		return err
	case KindFAQ:
		_, err := ParseFAQContent(raw)
		return err
	case KindCatalog:
		_, err := ParseCatalogPageContent(raw)
		return err
	case KindPaymentDelivery:
		_, err := ParsePaymentDeliveryContent(raw)
		return err
	}
	return errUnknownKind
}

// Normalize parses raw, applies the kind's normalizer, and re-encodes the
// canonical document. The input is rejected with the same errors Validate
// would produce.
func Normalize(kind Kind, raw []byte) (json.RawMessage, error) {
	var doc any
	switch kind {
	case KindHome:
		c, err := ParseHomeContent(raw)
		if err != nil {
			return nil, err
		}
		doc = NormalizeHomeContent(c)
	case KindAbout:
		c, err := ParseAboutContent(raw)
		if err != nil {
			return nil, err
		}
		doc = NormalizeAboutContent(c)
	case KindFAQ:
		c, err := ParseFAQContent(raw)
		if err != nil {
			return nil, err
		}
		doc = NormalizeFAQContent(c)
	case KindCatalog:
		c, err := ParseCatalogPageContent(raw)
		if err != nil {
			return nil, err
		}
		doc = NormalizeCatalogPageContent(c)
	case KindPaymentDelivery:
		c, err := ParsePaymentDeliveryContent(raw)
		if err != nil {
			return nil, err
		}
		doc = NormalizePaymentDeliveryContent(c)
	default:
		return nil, errUnknownKind
	}
	return json.Marshal(doc)
}

// Default returns the compiled-in fallback document for the given kind,
// already in canonical (normalized) form. Returns nil for unknown kinds.
func Default(kind Kind) any {
	switch kind {
	case KindHome:
		return DefaultHomeContent()
	case KindAbout:
		return DefaultAboutContent()
	case KindFAQ:
		return DefaultFAQContent()
	case KindCatalog:
		return DefaultCatalogPageContent()
	case KindPaymentDelivery:
		return DefaultPaymentDeliveryContent()
	}
	return nil
}

// decode unmarshals raw into dst, rejecting JSON null (which unmarshals
// into a zero struct without error) so that Validate stays total.
func decode(raw []byte, dst any) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return errEmptyDocument
	}
	if strings.TrimSpace(string(raw)) == "null" {
		return errEmptyDocument
	}
	return json.Unmarshal(raw, dst)
}

// cleanList trims every entry and drops the ones that are blank after
// trimming. Always returns a non-nil slice so it marshals as [].
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// dedupeList is cleanList plus case-insensitive de-duplication that keeps
// the first-seen casing. Used for category/tag vocabularies.
func dedupeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		t := strings.TrimSpace(it)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// containsFold reports whether list has an entry equal to s ignoring case.
func containsFold(list []string, s string) bool {
	for _, it := range list {
		if strings.EqualFold(it, s) {
			return true
		}
	}
	return false
}
