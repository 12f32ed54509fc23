// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package coerce converts loosely-typed JSON request values into the
// concrete Go types the stores expect. Admin clients send numbers as
// strings, tags as either arrays or comma lists, and booleans in a
// handful of spellings; every handler funnels through these helpers so
// the rules live in one place.
package coerce

import (
	"encoding/json"
	"strconv"
	"strings"
)

// String returns the trimmed string form of v. Numbers and booleans
// are formatted, everything else yields "".
func String(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// NullString is String, but a blank result becomes nil so the store
// writes SQL NULL rather than an empty string.
func NullString(v any) *string {
	s := String(v)
	if s == "" {
		return nil
	}
	return &s
}

// StringList accepts either a JSON array of strings or a single
// comma-separated string and returns the trimmed, non-blank entries.
// The result is never nil.
func StringList(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := String(item); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, part := range strings.Split(t, ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Int converts v to an int, tolerating float64 (the default JSON
// number decoding) and numeric strings. Unparseable values yield 0.
func Int(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

// Bool converts v to a bool. Strings accept the usual spellings
// ("true", "1", "yes", "on", case-insensitive); anything else is false.
func Bool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f != 0
		}
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "on":
			return true
		}
	}
	return false
}
