// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds baseline security headers to every response. The
// API serves JSON, but admin endpoints set cookies, so the browser-side
// protections still matter.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// JSON responses must never be MIME-sniffed into something
		// executable.
		h.Set("X-Content-Type-Options", "nosniff")

		// No endpoint here renders in a frame.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// Legacy XSS filter off; it causes more problems than it solves.
		h.Set("X-XSS-Protection", "0")

		// Keep admin URLs out of cross-origin Referer headers.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
