// Package router sets up all HTTP routes and middleware chains for the
// arthaus API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"arthaus/internal/handlers"
	"arthaus/internal/middleware"
	"arthaus/internal/session"
)

// Options carries the handler groups and cross-cutting settings the
// route tree needs.
type Options struct {
	Sessions     *session.Store
	Auth         *handlers.Auth
	Content      *handlers.Content
	Requests     *handlers.Requests
	Blog         *handlers.Blog
	Catalog      *handlers.Catalog
	Media        *handlers.Media
	SecureCookie bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(opts.Sessions))

	// Health check — no auth, no CSRF.
	r.Get("/health", handlers.Health)

	// Public API consumed by the site frontend.
	r.Route("/api", func(r chi.Router) {
		r.Get("/content/{page}", opts.Content.PublicGet)
		r.Post("/requests", opts.Requests.Create)
		r.Get("/blog", opts.Blog.PublicList)
		r.Get("/blog/{slug}", opts.Blog.PublicBySlug)
		r.Get("/catalog", opts.Catalog.PublicList)

		// Admin API — session auth and CSRF protection.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.NewCSRF(opts.SecureCookie))

			// Brute-force protection on credential endpoints.
			loginLimiter := middleware.NewRateLimiter(10, time.Minute)
			r.With(loginLimiter.Middleware).Post("/auth/login", opts.Auth.Login)

			// 2FA — requires auth but NOT completed 2FA.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/auth/2fa/setup", opts.Auth.TwoFASetup)
				r.Post("/auth/2fa/verify", opts.Auth.TwoFAVerify)
				r.Post("/auth/logout", opts.Auth.Logout)
			})

			// Authenticated + 2FA-verified admin area.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Use(middleware.Require2FA)

				r.Get("/auth/me", opts.Auth.Me)

				// Page content documents
				r.Route("/content", func(r chi.Router) {
					r.Get("/{page}", opts.Content.AdminGet)
					r.Put("/{page}", opts.Content.AdminPut)
				})

				// Inquiries
				r.Route("/requests", func(r chi.Router) {
					r.Get("/", opts.Requests.List)
					r.Patch("/{id}", opts.Requests.Update)
					r.Delete("/{id}", opts.Requests.Delete)
				})

				// Blog
				r.Route("/blog", func(r chi.Router) {
					r.Get("/", opts.Blog.AdminList)
					r.Post("/", opts.Blog.AdminCreate)
					r.Get("/categories", opts.Blog.CategoriesList)
					r.Post("/categories", opts.Blog.CategoryCreate)
					r.Delete("/categories/{id}", opts.Blog.CategoryDelete)
					r.Get("/{id}", opts.Blog.AdminGet)
					r.Patch("/{id}", opts.Blog.AdminUpdate)
					r.Delete("/{id}", opts.Blog.AdminDelete)
				})

				// Catalog
				r.Route("/catalog", func(r chi.Router) {
					r.Get("/", opts.Catalog.AdminList)
					r.Post("/", opts.Catalog.AdminCreate)
					r.Get("/{id}", opts.Catalog.AdminGet)
					r.Patch("/{id}", opts.Catalog.AdminUpdate)
					r.Delete("/{id}", opts.Catalog.AdminDelete)
				})

				// Media. Deleting files breaks published pages that
				// reference them, so it is admin-only; editors can
				// still upload and browse.
				r.Post("/upload", opts.Media.Upload)
				r.Route("/media", func(r chi.Router) {
					r.Get("/", opts.Media.List)
					r.With(middleware.RequireAdmin).Delete("/{id}", opts.Media.Delete)
				})
			})
		})
	})

	return r
}
