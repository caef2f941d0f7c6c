package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lockin90/lockin-backend/internal/handlers"
	"github.com/lockin90/lockin-backend/internal/middleware"
)

func SetupRoutes(r *chi.Mux) {
	// Service banner
	r.Get("/api/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"90-Day Lock-In Challenge API","status":"healthy"}`))
	})

	// Auth routes
	r.Post("/api/auth/session", handlers.CreateSession)
	r.With(middleware.RequireAuth).Get("/api/auth/me", handlers.GetMe)
	r.Post("/api/auth/logout", handlers.Logout)

	// Public routes
	r.Get("/api/projects/explore", handlers.ExploreProjects)
	r.Get("/api/users/{id}", handlers.GetProfile)
	r.Get("/api/users/{id}/journal/heatmap", handlers.PublicHeatmap)

	// Owner-scoped routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/api/dashboard", handlers.GetDashboard)

		r.Get("/api/projects", handlers.GetMyProjects)
		r.Post("/api/projects", handlers.CreateProject)
		r.Put("/api/projects/{id}", handlers.UpdateProject)
		r.Delete("/api/projects/{id}", handlers.DeleteProject)

		r.Get("/api/journal/today", handlers.TodayEntry)
		r.Get("/api/journal/heatmap", handlers.PrivateHeatmap)
		r.Post("/api/journal", handlers.CreateJournalEntry)
		r.Put("/api/journal/{id}", handlers.UpdateJournalEntry)
		r.Delete("/api/journal/{id}", handlers.DeleteJournalEntry)
	})
}
