package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/lumimood/lumimood-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Journal CRUD
	r.Get("/api/journal", handlers.GetJournalEntries)
	r.Post("/api/journal", handlers.CreateJournalEntry)
	r.Get("/api/journal/{id}", handlers.GetJournalEntry)
	r.Put("/api/journal/{id}", handlers.UpdateJournalEntry)
	r.Delete("/api/journal/{id}", handlers.DeleteJournalEntry)

	// Supportive chatbot
	r.Post("/api/journal/chat", handlers.Chat)
	r.Get("/api/journal/chat/history", handlers.GetChatHistory)

	// Mood analytics
	r.Get("/api/journal/analytics/mood-trends", handlers.GetMoodTrends)

	// Assessment intake
	r.Post("/api/assessment", handlers.CreateAssessment)
	r.Get("/api/assessment", handlers.GetAssessments)
}
