package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lumimood/lumimood-backend/internal/models"
	"github.com/lumimood/lumimood-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
)

// MessageResponse is the generic {message} payload used for errors and
// delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// JournalEntryRequest is the create/update body. Pointer fields distinguish
// "absent" from "empty" so PUT can merge partial bodies.
type JournalEntryRequest struct {
	Mood      *string  `json:"mood"`
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Tags      []string `json:"tags"`
	MoodScore *int     `json:"moodScore"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Message: msg})
}

// validMoodScore checks the optional 1-10 score range.
func validMoodScore(score *int) bool {
	return score == nil || (*score >= 1 && *score <= 10)
}

// GetJournalEntries returns all journal entries, newest first.
func GetJournalEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := services.ListJournalEntries(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// GetJournalEntry returns a single entry by id.
func GetJournalEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entry, err := services.GetJournalEntry(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, services.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// CreateJournalEntry validates and persists a new entry.
func CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req JournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Mood == nil || strings.TrimSpace(*req.Mood) == "" {
		writeMessage(w, http.StatusBadRequest, "Mood is required")
		return
	}
	if !models.ValidMood(*req.Mood) {
		writeMessage(w, http.StatusBadRequest, "Invalid mood value")
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Content == nil || strings.TrimSpace(*req.Content) == "" {
		writeMessage(w, http.StatusBadRequest, "Content is required")
		return
	}
	if !validMoodScore(req.MoodScore) {
		writeMessage(w, http.StatusBadRequest, "Mood score must be between 1 and 10")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entry := models.JournalEntry{
		Mood:      models.Mood(*req.Mood),
		Title:     *req.Title,
		Content:   *req.Content,
		Tags:      req.Tags,
		MoodScore: req.MoodScore,
	}

	if err := services.InsertJournalEntry(ctx, &entry); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// UpdateJournalEntry merges the supplied fields into an existing entry.
func UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req JournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Mood != nil {
		if !models.ValidMood(*req.Mood) {
			writeMessage(w, http.StatusBadRequest, "Invalid mood value")
			return
		}
		set["mood"] = *req.Mood
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			writeMessage(w, http.StatusBadRequest, "Title cannot be empty")
			return
		}
		set["title"] = *req.Title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			writeMessage(w, http.StatusBadRequest, "Content cannot be empty")
			return
		}
		set["content"] = *req.Content
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.MoodScore != nil {
		if !validMoodScore(req.MoodScore) {
			writeMessage(w, http.StatusBadRequest, "Mood score must be between 1 and 10")
			return
		}
		set["mood_score"] = *req.MoodScore
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entry, err := services.UpdateJournalEntry(ctx, chi.URLParam(r, "id"), set)
	if errors.Is(err, services.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// DeleteJournalEntry removes an entry by id.
func DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := services.DeleteJournalEntry(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, services.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}

	writeMessage(w, http.StatusOK, "Entry deleted successfully")
}
