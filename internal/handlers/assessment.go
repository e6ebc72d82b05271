package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lumimood/lumimood-backend/internal/models"
	"github.com/lumimood/lumimood-backend/internal/services"
)

// AssessmentRequest is the intake body. All fields are free text; the intake
// path accepts whatever the assessment form sends.
type AssessmentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Score string `json:"score"`
}

// ErrorResponse is the {error} payload the assessment endpoints use.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateAssessment saves an assessment record and acknowledges without
// echoing the stored document.
func CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entry := models.MoodEntry{
		Name:  req.Name,
		Email: req.Email,
		Score: req.Score,
	}

	if err := services.InsertMoodEntry(ctx, &entry); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to save entry"})
		return
	}

	writeMessage(w, http.StatusCreated, "Entry saved")
}

// GetAssessments returns all assessment records, newest first.
func GetAssessments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := services.ListMoodEntries(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch entries"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
