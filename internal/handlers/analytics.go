package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/lumimood/lumimood-backend/internal/services"
)

// GetMoodTrends returns (day, mood) aggregates for the trailing 30 days.
func GetMoodTrends(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trends, err := services.MoodTrends(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch mood trends")
		return
	}

	writeJSON(w, http.StatusOK, trends)
}
