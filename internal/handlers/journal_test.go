package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lumimood/lumimood-backend/internal/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the real route table. These tests cover validation and
// id handling, which resolve before any database access.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Message
}

func TestCreateJournalEntryValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"mood":`, "Invalid request body"},
		{"missing mood", `{"title":"A day","content":"It went fine."}`, "Mood is required"},
		{"blank mood", `{"mood":"  ","title":"A day","content":"It went fine."}`, "Mood is required"},
		{"unknown mood", `{"mood":"angry","title":"A day","content":"It went fine."}`, "Invalid mood value"},
		{"missing title", `{"mood":"happy","content":"It went fine."}`, "Title is required"},
		{"missing content", `{"mood":"happy","title":"A day"}`, "Content is required"},
		{"score too high", `{"mood":"happy","title":"A day","content":"Fine.","moodScore":11}`, "Mood score must be between 1 and 10"},
		{"score too low", `{"mood":"happy","title":"A day","content":"Fine.","moodScore":0}`, "Mood score must be between 1 and 10"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/journal", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decodeMessage(t, w))
		})
	}
}

func TestGetJournalEntryBadID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/journal/not-a-hex-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entry not found", decodeMessage(t, w))
}

func TestUpdateJournalEntryValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/journal/abc123", `{"mood":"furious"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid mood value", decodeMessage(t, w))

	w = doJSON(t, r, http.MethodPut, "/api/journal/abc123", `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title cannot be empty", decodeMessage(t, w))

	w = doJSON(t, r, http.MethodPut, "/api/journal/abc123", `{"moodScore":42}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Mood score must be between 1 and 10", decodeMessage(t, w))
}

func TestUpdateJournalEntryBadID(t *testing.T) {
	r := newTestRouter(t)

	// Valid body, malformed id: treated as not-found, not a server error.
	w := doJSON(t, r, http.MethodPut, "/api/journal/not-a-hex-id", `{"title":"New title"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entry not found", decodeMessage(t, w))
}

func TestDeleteJournalEntryBadID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/journal/not-a-hex-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entry not found", decodeMessage(t, w))
}
