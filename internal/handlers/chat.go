package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/lumimood/lumimood-backend/internal/config"
	"github.com/lumimood/lumimood-backend/internal/services"
)

var chatResponder *services.Responder

// InitChatResponder wires the chatbot against the configured generation
// service. Called once from main before the server starts.
func InitChatResponder(cfg *config.Config) {
	chatResponder = services.NewResponder(cfg.ChatAPIURL, cfg.ChatAPIKey)
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Chat produces a supportive reply for the user's message. Aside from the
// empty-message 400, this endpoint always answers 200 with some reply; the
// user never sees an upstream or storage failure.
func Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Message is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeMessage(w, http.StatusBadRequest, "Message is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	reply := services.ReassuranceReply
	if chatResponder != nil {
		reply = chatResponder.Reply(ctx, req.Message)
	}

	// Log the exchange whichever path produced the reply. A failed save must
	// not turn into a visible error either.
	saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer saveCancel()
	if err := services.SaveChatMessage(saveCtx, req.Message, reply); err != nil {
		log.Printf("[Chat] failed to save exchange: %v", err)
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: reply})
}

// GetChatHistory returns the most recent exchanges, newest first.
func GetChatHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msgs, err := services.LoadChatHistory(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}

	writeJSON(w, http.StatusOK, msgs)
}
