package services

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

// systemPrompt frames every upstream request as a supportive conversation.
const systemPrompt = `You are a compassionate mental health support assistant. Provide empathetic, helpful responses that encourage positive mental health practices. Keep responses concise and supportive. If someone expresses serious mental health concerns, gently suggest professional help.`

// defaultReply is used when the service answers but the generation is empty
// after stripping the echoed prompt.
const defaultReply = "I understand you're sharing something important. How are you feeling about that?"

// ReassuranceReply is the last-resort line when the chat flow itself breaks.
// The chat endpoint never surfaces an error to the user.
const ReassuranceReply = "I'm here to listen. Sometimes technical issues happen, but your feelings and thoughts are always important. How are you doing today?"

// fallbackReplies is the pool used when the generation service is
// unreachable, unauthorized or failing. Picking one at random is deliberate
// graceful degradation, not error handling.
var fallbackReplies = []string{
	"Thank you for sharing that with me. How does writing about this make you feel?",
	"I hear you. It's important to acknowledge your feelings. What would help you feel better right now?",
	"That sounds significant. Remember that it's okay to feel whatever you're feeling. What support do you need?",
	"I appreciate you opening up. Taking time to reflect on your emotions is really valuable. How can I help?",
	"Your feelings are valid. Sometimes just expressing what we're going through can be therapeutic. What's on your mind?",
}

// chatCallTimeout bounds the upstream call so a hung inference request can
// never hold the user's request open.
const chatCallTimeout = 15 * time.Second

// Responder produces supportive replies from the external text-generation
// service, degrading to canned replies when the service misbehaves.
type Responder struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewResponder(apiURL, apiKey string) *Responder {
	return &Responder{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: chatCallTimeout},
	}
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
}

type generateResult struct {
	GeneratedText string `json:"generated_text"`
}

// Reply returns a supportive reply for the user's message. It never fails:
// any upstream problem yields a random fallback line instead.
func (rs *Responder) Reply(ctx context.Context, message string) string {
	prompt := systemPrompt + "\n\nUser: " + message + "\nAssistant:"

	body, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxLength:   200,
			Temperature: 0.7,
			DoSample:    true,
		},
	})
	if err != nil {
		return rs.fallback()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rs.apiURL, bytes.NewReader(body))
	if err != nil {
		return rs.fallback()
	}
	req.Header.Set("Authorization", "Bearer "+rs.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := rs.client.Do(req)
	if err != nil {
		return rs.fallback()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rs.fallback()
	}

	var results []generateResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return rs.fallback()
	}
	if len(results) == 0 {
		return defaultReply
	}

	// The inference API echoes the prompt back in front of the continuation.
	reply := strings.TrimSpace(strings.Replace(results[0].GeneratedText, prompt, "", 1))
	if reply == "" {
		return defaultReply
	}
	return reply
}

func (rs *Responder) fallback() string {
	return fallbackReplies[rand.Intn(len(fallbackReplies))]
}
