package config

import (
	"os"
	"strings"
)

// DefaultChatAPIURL is the free Hugging Face inference endpoint the chatbot
// talks to when HUGGINGFACE_API_URL is not set.
const DefaultChatAPIURL = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-medium"

type Config struct {
	MongoURI       string
	RedisURI       string // optional; rate limiting is skipped when empty
	Port           string
	ChatAPIURL     string
	ChatAPIKey     string
	AllowedOrigins []string
	Environment    string
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		if u := strings.TrimSpace(getEnv("FRONTEND_URL", "")); u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}
	if len(allowedOrigins) == 0 {
		// The original app ran a wide-open CORS policy; keep that as the default.
		allowedOrigins = []string{"*"}
	}

	return &Config{
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/lumimood")),
		RedisURI:       getEnv("REDIS_URI", ""),
		Port:           getEnv("PORT", "5000"),
		ChatAPIURL:     getEnv("HUGGINGFACE_API_URL", DefaultChatAPIURL),
		ChatAPIKey:     getEnv("HUGGINGFACE_API_KEY", "hf_demo"),
		AllowedOrigins: allowedOrigins,
		Environment:    env,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
