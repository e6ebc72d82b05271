package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MONGODB_URI", "MONGO_URI", "REDIS_URI", "PORT", "HUGGINGFACE_API_URL", "HUGGINGFACE_API_KEY", "ALLOWED_ORIGINS", "FRONTEND_URL", "ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/lumimood", cfg.MongoURI)
	assert.Equal(t, "", cfg.RedisURI)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DefaultChatAPIURL, cfg.ChatAPIURL)
	assert.Equal(t, "hf_demo", cfg.ChatAPIKey)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017/app")
	t.Setenv("PORT", "9000")
	t.Setenv("HUGGINGFACE_API_KEY", "hf_real")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://www.example.com")
	t.Setenv("ENV", "Production")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017/app", cfg.MongoURI)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "hf_real", cfg.ChatAPIKey)
	assert.Equal(t, []string{"https://app.example.com", "https://www.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoadMongoURIFallback(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URI", "mongodb://legacy:27017/app")

	cfg := Load()

	assert.Equal(t, "mongodb://legacy:27017/app", cfg.MongoURI)
}
