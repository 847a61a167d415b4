package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration. The API key is read from the
// environment (optionally via a .env file); it is never committed.
type Config struct {
	// GroqAPIKey is set from env GROQ_API_KEY.
	GroqAPIKey string
	// Model is the Groq model id (e.g. llama-3.1-8b-instant).
	Model string
	// DBPath is the SQLite path for bookings and the transcript.
	// Defaults to :memory:, so state lives for the process only.
	DBPath string
	// HTTPAddr is the listen address for the chat HTTP channel. Empty
	// disables the HTTP channel.
	HTTPAddr string
	// LLMTimeout bounds each call to the model. The external call can hang
	// indefinitely otherwise.
	LLMTimeout time.Duration
	// HistoryLimit is the rolling window of transcript messages replayed as
	// context on each turn.
	HistoryLimit int
}

const (
	defaultModel        = "llama-3.1-8b-instant"
	defaultLLMTimeout   = 60 * time.Second
	defaultHistoryLimit = 30
)

// Load builds config from the environment. A .env file in the working
// directory is loaded first if present (same bootstrap the original
// deployment used); real environment variables win over .env values.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		Model:        os.Getenv("FOODIEBOT_MODEL"),
		DBPath:       os.Getenv("FOODIEBOT_DB_PATH"),
		HTTPAddr:     os.Getenv("FOODIEBOT_HTTP_ADDR"),
		LLMTimeout:   defaultLLMTimeout,
		HistoryLimit: defaultHistoryLimit,
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.DBPath == "" {
		cfg.DBPath = ":memory:"
	}
	if v := os.Getenv("FOODIEBOT_LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLMTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("FOODIEBOT_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	return cfg
}
