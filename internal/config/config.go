// ABOUTME: Centralized configuration for the scriptwriter pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the script generation system
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Generation settings
	Attempts          int
	DraftTemperature  float64
	PolishTemperature float64
	MaxTokens         int

	// Retrieval settings
	RetrievalTopK   int
	VectorDimension int

	// Pinecone settings (optional, charm fallback is used when unset)
	PineconeAPIKey string
	PineconeHost   string

	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		ChatModel:         getEnv("SCRIPTWRITER_MODEL", "gpt-4o-mini"),
		EmbeddingModel:    getEnv("SCRIPTWRITER_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:           getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:        getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		Attempts:          getEnvInt("GENERATION_ATTEMPTS", 3),
		DraftTemperature:  getEnvFloat("TEMPERATURE", 0.7),
		PolishTemperature: getEnvFloat("POLISH_TEMPERATURE", 0.5),
		MaxTokens:         getEnvInt("MAX_COMPLETION_TOKENS", 1500),
		RetrievalTopK:     getEnvInt("RETRIEVAL_TOP_K", 3),
		VectorDimension:   getEnvInt("VECTOR_DIMENSION", 1536),
		PineconeAPIKey:    os.Getenv("PINECONE_API_KEY"),
		PineconeHost:      os.Getenv("PINECONE_HOST"),
		CharmHost:         getEnv("CHARM_HOST", "charm.2389.dev"),
		CharmDBName:       getEnv("CHARM_DB", "scriptwriter"),
		AutoSync:          getEnvBool("CHARM_AUTO_SYNC", true),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Attempts < 1 || c.Attempts > 10 {
		return fmt.Errorf("GENERATION_ATTEMPTS must be 1-10, got %d", c.Attempts)
	}
	if c.DraftTemperature < 0 || c.DraftTemperature > 2 {
		return fmt.Errorf("TEMPERATURE must be 0-2, got %f", c.DraftTemperature)
	}
	if c.PolishTemperature < 0 || c.PolishTemperature > 2 {
		return fmt.Errorf("POLISH_TEMPERATURE must be 0-2, got %f", c.PolishTemperature)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.RetrievalTopK < 1 || c.RetrievalTopK > 20 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be 1-20, got %d", c.RetrievalTopK)
	}
	return nil
}

// UsePinecone reports whether a Pinecone index is configured
func (c *Config) UsePinecone() bool {
	return c.PineconeAPIKey != "" && c.PineconeHost != ""
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
