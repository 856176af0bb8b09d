package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultMaxUploadBytes = 10 << 20 // 10MB

// Config holds application configuration. It is read once at startup and
// never mutated afterwards.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	GeminiAPIKey    string
	GeminiModel     string
	MaxUploadBytes  int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getEnv("GEMINI_MODEL", ""),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
