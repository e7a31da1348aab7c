package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	APIBaseURL           string
	APITimeout           time.Duration
	CORSOrigins          []string
	SessionIdleTimeout   time.Duration
	SessionSweepInterval time.Duration
	MaxUploadBytes       int64
}

// LoadEnv reads .env if present. Missing files are not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func Load() Config {
	return Config{
		Port:                 getenv("PORT", "8080"),
		APIBaseURL:           getenv("API_BASE_URL", "http://localhost:3000"),
		APITimeout:           getenvDuration("API_TIMEOUT", 15*time.Second),
		CORSOrigins:          getenvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		SessionIdleTimeout:   getenvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		SessionSweepInterval: getenvDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		MaxUploadBytes:       int64(getenvInt("MAX_UPLOAD_MB", 32)) << 20,
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
