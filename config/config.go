package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBURL      string
	JWTSecret  string
	CORSOrigin string

	// Optional: empty disables the published page cache.
	RedisURL     string
	PageCacheTTL time.Duration

	// Business unit used by routes when the request names none.
	DefaultBusinessUnit string

	IntegrityScanSpec string
}

func LoadEnv() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return Config{
		Port:                getEnv("PORT", "8080"),
		DBURL:               mustEnv("DB_URL"),
		JWTSecret:           mustEnv("JWT_SECRET"),
		CORSOrigin:          getEnv("CORS_ORIGIN", "*"),
		RedisURL:            getEnv("REDIS_URL", ""),
		PageCacheTTL:        getDuration("PAGE_CACHE_TTL", 5*time.Minute),
		DefaultBusinessUnit: getEnv("DEFAULT_BUSINESS_UNIT", ""),
		IntegrityScanSpec:   getEnv("INTEGRITY_SCAN_SPEC", "@every 6h"),
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid duration for %s (%q), using %s", key, raw, fallback)
		return fallback
	}
	return d
}
