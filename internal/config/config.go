package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCORSOrigin = "http://localhost:5173,http://localhost:3000"
	defaultDraftTTL   = 24 * time.Hour
)

var (
	ServerPort string
	CORSOrigin string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	JwtSecret         string
	Issuer            string
	AdminUsername     string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration
	RequireAdminToken bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DraftTTL      time.Duration

	AuditRetention       time.Duration
	AuditCleanupInterval time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// Client side.
	APIURL      string
	HTTPTimeout time.Duration
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("PORT", "4000")
	CORSOrigin = getEnv("CORS_ORIGIN", defaultCORSOrigin)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "intake")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "client-intake")
	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")
	AdminTokenTTL = getDuration("ADMIN_TOKEN_TTL", 12*time.Hour)
	RequireAdminToken = getBool("REQUIRE_ADMIN_TOKEN", false)

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getInt("REDIS_DB", 0)
	DraftTTL = getDuration("DRAFT_TTL", defaultDraftTTL)

	AuditRetention = getDuration("AUDIT_RETENTION", 30*24*time.Hour)
	AuditCleanupInterval = getDuration("AUDIT_CLEANUP_INTERVAL", 24*time.Hour)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "intake-exports")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)

	APIURL = strings.TrimRight(getEnv("API_URL", "http://localhost:4000"), "/")
	HTTPTimeout = getDuration("HTTP_TIMEOUT", 15*time.Second)
}

// AllowedOrigins splits CORS_ORIGIN into its trimmed, non-empty entries.
func AllowedOrigins() []string {
	raw := CORSOrigin
	if raw == "" {
		raw = defaultCORSOrigin
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// MinioEnabled reports whether export archiving is configured.
func MinioEnabled() bool {
	return MinioEndpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		log.Printf("Invalid %s, using %v", key, fallback)
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Printf("Invalid %s, using %d", key, fallback)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		log.Printf("Invalid %s, using %s", key, fallback)
		return fallback
	}
	return v
}
