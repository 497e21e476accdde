package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Auth modes
const (
	AuthModeJWT      = "jwt"
	AuthModeFirebase = "firebase"
)

// Snapshot backends
const (
	SnapshotNone     = "none"
	SnapshotMongo    = "mongo"
	SnapshotPostgres = "postgres"
)

// Media backends
const (
	MediaLocal = "local"
	MediaS3    = "s3"
	MediaGCS   = "gcs"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	AuthMode                string
	JWTSecret               string
	FirebaseCredentialsPath string
	AdminIDs                []string

	SnapshotBackend  string
	SnapshotInterval time.Duration
	PostgresUrl      string
	MongoURI         string
	MongoDatabase    string

	TrendingInterval time.Duration
	TrendingLimit    int

	MediaBackend       string
	LocalStoragePath   string
	S3Region           string
	S3Bucket           string
	GCSBucketName      string
	GCSCredentialsFile string
}

// Load reads configuration from the environment, after loading .env if present
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AuthMode:                strings.ToLower(getEnv("AUTH_MODE", AuthModeJWT)),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		AdminIDs:                getEnvAsList("ADMIN_IDS"),

		SnapshotBackend:  strings.ToLower(getEnv("SNAPSHOT_BACKEND", SnapshotNone)),
		SnapshotInterval: getEnvAsDuration("SNAPSHOT_INTERVAL", 5*time.Minute),
		PostgresUrl:      getEnv("POSTGRES_URL", ""),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDatabase:    getEnv("MONGO_DATABASE", "socialmedia"),

		TrendingInterval: getEnvAsDuration("TRENDING_INTERVAL", time.Minute),
		TrendingLimit:    getEnvAsInt("TRENDING_LIMIT", 50),

		MediaBackend:       strings.ToLower(getEnv("MEDIA_BACKEND", MediaLocal)),
		LocalStoragePath:   getEnv("LOCAL_STORAGE_PATH", "./uploads"),
		S3Region:           getEnv("S3_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		GCSBucketName:      getEnv("GCS_BUCKET_NAME", ""),
		GCSCredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
	}
}

// Validate checks that the settings required by the selected backends are present
func (c *Config) Validate() error {
	switch c.AuthMode {
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET environment variable not set")
		}
	case AuthModeFirebase:
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.AuthMode)
	}

	switch c.SnapshotBackend {
	case SnapshotNone:
	case SnapshotPostgres:
		if c.PostgresUrl == "" {
			return fmt.Errorf("POSTGRES_URL environment variable not set")
		}
	case SnapshotMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI environment variable not set")
		}
	default:
		return fmt.Errorf("unknown SNAPSHOT_BACKEND %q", c.SnapshotBackend)
	}

	switch c.MediaBackend {
	case MediaLocal:
	case MediaS3:
		if c.S3Region == "" || c.S3Bucket == "" {
			return fmt.Errorf("S3_REGION and S3_BUCKET must be set for the s3 media backend")
		}
	case MediaGCS:
		if c.GCSBucketName == "" {
			return fmt.Errorf("GCS_BUCKET_NAME environment variable not set")
		}
	default:
		return fmt.Errorf("unknown MEDIA_BACKEND %q", c.MediaBackend)
	}

	if c.TrendingLimit < 0 {
		return fmt.Errorf("TRENDING_LIMIT must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
