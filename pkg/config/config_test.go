package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "AUTH_MODE", "SNAPSHOT_BACKEND", "SNAPSHOT_INTERVAL", "TRENDING_LIMIT", "ADMIN_IDS", "MEDIA_BACKEND"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, AuthModeJWT, cfg.AuthMode)
	assert.Equal(t, SnapshotNone, cfg.SnapshotBackend)
	assert.Equal(t, 5*time.Minute, cfg.SnapshotInterval)
	assert.Equal(t, 50, cfg.TrendingLimit)
	assert.Equal(t, MediaLocal, cfg.MediaBackend)
	assert.Empty(t, cfg.AdminIDs)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AUTH_MODE", "Firebase")
	t.Setenv("ADMIN_IDS", " root, ops ,,")
	t.Setenv("TRENDING_INTERVAL", "30s")
	t.Setenv("TRENDING_LIMIT", "7")
	t.Setenv("SNAPSHOT_INTERVAL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, AuthModeFirebase, cfg.AuthMode)
	assert.Equal(t, []string{"root", "ops"}, cfg.AdminIDs)
	assert.Equal(t, 30*time.Second, cfg.TrendingInterval)
	assert.Equal(t, 7, cfg.TrendingLimit)
	assert.Equal(t, 5*time.Minute, cfg.SnapshotInterval)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{AuthMode: AuthModeJWT, JWTSecret: "s", SnapshotBackend: SnapshotNone, MediaBackend: MediaLocal}
	}

	assert.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET"},
		{"unknown auth mode", func(c *Config) { c.AuthMode = "basic" }, "AUTH_MODE"},
		{"postgres without url", func(c *Config) { c.SnapshotBackend = SnapshotPostgres }, "POSTGRES_URL"},
		{"mongo without uri", func(c *Config) { c.SnapshotBackend = SnapshotMongo }, "MONGO_URI"},
		{"unknown snapshot backend", func(c *Config) { c.SnapshotBackend = "redis" }, "SNAPSHOT_BACKEND"},
		{"s3 without bucket", func(c *Config) { c.MediaBackend = MediaS3; c.S3Region = "eu-west-1" }, "S3_BUCKET"},
		{"gcs without bucket", func(c *Config) { c.MediaBackend = MediaGCS }, "GCS_BUCKET_NAME"},
		{"negative trending limit", func(c *Config) { c.TrendingLimit = -1 }, "TRENDING_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
