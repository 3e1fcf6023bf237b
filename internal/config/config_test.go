package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "5001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.App.HTTPPort)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.Equal(t, "data/uploads", cfg.Storage.UploadDir)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.Equal(t, []string{"admin1@yourdomain.com", "admin2@yourdomain.com"}, cfg.Admin.Whitelist)
	assert.True(t, cfg.Admin.Open)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 0.7, cfg.Resume.SkillWeight)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TTL)
}

func TestLoad_MissingPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "5001")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REDIS_TTL", "soon")

	_, err := Load()
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "REDIS_TTL")
}

func TestLoad_ProductionClosesAdmin(t *testing.T) {
	t.Setenv("HTTP_PORT", "5001")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_WHITELIST", " a@x.io , ,b@x.io")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Admin.Open)
	assert.Equal(t, []string{"a@x.io", "b@x.io"}, cfg.Admin.Whitelist)
}

func TestLoad_MinIORequiresEndpoint(t *testing.T) {
	t.Setenv("HTTP_PORT", "5001")
	t.Setenv("STORAGE_DRIVER", "minio")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "MINIO_ENDPOINT")
}
