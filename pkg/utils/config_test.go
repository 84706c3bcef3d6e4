package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DEBUG", "LOG_PATH", "DB_HOST", "DB_PORT", "DB_MAX_CONNS",
		"MONGO_URI", "MONGO_DB", "JWT_SECRET", "JWT_SECRET_KEY", "JWT_EXPIRY_HOURS",
		"SESSION_COOKIE", "SESSION_TTL_HOURS", "CORS_ORIGINS", "AUTH_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFrom_DefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, "mongodb://localhost:27017", config.Mongo.URI)
	assert.Equal(t, time.Hour, config.JWT.Expiry())
	assert.Equal(t, "sid", config.Session.CookieName)
	assert.Equal(t, 24*time.Hour, config.Session.TTL())
	assert.Equal(t, 15*time.Minute, config.Session.CleanupInterval())
	assert.Equal(t, []string{"*"}, config.HTTP.CORSOrigins)
	assert.Empty(t, config.JWT.Secret)
}

func TestLoadConfigFrom_File(t *testing.T) {
	clearConfigEnv(t)

	path := writeEnvFile(t, "PORT=9090\nDB_HOST=db.local\nJWT_SECRET_KEY=legacy\nCORS_ORIGINS=http://a.test, http://b.test\n")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "db.local", config.Database.Host)
	assert.Equal(t, "legacy", config.JWT.Secret)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.HTTP.CORSOrigins)
}

func TestLoadConfigFrom_EnvironmentWins(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "primary")

	path := writeEnvFile(t, "PORT=9090\nJWT_SECRET_KEY=legacy\n")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", config.App.Port)
	assert.Equal(t, "primary", config.JWT.Secret)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b "))
}
