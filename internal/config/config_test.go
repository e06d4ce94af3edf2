package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so stray .env files are not read.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return tmp
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for key := range defaults {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 4, cfg.BrowseFanout)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.CacheEnabled())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DSN", "sqlite:/tmp/books.db")
	t.Setenv("DB_QUERY_TIMEOUT", "750ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("BROWSE_FANOUT", "8")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENABLE_HSTS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 750*time.Millisecond, cfg.DBQueryTimeout)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 8, cfg.BrowseFanout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.EnableHSTS)

	path, ok := cfg.SQLitePath()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/books.db", path)
}

func TestLoad_Invalid(t *testing.T) {
	chdirTemp(t)

	tests := map[string]string{
		"BROWSE_FANOUT": "0",
		"APP_ENV":       "staging",
		"LOG_LEVEL":     "loud",
		"REDIS_ADDR":    "no-port",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=from_file\n"), 0o644))

	t.Setenv("DB_DSN", "from_env")

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
}

func TestSQLitePath_Postgres(t *testing.T) {
	_, ok := Config{DBDSN: "postgres://localhost/db"}.SQLitePath()
	assert.False(t, ok)
}
