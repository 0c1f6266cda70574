package config

import (
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "ANALYZER_DELAY", "WRITE_TIMEOUT"} {
		unsetenv(t, k)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.AnalyzerDelay)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
	assert.True(t, cfg.Development())
}

func TestLoadOverrides(t *testing.T) {
	unsetenv(t, "DB_SSLMODE")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "influencers")
	t.Setenv("WRITE_TIMEOUT", "750ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Development())
	assert.Equal(t, 750*time.Millisecond, cfg.WriteTimeout)
	assert.Equal(t, "postgres://app:secret@db:6543/influencers?sslmode=disable", cfg.DSN())
}

func TestDSNEscapesCredentials(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "p@ss/w?rd",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "influencers",
		DBSSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "postgres://app:p%40ss%2Fw%3Frd@db:5432/influencers?sslmode=require", dsn)

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss/w?rd", pass)
	assert.Equal(t, "db:5432", u.Host)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("ANALYZER_DELAY", "soon")

	_, err := Load()
	assert.Error(t, err)
}

// unsetenv clears k for the duration of the test.
func unsetenv(t *testing.T, k string) {
	t.Helper()
	t.Setenv(k, "")
	require.NoError(t, os.Unsetenv(k))
}
