package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range keys {
		t.Setenv(strings.ToUpper(key), "")
	}
	t.Setenv("CONFIG_FILE", "")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.PostgresAddress)
	assert.Equal(t, "5433", cfg.PostgresPort)
	assert.Equal(t, "postgres", cfg.PostgresDB)
	assert.Equal(t, "9446", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 4, cfg.OperatorWorkers)
	assert.True(t, cfg.RunMigrations)
}

func TestProcessEnvironmentVariables_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("POSTGRES_ADDRESS", "db.internal")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("OPERATOR_WORKERS", "8")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.PostgresAddress)
	assert.Equal(t, "5432", cfg.PostgresPort)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 8, cfg.OperatorWorkers)
	assert.False(t, cfg.RunMigrations)
}

func TestProcessEnvironmentVariables_ConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "server.yaml")
	content := "postgres_db: ledger\nhttp_port: \"7000\"\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "ledger", cfg.PostgresDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "7001", cfg.HTTPPort, "environment wins over file")
}

func TestProcessEnvironmentVariables_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("POSTGRES_DB", "")
	os.Unsetenv("POSTGRES_DB")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("POSTGRES_DB=from_dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("POSTGRES_DB") })

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.PostgresDB)
}

func TestValidate(t *testing.T) {
	valid := Config{
		PostgresAddress: "localhost",
		HTTPPort:        "9446",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		OperatorWorkers: 1,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.HTTPPort = "http" }},
		{"port out of range", func(c *Config) { c.HTTPPort = "70000" }},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
		{"no workers", func(c *Config) { c.OperatorWorkers = 0 }},
		{"no database host", func(c *Config) { c.PostgresAddress = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPostgresURL(t *testing.T) {
	cfg := Config{
		PostgresAddress:  "db",
		PostgresPort:     "5432",
		PostgresDB:       "ledger",
		PostgresUsername: "app",
		PostgresPassword: "pw",
	}
	assert.Equal(t, "postgres://app:pw@db:5432/ledger?sslmode=disable", cfg.PostgresURL())
}
