package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadArgs_Defaults(t *testing.T) {
	cfg, err := LoadArgs([]string{"-env", noEnvFile(t)})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.BindAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "pulseboard:monitor:transitions", cfg.Redis.Channel)
	assert.True(t, cfg.Simulation.AutoStart)
	assert.True(t, cfg.Simulation.Latency)
	assert.Equal(t, "3s", cfg.Simulation.Interval)
}

func TestLoadArgs_Env(t *testing.T) {
	t.Setenv("SERVER_BIND_ADDR", "127.0.0.1:9000")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SIMULATION_LATENCY", "false")
	t.Setenv("SERVER_RATE_LIMIT", "12.5")

	cfg, err := LoadArgs([]string{"-env", noEnvFile(t)})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.BindAddr)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.Simulation.Latency)
	assert.Equal(t, 12.5, cfg.Server.RateLimit)
}

func TestLoadArgs_DotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FIXTURES_SEED_FILE=/tmp/seed.yaml\n"), 0o644))
	// godotenv never overrides variables that are already set
	require.Empty(t, os.Getenv("FIXTURES_SEED_FILE"))
	t.Cleanup(func() { os.Unsetenv("FIXTURES_SEED_FILE") })

	cfg, err := LoadArgs([]string{"-env", envFile})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Fixtures.SeedFile)
}

func TestLoadArgs_Files(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"server":{"bindAddr":":7000"},"simulation":{"autoStart":false}}`), 0o644))
	yamlFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("logging:\n  level: warn\n  format: json\nredis:\n  enabled: true\n  channel: \"\"\n"), 0o644))

	cfg, err := LoadArgs([]string{"-env", noEnvFile(t), "-f", jsonFile})
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.BindAddr)
	assert.False(t, cfg.Simulation.AutoStart)
	assert.True(t, cfg.Simulation.Latency)

	cfg, err = LoadArgs([]string{"-env", noEnvFile(t), "-f", yamlFile})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "pulseboard:monitor:transitions", cfg.Redis.Channel)
}

func TestLoadArgs_Errors(t *testing.T) {
	_, err := LoadArgs([]string{"-env", noEnvFile(t), "-f", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadArgs([]string{"-env", noEnvFile(t), "-f", bad})
	assert.Error(t, err)

	_, err = LoadArgs([]string{"-unknown"})
	assert.Error(t, err)
}
