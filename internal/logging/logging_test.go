package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qiniu/pulseboard/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.DebugLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetup_WritesRotatedFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	file := filepath.Join(t.TempDir(), "logs", "pulseboard.log")
	closer, err := Setup(config.LoggingConfig{Level: "info", Format: "json", File: file, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("monitor", "rabbitmq").Msg("visible")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"monitor":"rabbitmq"`)
	assert.NotContains(t, string(data), "hidden")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
