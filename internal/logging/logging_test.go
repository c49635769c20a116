package logging_test

import (
	"bytes"
	"testing"

	"github.com/mgnsk/circstack/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(&buf, zerolog.InfoLevel, true)

	logger.Debug().Msg("hidden")
	logger.Info().Int("len", 3).Msg("applied")
	logger.Error().Msg("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "len=3")
	assert.Contains(t, out, "| ERROR |")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewColor(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(&buf, zerolog.DebugLevel, false)
	logger.Debug().Msg("shown")

	assert.Contains(t, buf.String(), "\x1b[33mDEBUG\x1b[0m")
}
