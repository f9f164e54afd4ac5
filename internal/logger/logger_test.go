package logger_test

import (
	"testing"

	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/infmia/StratisBitcoinFullNode/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, logger.Level("debug"))
	assert.Equal(t, zerolog.FatalLevel, logger.Level("fatal"))
	assert.Equal(t, zerolog.InfoLevel, logger.Level("verbose"))
	assert.Equal(t, zerolog.InfoLevel, logger.Level(""))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Log.Level = "error"

	log := logger.NewLogger(cfg)
	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}
