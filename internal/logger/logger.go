package logger

import (
	"os"
	"time"

	"github.com/google/wire"
	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/rs/zerolog"
)

var DefaultSet = wire.NewSet(
	NewLogger,
)

var LevelMap = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
	"fatal": zerolog.FatalLevel,
}

// Level maps a config string to a zerolog level. Unknown strings fall back
// to info so a typo in the config never silences the node.
func Level(name string) zerolog.Level {
	if level, ok := LevelMap[name]; ok {
		return level
	}
	return zerolog.InfoLevel
}

func NewLogger(config *config.Config) *zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	logger := zerolog.New(writer).
		Level(Level(config.Log.Level)).
		With().
		Timestamp().
		Str("service", "stratisnode").
		Logger()

	return &logger
}
