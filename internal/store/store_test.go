package store_test

import (
	"testing"

	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/infmia/StratisBitcoinFullNode/internal/store"
	"github.com/stretchr/testify/require"
)

func Test_NewFromConfig_DefaultsToMemory(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}

	s, err := store.NewFromConfig(cfg)
	require.NoError(t, err)
	require.IsType(t, &store.MemoryStore{}, s)
}

func Test_NewFromConfig_GasMetered(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Storage.Strategy = "memory"
	cfg.Storage.GasLimit = 1000
	cfg.Storage.Options = map[string]any{"initial_capacity": 16}

	s, err := store.NewFromConfig(cfg)
	require.NoError(t, err)
	require.IsType(t, &store.GasMeteredStore{}, s)
}

func Test_NewFromConfig_UnknownStrategy(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Storage.Strategy = "leveldb"

	_, err := store.NewFromConfig(cfg)
	require.ErrorIs(t, err, store.ErrUnknownStrategy)
}

func Test_NewFromConfig_BadOptions(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Storage.Strategy = "memory"
	cfg.Storage.Options = map[string]any{"initial_capacity": "not a number"}

	_, err := store.NewFromConfig(cfg)
	require.ErrorIs(t, err, store.ErrDecodeOptions)
}
