package store

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	"github.com/mitchellh/mapstructure"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrUnknownStrategy = errors.New("unknown storage strategy")
	ErrDecodeOptions   = errors.New("failed to decode storage options")
)

var DefaultSet = wire.NewSet(
	NewFromConfig,
	wire.Bind(new(ctrl.StateStore), new(Store)),
)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type MemoryOptions struct {
	InitialCapacity int `mapstructure:"initial_capacity"`
}

// NewFromConfig builds the state store selected by the storage strategy and
// wraps it with gas metering when a gas limit is configured.
func NewFromConfig(cfg *config.Config) (Store, error) {
	strategy := cfg.Storage.Strategy
	if strategy == "" {
		strategy = "memory"
	}

	var backing Store
	switch strategy {
	case "memory":
		var opts MemoryOptions
		if err := mapstructure.Decode(cfg.Storage.Options, &opts); err != nil {
			return nil, errors.Join(ErrDecodeOptions, err)
		}

		backing = NewMemoryStore(opts.InitialCapacity)
	default:
		return nil, errors.Join(ErrUnknownStrategy, errors.New(strategy))
	}

	if cfg.Storage.GasLimit > 0 {
		return NewGasMeteredStore(backing, NewGasMeter(cfg.Storage.GasLimit)), nil
	}

	return backing, nil
}
