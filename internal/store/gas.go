package store

import (
	"context"
	"errors"
	"sync"
)

var ErrOutOfGas = errors.New("gas limit exceeded")

// Storage operation pricing: a flat cost per operation plus one unit per byte
// of key and value touched.
const (
	operationCost = 150
	byteCost      = 1
)

// GasMeter tracks gas consumption against a fixed limit. Safe for concurrent
// use.
type GasMeter struct {
	mutex    sync.Mutex
	limit    uint64
	consumed uint64
}

func NewGasMeter(limit uint64) *GasMeter {
	return &GasMeter{limit: limit}
}

func (m *GasMeter) Consume(amount uint64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.consumed+amount > m.limit {
		m.consumed = m.limit
		return ErrOutOfGas
	}

	m.consumed += amount
	return nil
}

func (m *GasMeter) Consumed() uint64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.consumed
}

func (m *GasMeter) Remaining() uint64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.limit - m.consumed
}

var _ Store = &GasMeteredStore{}

// GasMeteredStore decorates a Store, charging the meter for every operation.
// An operation that would exceed the limit fails with ErrOutOfGas and is not
// forwarded to the backing store.
type GasMeteredStore struct {
	inner Store
	meter *GasMeter
}

func NewGasMeteredStore(inner Store, meter *GasMeter) *GasMeteredStore {
	return &GasMeteredStore{
		inner: inner,
		meter: meter,
	}
}

func (s *GasMeteredStore) Get(ctx context.Context, key string) (string, error) {
	if err := s.meter.Consume(operationCost + byteCost*uint64(len(key))); err != nil {
		return "", err
	}

	value, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if err := s.meter.Consume(byteCost * uint64(len(value))); err != nil {
		return "", err
	}

	return value, nil
}

func (s *GasMeteredStore) Set(ctx context.Context, key string, value string) error {
	cost := operationCost + byteCost*uint64(len(key)+len(value))
	if err := s.meter.Consume(cost); err != nil {
		return err
	}

	return s.inner.Set(ctx, key, value)
}

func (s *GasMeteredStore) Delete(ctx context.Context, key string) error {
	if err := s.meter.Consume(operationCost + byteCost*uint64(len(key))); err != nil {
		return err
	}

	return s.inner.Delete(ctx, key)
}
