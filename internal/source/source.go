package source

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/wire"
	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/rs/zerolog"
)

var DefaultSet = wire.NewSet(
	NewSpool,
	wire.Bind(new(ctrl.BlockSource), new(*Spool)),
	wire.Bind(new(ctrl.TxSource), new(*Spool)),
)

var ErrReadSpool = errors.New("failed to read spool directory")

const (
	blockSuffix = ".block"
	txSuffix    = ".tx"
)

type blockEnvelope struct {
	PreviousId string `json:"previous_id"`
	Height     uint64 `json:"height"`
	Payload    string `json:"payload"`
}

type txEnvelope struct {
	Payload string `json:"payload"`
	Fee     uint64 `json:"fee"`
}

// Spool feeds the node from a drop directory. Peers or an external fetcher
// place one JSON envelope per file; consumed files are removed so a restart
// never replays them. Malformed files are removed too, after a warning.
type Spool struct {
	dir    string
	logger zerolog.Logger
}

func NewSpool(config *config.Config, logger *zerolog.Logger) *Spool {
	return &Spool{
		dir:    config.Download.Dir,
		logger: logger.With().Str("component", "spool").Logger(),
	}
}

// NextBlocks consumes up to max block envelopes in file-name order.
// A missing or empty directory is not an error, the node simply idles.
func (s *Spool) NextBlocks(ctx context.Context, max int) ([]ctrl.RawBlock, error) {
	names, err := s.list(blockSuffix)
	if err != nil {
		return nil, err
	}

	var raws []ctrl.RawBlock
	for _, name := range names {
		if max > 0 && len(raws) >= max {
			break
		}
		if err := ctx.Err(); err != nil {
			return raws, err
		}

		var envelope blockEnvelope
		path := filepath.Join(s.dir, name)
		if !s.consume(path, &envelope) {
			continue
		}

		payload, err := hex.DecodeString(envelope.Payload)
		if err != nil {
			s.logger.Warn().Err(err).Str("file", name).Msg("skipping block with bad payload")
			continue
		}

		raws = append(raws, ctrl.RawBlock{
			PreviousId: entity.BlockId(envelope.PreviousId),
			Height:     envelope.Height,
			Payload:    payload,
		})
	}

	return raws, nil
}

// PendingTransactions consumes every transaction envelope in the spool.
func (s *Spool) PendingTransactions(ctx context.Context) ([]ctrl.RawTransaction, error) {
	names, err := s.list(txSuffix)
	if err != nil {
		return nil, err
	}

	var raws []ctrl.RawTransaction
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return raws, err
		}

		var envelope txEnvelope
		path := filepath.Join(s.dir, name)
		if !s.consume(path, &envelope) {
			continue
		}

		payload, err := hex.DecodeString(envelope.Payload)
		if err != nil {
			s.logger.Warn().Err(err).Str("file", name).Msg("skipping transaction with bad payload")
			continue
		}

		raws = append(raws, ctrl.RawTransaction{
			Payload: payload,
			Fee:     envelope.Fee,
		})
	}

	return raws, nil
}

// list returns spool file names with the given suffix. os.ReadDir sorts by
// name, which is the consumption order.
func (s *Spool) list(suffix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Join(ErrReadSpool, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == suffix {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// consume reads and removes one envelope file. Returns false when the file
// could not be decoded; the file is still removed so it cannot wedge the
// spool.
func (s *Spool) consume(path string, envelope any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("failed to read spool file")
		return false
	}

	if err := os.Remove(path); err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("failed to remove spool file")
	}

	if err := json.Unmarshal(data, envelope); err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("skipping malformed spool file")
		return false
	}

	return true
}
