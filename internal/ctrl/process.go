package ctrl

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/rs/zerolog"
)

var (
	ErrOrphanBlock    = errors.New("previous block is unknown")
	ErrStaleBlock     = errors.New("block height is behind the tip")
	ErrPersistFailure = errors.New("failed to persist block")
)

const blockKeyPrefix = "block/"

// ProcessController consumes blocks one at a time, in arrival order. Its
// Execute method is the callback attached to the block queue, so no two
// blocks are ever processed concurrently.
type ProcessController struct {
	blocks BlockRepository
	state  StateStore
	logger zerolog.Logger
}

func NewProcessController(blocks BlockRepository, state StateStore, logger *zerolog.Logger) *ProcessController {
	return &ProcessController{
		blocks: blocks,
		state:  state,
		logger: logger.With().Str("controller", "process").Logger(),
	}
}

func (c *ProcessController) Execute(ctx context.Context, block *entity.Block) error {
	logger := c.logger.With().Str("block", string(block.Id())).Uint64("height", block.Height()).Logger()

	tip, err := c.blocks.Tip(ctx)
	if err != nil && !errors.Is(err, entity.ErrBlockNotFound) {
		return err
	}

	if tip != nil {
		if block.Height() <= tip.Height() {
			logger.Debug().Msg("skipping stale block")
			return nil
		}

		if block.PreviousId() != tip.Id() {
			logger.Warn().Str("previous", string(block.PreviousId())).Msg("orphan block, waiting for its parent")
			return ErrOrphanBlock
		}
	}

	key := blockKeyPrefix + string(block.Id())
	if err := c.state.Set(ctx, key, hex.EncodeToString(block.Payload())); err != nil {
		logger.Error().Err(err).Msg("failed to persist block payload")
		return errors.Join(ErrPersistFailure, err)
	}

	c.blocks.Save(ctx, block)
	logger.Info().Msg("block connected")

	return nil
}
