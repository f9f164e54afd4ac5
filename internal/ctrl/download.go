package ctrl

import (
	"context"

	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/rs/zerolog"
)

// DownloadController pulls the next batch of raw blocks from the block
// source and hands them to the block queue. Enqueueing never blocks, so the
// download path cannot stall behind a slow processor.
type DownloadController struct {
	config *config.Config
	source BlockSource
	hasher Hasher
	queue  BlockQueue
	logger zerolog.Logger
}

func NewDownloadController(config *config.Config, source BlockSource, hasher Hasher, queue BlockQueue, logger *zerolog.Logger) *DownloadController {
	return &DownloadController{
		config: config,
		source: source,
		hasher: hasher,
		queue:  queue,
		logger: logger.With().Str("controller", "download").Logger(),
	}
}

func (c *DownloadController) Execute(ctx context.Context) {
	raws, err := c.source.NextBlocks(ctx, c.config.Download.MaxBatch)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to fetch next block batch")
		return
	}

	for _, raw := range raws {
		id := entity.BlockId(c.hasher.Id(raw.Payload))
		c.queue.Enqueue(entity.NewBlock(id, raw.PreviousId, raw.Height, raw.Payload))
		c.logger.Debug().Str("block", string(id)).Uint64("height", raw.Height).Msg("block queued")
	}

	if len(raws) > 0 {
		c.logger.Info().Int("count", len(raws)).Msg("block batch queued")
	}
}
