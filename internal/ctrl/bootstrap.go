package ctrl

import (
	"context"

	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/rs/zerolog"
)

// BootstrapController reloads transactions pending admission and feeds them
// to the relay queue, so a restart does not lose the mempool.
type BootstrapController struct {
	source TxSource
	hasher Hasher
	queue  TxQueue
	logger zerolog.Logger
}

func NewBootstrapController(source TxSource, hasher Hasher, queue TxQueue, logger *zerolog.Logger) *BootstrapController {
	return &BootstrapController{
		source: source,
		hasher: hasher,
		queue:  queue,
		logger: logger.With().Str("controller", "bootstrap").Logger(),
	}
}

func (c *BootstrapController) Execute(ctx context.Context) {
	raws, err := c.source.PendingTransactions(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load pending transactions")
		return
	}

	for _, raw := range raws {
		id := entity.TxId(c.hasher.Id(raw.Payload))
		c.queue.Enqueue(entity.NewTransaction(id, raw.Payload, raw.Fee))
	}

	if len(raws) > 0 {
		c.logger.Info().Int("count", len(raws)).Msg("pending transactions queued")
	}
}
