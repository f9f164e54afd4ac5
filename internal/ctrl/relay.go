package ctrl

import (
	"context"
	"errors"

	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/infmia/StratisBitcoinFullNode/internal/queue"
	"github.com/rs/zerolog"
)

// RelayController is the mempool admission worker. Producers submit
// transactions from any goroutine; Run takes them off the blocking queue one
// at a time and admits them to the mempool.
type RelayController struct {
	mempool MempoolRepository
	queue   TxQueue
	logger  zerolog.Logger
}

func NewRelayController(mempool MempoolRepository, txQueue TxQueue, logger *zerolog.Logger) *RelayController {
	return &RelayController{
		mempool: mempool,
		queue:   txQueue,
		logger:  logger.With().Str("controller", "relay").Logger(),
	}
}

// Run drains the transaction queue until ctx is cancelled or the queue is
// closed. Cancellation is the only clean exit.
func (c *RelayController) Run(ctx context.Context) {
	for {
		tx, err := c.queue.Take(ctx)
		if err != nil {
			if errors.Is(err, queue.ErrCanceled) || errors.Is(err, context.Canceled) {
				c.logger.Info().Msg("relay worker stopped")
				return
			}

			c.logger.Error().Err(err).Msg("failed to take transaction")
			return
		}

		c.admit(ctx, tx)
	}
}

func (c *RelayController) admit(ctx context.Context, tx *entity.Transaction) {
	logger := c.logger.With().Str("tx", string(tx.Id())).Logger()

	if tx.Fee() == 0 {
		logger.Warn().Msg("rejecting zero-fee transaction")
		return
	}

	if _, err := c.mempool.Find(ctx, tx.Id()); err == nil {
		logger.Debug().Msg("transaction already in mempool")
		return
	}

	c.mempool.Save(ctx, tx)
	logger.Debug().Uint64("fee", tx.Fee()).Msg("transaction admitted")
}
