//go:generate mockgen -destination=./mock/mock_queue.go -package=mock_ctrl . BlockQueue,TxQueue

package ctrl

import (
	"context"

	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
)

// BlockQueue is the callback-mode queue feeding the block processor.
type BlockQueue interface {
	Enqueue(block *entity.Block)
}

// TxQueue is the blocking-mode queue drained by the relay worker.
type TxQueue interface {
	Enqueue(tx *entity.Transaction)
	Take(ctx context.Context) (*entity.Transaction, error)
}
