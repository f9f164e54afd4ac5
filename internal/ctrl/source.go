//go:generate mockgen -destination=./mock/mock_source.go -package=mock_ctrl . BlockSource,TxSource

package ctrl

import (
	"context"

	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
)

type RawBlock struct {
	PreviousId entity.BlockId
	Height     uint64
	Payload    []byte
}

type RawTransaction struct {
	Payload []byte
	Fee     uint64
}

// BlockSource hands out the next batch of raw blocks awaiting download.
type BlockSource interface {
	NextBlocks(ctx context.Context, max int) ([]RawBlock, error)
}

// TxSource lists transactions pending admission, e.g. a persisted mempool
// reloaded at startup.
type TxSource interface {
	PendingTransactions(ctx context.Context) ([]RawTransaction, error)
}
