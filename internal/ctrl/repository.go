//go:generate mockgen -destination=./mock/mock_repository.go -package=mock_ctrl . BlockRepository,MempoolRepository

package ctrl

import (
	"context"

	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
)

type BlockRepository interface {
	Save(ctx context.Context, block *entity.Block)
	Find(ctx context.Context, id entity.BlockId) (*entity.Block, error)
	List(ctx context.Context) ([]*entity.Block, error)
	Tip(ctx context.Context) (*entity.Block, error)
}

type MempoolRepository interface {
	Save(ctx context.Context, tx *entity.Transaction)
	Find(ctx context.Context, id entity.TxId) (*entity.Transaction, error)
	Remove(ctx context.Context, id entity.TxId)
	Count(ctx context.Context) int
}
