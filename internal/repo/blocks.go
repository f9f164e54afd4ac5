package repo

import (
	"context"
	"sync"

	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
)

var _ ctrl.BlockRepository = &Blocks{}

type Blocks struct {
	mutex    sync.RWMutex
	entities map[entity.BlockId]*entity.Block
	tip      *entity.Block
}

func NewBlocks() *Blocks {
	return &Blocks{
		entities: make(map[entity.BlockId]*entity.Block),
	}
}

func (r *Blocks) Find(ctx context.Context, id entity.BlockId) (*entity.Block, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	block, ok := r.entities[id]
	if !ok {
		return nil, entity.ErrBlockNotFound
	}

	return block, nil
}

func (r *Blocks) Tip(ctx context.Context) (*entity.Block, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.tip == nil {
		return nil, entity.ErrBlockNotFound
	}

	return r.tip, nil
}

func (r *Blocks) List(ctx context.Context) ([]*entity.Block, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	blocks := make([]*entity.Block, 0, len(r.entities))
	for _, block := range r.entities {
		blocks = append(blocks, block)
	}

	return blocks, nil
}

func (r *Blocks) Save(ctx context.Context, block *entity.Block) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entities[block.Id()] = block

	if r.tip == nil || block.Height() > r.tip.Height() {
		r.tip = block
	}
}
