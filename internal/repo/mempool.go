package repo

import (
	"context"
	"sync"

	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
)

var _ ctrl.MempoolRepository = &Mempool{}

type Mempool struct {
	mutex    sync.RWMutex
	entities map[entity.TxId]*entity.Transaction
}

func NewMempool() *Mempool {
	return &Mempool{
		entities: make(map[entity.TxId]*entity.Transaction),
	}
}

func (r *Mempool) Find(ctx context.Context, id entity.TxId) (*entity.Transaction, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tx, ok := r.entities[id]
	if !ok {
		return nil, entity.ErrTxNotFound
	}

	return tx, nil
}

func (r *Mempool) Save(ctx context.Context, tx *entity.Transaction) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entities[tx.Id()] = tx
}

func (r *Mempool) Remove(ctx context.Context, id entity.TxId) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.entities, id)
}

func (r *Mempool) Count(ctx context.Context) int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entities)
}
