package repo

import (
	"github.com/google/wire"
	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
)

var DefaultSet = wire.NewSet(
	NewBlocks,
	wire.Bind(new(ctrl.BlockRepository), new(*Blocks)),
	NewMempool,
	wire.Bind(new(ctrl.MempoolRepository), new(*Mempool)),
)
