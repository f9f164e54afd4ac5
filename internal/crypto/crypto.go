package crypto

import (
	"github.com/google/wire"
	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
)

var DefaultSet = wire.NewSet(
	NewHasher,
	wire.Bind(new(ctrl.Hasher), new(*Hasher)),
)
