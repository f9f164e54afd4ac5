//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/infmia/StratisBitcoinFullNode/internal/crypto"
	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	"github.com/infmia/StratisBitcoinFullNode/internal/daemon"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/infmia/StratisBitcoinFullNode/internal/logger"
	"github.com/infmia/StratisBitcoinFullNode/internal/queue"
	"github.com/infmia/StratisBitcoinFullNode/internal/repo"
	"github.com/infmia/StratisBitcoinFullNode/internal/source"
	"github.com/infmia/StratisBitcoinFullNode/internal/store"
	"github.com/rs/zerolog"
)

func setup() (*daemon.Daemon, error) {
	wire.Build(
		config.Load,
		logger.DefaultSet,
		store.DefaultSet,
		crypto.DefaultSet,
		repo.DefaultSet,
		source.DefaultSet,
		ctrl.DefaultSet,
		provideBlockQueue,
		wire.Bind(new(ctrl.BlockQueue), new(*queue.Queue[*entity.Block])),
		provideTxQueue,
		wire.Bind(new(ctrl.TxQueue), new(*queue.Queue[*entity.Transaction])),
		daemon.New,
	)

	return nil, nil
}

func provideBlockQueue(logger *zerolog.Logger, process *ctrl.ProcessController) *queue.Queue[*entity.Block] {
	return queue.NewWithCallback(logger, process.Execute)
}

func provideTxQueue() *queue.Queue[*entity.Transaction] {
	return queue.New[*entity.Transaction]()
}
