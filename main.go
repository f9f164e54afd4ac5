package main

import (
	"context"
	"log"

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
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Panic(err)
	}

	zlog := logger.NewLogger(cfg)

	stateStore, err := store.NewFromConfig(cfg)
	if err != nil {
		log.Panic(err)
	}

	hasher := crypto.NewHasher()
	blocks := repo.NewBlocks()
	mempool := repo.NewMempool()
	spool := source.NewSpool(cfg, zlog)

	process := ctrl.NewProcessController(blocks, stateStore, zlog)
	blockQueue := queue.NewWithCallback(zlog, process.Execute)
	txQueue := queue.New[*entity.Transaction]()

	bootstrap := ctrl.NewBootstrapController(spool, hasher, txQueue, zlog)
	download := ctrl.NewDownloadController(cfg, spool, hasher, blockQueue, zlog)
	relay := ctrl.NewRelayController(mempool, txQueue, zlog)

	d := daemon.New(cfg, bootstrap, download, relay, blocks, mempool, blockQueue, txQueue, zlog)
	d.Run(context.Background())
}
