package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/infmia/StratisBitcoinFullNode/internal/config"
	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/infmia/StratisBitcoinFullNode/internal/queue"
	"github.com/rs/zerolog"
)

type Daemon struct {
	config       *config.Config
	bootCtrl     *ctrl.BootstrapController
	downloadCtrl *ctrl.DownloadController
	relayCtrl    *ctrl.RelayController
	blocks       ctrl.BlockRepository
	mempool      ctrl.MempoolRepository
	blockQueue   *queue.Queue[*entity.Block]
	txQueue      *queue.Queue[*entity.Transaction]
	logger       zerolog.Logger
}

func New(
	config *config.Config,
	bootstrap *ctrl.BootstrapController,
	download *ctrl.DownloadController,
	relay *ctrl.RelayController,
	blocks ctrl.BlockRepository,
	mempool ctrl.MempoolRepository,
	blockQueue *queue.Queue[*entity.Block],
	txQueue *queue.Queue[*entity.Transaction],
	logger *zerolog.Logger) *Daemon {
	return &Daemon{
		config:       config,
		bootCtrl:     bootstrap,
		downloadCtrl: download,
		relayCtrl:    relay,
		blocks:       blocks,
		mempool:      mempool,
		blockQueue:   blockQueue,
		txQueue:      txQueue,
		logger:       logger.With().Str("component", "daemon").Logger(),
	}
}

func (d *Daemon) Run(ctx context.Context) {
	daemonCtx, cancel := context.WithCancel(ctx)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		d.logger.Info().Msg("shutting down")
		signal.Stop(signalChan)
		close(signalChan)
		cancel()

		// Close waits for the block consumer to exit and for in-flight
		// takers on the tx queue to drain.
		d.blockQueue.Close()
		d.txQueue.Close()
	}()

	// Reload transactions that were pending when the node last stopped.
	d.bootCtrl.Execute(daemonCtx)

	// Start the mempool relay worker
	go d.relayCtrl.Run(daemonCtx)

	d.logger.Info().Msgf("node started with refresh interval %s", d.config.RefreshInterval)

	d.downloadCtrl.Execute(daemonCtx)

	ticker := time.NewTicker(d.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-daemonCtx.Done():
			return
		case <-signalChan:
			return
		case <-ticker.C:
			d.downloadCtrl.Execute(daemonCtx)
			d.reportStatus(daemonCtx)
		}
	}
}

func (d *Daemon) reportStatus(ctx context.Context) {
	var height uint64
	if tip, err := d.blocks.Tip(ctx); err == nil {
		height = tip.Height()
	}

	var stored int
	if all, err := d.blocks.List(ctx); err == nil {
		stored = len(all)
	}

	d.logger.Info().
		Uint64("height", height).
		Int("blocks", stored).
		Int("mempool", d.mempool.Count(ctx)).
		Int("pending_blocks", d.blockQueue.Len()).
		Msg("status")
}
