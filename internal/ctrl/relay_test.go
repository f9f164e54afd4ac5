package ctrl_test

import (
	"context"
	"testing"

	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	mock "github.com/infmia/StratisBitcoinFullNode/internal/ctrl/mock"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/infmia/StratisBitcoinFullNode/internal/queue"
	"github.com/rs/zerolog"
	gomock "go.uber.org/mock/gomock"
)

func TestRelay_Run_AdmitsTransaction(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockMempool := mock.NewMockMempoolRepository(mockCtrl)
	mockQueue := mock.NewMockTxQueue(mockCtrl)

	tx := entity.NewTransaction("aabb", []byte{0x01}, 100)

	gomock.InOrder(
		mockQueue.EXPECT().Take(gomock.Any()).Return(tx, nil),
		mockQueue.EXPECT().Take(gomock.Any()).Return(nil, queue.ErrCanceled),
	)
	mockMempool.EXPECT().Find(gomock.Any(), tx.Id()).Return(nil, entity.ErrTxNotFound)
	mockMempool.EXPECT().Save(gomock.Any(), tx)

	logger := zerolog.Nop()
	relay := ctrl.NewRelayController(mockMempool, mockQueue, &logger)

	relay.Run(context.TODO())
}

func TestRelay_Run_RejectsZeroFee(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockMempool := mock.NewMockMempoolRepository(mockCtrl)
	mockQueue := mock.NewMockTxQueue(mockCtrl)

	tx := entity.NewTransaction("free", []byte{0x01}, 0)

	gomock.InOrder(
		mockQueue.EXPECT().Take(gomock.Any()).Return(tx, nil),
		mockQueue.EXPECT().Take(gomock.Any()).Return(nil, queue.ErrCanceled),
	)

	logger := zerolog.Nop()
	relay := ctrl.NewRelayController(mockMempool, mockQueue, &logger)

	relay.Run(context.TODO())
}

func TestRelay_Run_SkipsDuplicate(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockMempool := mock.NewMockMempoolRepository(mockCtrl)
	mockQueue := mock.NewMockTxQueue(mockCtrl)

	tx := entity.NewTransaction("dup", []byte{0x01}, 50)

	gomock.InOrder(
		mockQueue.EXPECT().Take(gomock.Any()).Return(tx, nil),
		mockQueue.EXPECT().Take(gomock.Any()).Return(nil, queue.ErrCanceled),
	)
	mockMempool.EXPECT().Find(gomock.Any(), tx.Id()).Return(tx, nil)

	logger := zerolog.Nop()
	relay := ctrl.NewRelayController(mockMempool, mockQueue, &logger)

	relay.Run(context.TODO())
}
