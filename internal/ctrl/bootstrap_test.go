package ctrl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	mock "github.com/infmia/StratisBitcoinFullNode/internal/ctrl/mock"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/rs/zerolog"
	gomock "go.uber.org/mock/gomock"
)

func TestBootstrap_Execute(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSource := mock.NewMockTxSource(mockCtrl)
	mockHasher := mock.NewMockHasher(mockCtrl)
	mockQueue := mock.NewMockTxQueue(mockCtrl)

	payload := []byte{0x01, 0x02}
	raws := []ctrl.RawTransaction{
		{Payload: payload, Fee: 100},
	}

	mockSource.EXPECT().PendingTransactions(gomock.Any()).Return(raws, nil)
	mockHasher.EXPECT().Id(payload).Return("aabb")
	mockQueue.EXPECT().Enqueue(gomock.Any()).Do(func(tx *entity.Transaction) {
		if tx.Id() != entity.TxId("aabb") {
			t.Errorf("unexpected tx id %q", tx.Id())
		}
		if tx.Fee() != 100 {
			t.Errorf("unexpected fee %d", tx.Fee())
		}
	})

	logger := zerolog.Nop()
	bootstrap := ctrl.NewBootstrapController(mockSource, mockHasher, mockQueue, &logger)

	bootstrap.Execute(context.TODO())
}

func TestBootstrap_Execute_SourceFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSource := mock.NewMockTxSource(mockCtrl)
	mockHasher := mock.NewMockHasher(mockCtrl)
	mockQueue := mock.NewMockTxQueue(mockCtrl)

	mockSource.EXPECT().PendingTransactions(gomock.Any()).Return(nil, errors.New("spool unreadable"))

	logger := zerolog.Nop()
	bootstrap := ctrl.NewBootstrapController(mockSource, mockHasher, mockQueue, &logger)

	bootstrap.Execute(context.TODO())
}
