package ctrl_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	mock "github.com/infmia/StratisBitcoinFullNode/internal/ctrl/mock"
	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/rs/zerolog"
	gomock "go.uber.org/mock/gomock"
)

func TestProcess_Execute_Genesis(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockBlocks := mock.NewMockBlockRepository(mockCtrl)
	mockState := mock.NewMockStateStore(mockCtrl)

	block := entity.NewBlock("genesis", "", 0, []byte{0x01})

	mockBlocks.EXPECT().Tip(gomock.Any()).Return(nil, entity.ErrBlockNotFound)
	mockState.EXPECT().Set(gomock.Any(), "block/genesis", hex.EncodeToString([]byte{0x01})).Return(nil)
	mockBlocks.EXPECT().Save(gomock.Any(), block)

	logger := zerolog.Nop()
	process := ctrl.NewProcessController(mockBlocks, mockState, &logger)

	if err := process.Execute(context.TODO(), block); err != nil {
		t.Errorf("Execute() error = %v, want nil", err)
	}
}

func TestProcess_Execute_ExtendsTip(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockBlocks := mock.NewMockBlockRepository(mockCtrl)
	mockState := mock.NewMockStateStore(mockCtrl)

	tip := entity.NewBlock("aa", "", 1, []byte{0x01})
	block := entity.NewBlock("bb", "aa", 2, []byte{0x02})

	mockBlocks.EXPECT().Tip(gomock.Any()).Return(tip, nil)
	mockState.EXPECT().Set(gomock.Any(), "block/bb", gomock.Any()).Return(nil)
	mockBlocks.EXPECT().Save(gomock.Any(), block)

	logger := zerolog.Nop()
	process := ctrl.NewProcessController(mockBlocks, mockState, &logger)

	if err := process.Execute(context.TODO(), block); err != nil {
		t.Errorf("Execute() error = %v, want nil", err)
	}
}

func TestProcess_Execute_StaleBlockSkipped(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockBlocks := mock.NewMockBlockRepository(mockCtrl)
	mockState := mock.NewMockStateStore(mockCtrl)

	tip := entity.NewBlock("cc", "bb", 5, []byte{0x01})
	stale := entity.NewBlock("bb", "aa", 4, []byte{0x02})

	mockBlocks.EXPECT().Tip(gomock.Any()).Return(tip, nil)

	logger := zerolog.Nop()
	process := ctrl.NewProcessController(mockBlocks, mockState, &logger)

	if err := process.Execute(context.TODO(), stale); err != nil {
		t.Errorf("Execute() error = %v, want nil", err)
	}
}

func TestProcess_Execute_Orphan(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockBlocks := mock.NewMockBlockRepository(mockCtrl)
	mockState := mock.NewMockStateStore(mockCtrl)

	tip := entity.NewBlock("cc", "bb", 5, []byte{0x01})
	orphan := entity.NewBlock("ee", "dd", 6, []byte{0x02})

	mockBlocks.EXPECT().Tip(gomock.Any()).Return(tip, nil)

	logger := zerolog.Nop()
	process := ctrl.NewProcessController(mockBlocks, mockState, &logger)

	err := process.Execute(context.TODO(), orphan)
	if !errors.Is(err, ctrl.ErrOrphanBlock) {
		t.Errorf("Execute() error = %v, want %v", err, ctrl.ErrOrphanBlock)
	}
}

func TestProcess_Execute_PersistFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockBlocks := mock.NewMockBlockRepository(mockCtrl)
	mockState := mock.NewMockStateStore(mockCtrl)

	block := entity.NewBlock("genesis", "", 0, []byte{0x01})

	mockBlocks.EXPECT().Tip(gomock.Any()).Return(nil, entity.ErrBlockNotFound)
	mockState.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("store unavailable"))

	logger := zerolog.Nop()
	process := ctrl.NewProcessController(mockBlocks, mockState, &logger)

	err := process.Execute(context.TODO(), block)
	if !errors.Is(err, ctrl.ErrPersistFailure) {
		t.Errorf("Execute() error = %v, want %v", err, ctrl.ErrPersistFailure)
	}
}
