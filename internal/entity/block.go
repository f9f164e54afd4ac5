package entity

import "errors"

var ErrBlockNotFound = errors.New("block not found")

// BlockId is the hex-encoded double-SHA256 hash of a block payload.
type BlockId string

type Block struct {
	id         BlockId
	previousId BlockId
	height     uint64
	payload    []byte
}

func NewBlock(id BlockId, previousId BlockId, height uint64, payload []byte) *Block {
	return &Block{
		id:         id,
		previousId: previousId,
		height:     height,
		payload:    payload,
	}
}

func (b *Block) Id() BlockId {
	return b.id
}

func (b *Block) PreviousId() BlockId {
	return b.previousId
}

func (b *Block) Height() uint64 {
	return b.height
}

func (b *Block) Payload() []byte {
	return b.payload
}
