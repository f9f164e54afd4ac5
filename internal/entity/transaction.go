package entity

import "errors"

var ErrTxNotFound = errors.New("transaction not found")

// TxId is the hex-encoded double-SHA256 hash of a transaction payload.
type TxId string

type Transaction struct {
	id      TxId
	payload []byte
	fee     uint64
}

func NewTransaction(id TxId, payload []byte, fee uint64) *Transaction {
	return &Transaction{
		id:      id,
		payload: payload,
		fee:     fee,
	}
}

func (t *Transaction) Id() TxId {
	return t.id
}

func (t *Transaction) Payload() []byte {
	return t.payload
}

func (t *Transaction) Fee() uint64 {
	return t.fee
}
