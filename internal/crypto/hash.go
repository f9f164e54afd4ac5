package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/infmia/StratisBitcoinFullNode/internal/ctrl"
	"golang.org/x/crypto/ripemd160"
)

var _ ctrl.Hasher = &Hasher{}

// Hasher computes the identifiers used across the node: double-SHA256 for
// block and transaction ids, RIPEMD160 over SHA256 for script hashes.
type Hasher struct {
}

func NewHasher() *Hasher {
	return &Hasher{}
}

func (h *Hasher) Id(payload []byte) string {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])

	return hex.EncodeToString(second[:])
}

func (h *Hasher) Hash160(data []byte) []byte {
	first := sha256.Sum256(data)

	hasher := ripemd160.New()
	hasher.Write(first[:])

	return hasher.Sum(nil)
}
