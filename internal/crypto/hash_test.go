package crypto_test

import (
	"testing"

	"github.com/infmia/StratisBitcoinFullNode/internal/crypto"
	"github.com/stretchr/testify/require"
)

func Test_Hasher_Id(t *testing.T) {
	t.Parallel()

	hasher := crypto.NewHasher()

	// Double-SHA256 of "hello", a fixed vector.
	const want = "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50"
	require.Equal(t, want, hasher.Id([]byte("hello")))
}

func Test_Hasher_Id_Deterministic(t *testing.T) {
	t.Parallel()

	hasher := crypto.NewHasher()

	a := hasher.Id([]byte("payload"))
	b := hasher.Id([]byte("payload"))
	c := hasher.Id([]byte("other payload"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 64)
}

func Test_Hasher_Hash160(t *testing.T) {
	t.Parallel()

	hasher := crypto.NewHasher()

	digest := hasher.Hash160([]byte("public key bytes"))
	require.Len(t, digest, 20)
	require.Equal(t, digest, hasher.Hash160([]byte("public key bytes")))
}
