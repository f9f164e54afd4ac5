//go:generate mockgen -destination=./mock/mock_api.go -package=mock_ctrl . Hasher,StateStore

package ctrl

import "context"

type Hasher interface {
	Id(payload []byte) string
	Hash160(data []byte) []byte
}

type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
