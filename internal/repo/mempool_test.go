package repo_test

import (
	"context"
	"testing"

	"github.com/infmia/StratisBitcoinFullNode/internal/entity"
	"github.com/infmia/StratisBitcoinFullNode/internal/repo"
)

func Test_Mempool_SaveFindRemove(t *testing.T) {
	t.Parallel()

	mempool := repo.NewMempool()
	tx := entity.NewTransaction("aabb", []byte{0x01}, 100)

	if _, err := mempool.Find(context.TODO(), tx.Id()); err == nil {
		t.Error("Find() before Save should fail")
	}

	mempool.Save(context.TODO(), tx)

	found, err := mempool.Find(context.TODO(), tx.Id())
	if err != nil {
		t.Fatalf("Find() error = %v, want nil", err)
	}

	if found.Fee() != 100 {
		t.Errorf("Fee() = %d, want 100", found.Fee())
	}

	if mempool.Count(context.TODO()) != 1 {
		t.Errorf("Count() = %d, want 1", mempool.Count(context.TODO()))
	}

	mempool.Remove(context.TODO(), tx.Id())

	if mempool.Count(context.TODO()) != 0 {
		t.Errorf("Count() after Remove = %d, want 0", mempool.Count(context.TODO()))
	}
}
