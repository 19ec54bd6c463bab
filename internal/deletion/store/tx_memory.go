package store

import (
	"context"
	"sync"

	"custodia/internal/deletion"
)

// MemoryRunner serializes transactional sections over the in-memory stores
// with a single mutex. Coarse, but purges are rare and the lock gives the
// same atomicity guarantee the SQL transaction provides.
type MemoryRunner struct {
	mu     sync.Mutex
	stores deletion.Stores
}

func NewMemoryRunner(stores deletion.Stores) *MemoryRunner {
	return &MemoryRunner{stores: stores}
}

func (r *MemoryRunner) RunInTx(ctx context.Context, fn func(s deletion.Stores) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.stores)
}
