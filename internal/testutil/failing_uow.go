package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/joyshift/internal/kvstore"
)

// FailOnNthSetBackend wraps a backend and injects Err on the Nth Set call
// made inside a transaction. Calls are counted from 1 across all
// transactions. Reads pass through.
type FailOnNthSetBackend struct {
	kvstore.Backend
	FailOn int32
	Err    error

	count atomic.Int32
}

func (b *FailOnNthSetBackend) WithinTx(ctx context.Context, fn func(ctx context.Context, s kvstore.Store) error) error {
	return b.Backend.WithinTx(ctx, func(ctx context.Context, s kvstore.Store) error {
		return fn(ctx, &failOnNthSet{Store: s, parent: b})
	})
}

type failOnNthSet struct {
	kvstore.Store
	parent *FailOnNthSetBackend
}

func (f *failOnNthSet) Set(ctx context.Context, key, value string) error {
	if f.parent.count.Add(1) == f.parent.FailOn {
		return f.parent.Err
	}
	return f.Store.Set(ctx, key, value)
}
