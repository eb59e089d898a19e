package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/joyshift/internal/kvstore"
	"go.uber.org/zap"
)

// loadList decodes the JSON array stored under key. An absent key is an
// empty list. Content that doesn't decode is logged and also read as empty.
func loadList[T any](ctx context.Context, store kvstore.Store, log *zap.Logger, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn("discarding unparsable collection",
			zap.String("key", key),
			zap.Int("bytes", len(raw)),
			zap.Error(err),
		)
		return nil, nil
	}
	return items, nil
}

func saveList[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return store.Set(ctx, key, string(raw))
}

func loggerOrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
