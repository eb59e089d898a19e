package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FileStore keeps every key in one JSON object on disk. Each write replaces
// the file through a temp file and rename, so a crash leaves either the old
// or the new contents. A file that is not a JSON object is moved aside to
// a ".corrupt-<timestamp>" sibling and the store starts over empty.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
	now  func() time.Time
}

// FileOption configures NewFileStore.
type FileOption func(*FileStore)

// WithFileLogger reports recovered files. The default discards them.
func WithFileLogger(log *zap.Logger) FileOption {
	return func(f *FileStore) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFileStore creates the parent directory; the file itself appears on first write.
func NewFileStore(path string, opts ...FileOption) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	f := &FileStore{path: path, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	return f.WithinTx(ctx, func(ctx context.Context, s Store) error {
		return s.Set(ctx, key, value)
	})
}

func (f *FileStore) Delete(ctx context.Context, key string) error {
	return f.WithinTx(ctx, func(ctx context.Context, s Store) error {
		return s.Delete(ctx, key)
	})
}

// WithinTx holds the file lock for the duration of fn and writes the
// file only if fn succeeds and changed something.
func (f *FileStore) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	tx := &memStore{data: maps.Clone(data)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}
	return f.save(tx.data)
}

func (f *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return f.quarantine(err)
	}
	return data, nil
}

// quarantine moves an undecodable file out of the way. The file is kept so
// nothing is lost; if it can't be moved the store refuses to run rather
// than overwrite it.
func (f *FileStore) quarantine(cause error) (map[string]string, error) {
	aside := fmt.Sprintf("%s.corrupt-%s", f.path, f.now().Format("20060102T150405"))
	if err := os.Rename(f.path, aside); err != nil {
		return nil, fmt.Errorf("%w: %s: %v (moving aside: %v)", ErrCorruptFile, f.path, cause, err)
	}
	f.log.Warn("store_file_corrupt",
		zap.String("path", f.path),
		zap.String("moved_to", aside),
		zap.Error(cause),
	)
	return map[string]string{}, nil
}

func (f *FileStore) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".joyshift-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}

// memStore is the snapshot a FileStore transaction works on.
type memStore struct {
	data  map[string]string
	dirty bool
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	m.dirty = true
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	if _, ok := m.data[key]; ok {
		delete(m.data, key)
		m.dirty = true
	}
	return nil
}
