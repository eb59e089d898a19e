package kvstore

import (
	"fmt"

	"github.com/alexanderramin/joyshift/internal/db"
	"go.uber.org/zap"
)

// Backend kinds accepted by Open.
const (
	KindSQLite = "sqlite"
	KindFile   = "file"
)

// Open returns the configured backend and a close func. An empty kind
// means sqlite. log may be nil.
func Open(kind, path string, log *zap.Logger) (Backend, func() error, error) {
	switch kind {
	case "", KindSQLite:
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteBackend(database), database.Close, nil
	case KindFile:
		fs, err := NewFileStore(path, WithFileLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return fs, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q (want %q or %q)", kind, KindSQLite, KindFile)
	}
}
