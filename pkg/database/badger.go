package database

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// InitBadger opens the key/value store backing server-side sessions. An
// empty path opens an in-memory store.
func InitBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	} else if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return db, nil
}
