// Package badgerkv stores snapshots in an embedded Badger key-value database.
package badgerkv

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v3"

	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

const keyPrefix = "snapshot/"

var _ snapshots.Backend = (*Backend)(nil)

// Backend keeps each resource under the key snapshot/<name>. Every Save is a
// single Badger transaction.
type Backend struct {
	db *badger.DB
}

// Open opens (or creates) a Badger database in dir.
func Open(dir string) (*Backend, error) {
	if dir == "" {
		return nil, errors.New("badger dir required")
	}
	return open(badger.DefaultOptions(dir).WithLogger(nil))
}

// OpenInMemory opens a Badger database that never touches disk.
func OpenInMemory() (*Backend, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func open(opts badger.Options) (*Backend, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Backend{db: db}, nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

// Load returns the stored value or snapshots.ErrNotFound.
func (b *Backend) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, snapshots.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the value for name.
func (b *Backend) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w %q", snapshots.ErrInvalidName, name)
	}
	value := append([]byte(nil), data...)
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), value)
	})
}

// List returns every stored resource name, sorted.
func (b *Backend) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names := []string{}
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			k := string(it.Item().KeyCopy(nil))
			names = append(names, strings.TrimPrefix(k, keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Close releases the database.
func (b *Backend) Close() error {
	return b.db.Close()
}
