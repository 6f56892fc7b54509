package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"os"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stokradar/backend/internal/domain"
)

// Key layout. Products live under a generation-tagged prefix and a pointer
// key names the generation that is currently live. A replace writes the new
// generation first and flips the pointer last, so readers resolving the
// pointer inside one transaction always scan a single complete generation.
var (
	currentGenKey       = []byte("catalog/current")
	generationKeyPrefix = []byte("catalog/gen/")
)

// BadgerStore is a persistent catalog store backed by BadgerDB
type BadgerStore struct {
	db *badger.DB
}

// badgerLogAdapter routes badger's internal logging through the standard
// logger used by the rest of the service.
type badgerLogAdapter struct{}

var _ badger.Logger = badgerLogAdapter{}

func (badgerLogAdapter) Errorf(msg string, items ...interface{}) {
	log.Printf("[BADGER] ERROR "+msg, items...)
}

func (badgerLogAdapter) Warningf(msg string, items ...interface{}) {
	log.Printf("[BADGER] WARN "+msg, items...)
}

func (badgerLogAdapter) Infof(msg string, items ...interface{})  {}
func (badgerLogAdapter) Debugf(msg string, items ...interface{}) {}

// OpenBadgerStore opens a catalog store at the given directory, creating it
// if needed. With inMemory set, no files are written (used in tests).
func OpenBadgerStore(path string, inMemory bool) (*BadgerStore, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = badgerLogAdapter{}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

// ReplaceAll writes the products under a fresh generation, flips the
// current-generation pointer, and drops the previous generation.
func (s *BadgerStore) ReplaceAll(ctx context.Context, products []domain.Product) error {
	previousGen, hasPrevious, err := s.currentGeneration()
	if err != nil {
		return err
	}

	newGen := uint64(1)
	if hasPrevious {
		newGen = previousGen + 1
	}

	// New-generation keys are invisible to readers until the pointer flip,
	// so a batch write outside the flip transaction is safe.
	batch := s.db.NewWriteBatch()
	defer batch.Cancel()
	for seq, product := range products {
		value, err := json.Marshal(product)
		if err != nil {
			return fmt.Errorf("failed to encode product %s: %w", product.ID, err)
		}
		if err := batch.Set(productKey(newGen, uint64(seq)), value); err != nil {
			return err
		}
	}
	if err := batch.Flush(); err != nil {
		return fmt.Errorf("failed to write catalog generation: %w", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(currentGenKey, encodeGeneration(newGen))
	}); err != nil {
		return fmt.Errorf("failed to flip catalog generation: %w", err)
	}

	if hasPrevious {
		if err := s.dropGeneration(previousGen); err != nil {
			// Stale keys are unreachable once the pointer moved on; leaving
			// them behind wastes space but cannot corrupt a snapshot.
			log.Printf("[BADGER] failed to drop generation %d: %v", previousGen, err)
		}
	}

	return nil
}

// Snapshot reads the live generation in sequence order
func (s *BadgerStore) Snapshot(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product

	err := s.db.View(func(txn *badger.Txn) error {
		gen, ok, err := readGeneration(txn)
		if err != nil || !ok {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = generationPrefix(gen)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var product domain.Product
			if err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &product)
			}); err != nil {
				return fmt.Errorf("failed to decode product: %w", err)
			}
			products = append(products, product)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Count returns the number of products in the live generation
func (s *BadgerStore) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		gen, ok, err := readGeneration(txn)
		if err != nil || !ok {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = generationPrefix(gen)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Clear removes the live generation and returns how many products it held
func (s *BadgerStore) Clear(ctx context.Context) (int, error) {
	deleted, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.ReplaceAll(ctx, nil); err != nil {
		return 0, err
	}
	return deleted, nil
}

// Close closes the underlying database
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) currentGeneration() (uint64, bool, error) {
	var gen uint64
	var ok bool
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		gen, ok, err = readGeneration(txn)
		return err
	})
	return gen, ok, err
}

func readGeneration(txn *badger.Txn) (uint64, bool, error) {
	item, err := txn.Get(currentGenKey)
	if err == badger.ErrKeyNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	var gen uint64
	err = item.Value(func(value []byte) error {
		if len(value) != 8 {
			return fmt.Errorf("malformed generation pointer (%d bytes)", len(value))
		}
		gen = binary.BigEndian.Uint64(value)
		return nil
	})
	return gen, err == nil, err
}

func (s *BadgerStore) dropGeneration(gen uint64) error {
	keys := make([][]byte, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = generationPrefix(gen)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}

	batch := s.db.NewWriteBatch()
	defer batch.Cancel()
	for _, key := range keys {
		if err := batch.Delete(key); err != nil {
			return err
		}
	}
	return batch.Flush()
}

func encodeGeneration(gen uint64) []byte {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, gen)
	return value
}

func generationPrefix(gen uint64) []byte {
	prefix := make([]byte, 0, len(generationKeyPrefix)+9)
	prefix = append(prefix, generationKeyPrefix...)
	prefix = binary.BigEndian.AppendUint64(prefix, gen)
	return append(prefix, '/')
}

func productKey(gen, seq uint64) []byte {
	key := generationPrefix(gen)
	return binary.BigEndian.AppendUint64(key, seq)
}
