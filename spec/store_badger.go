package spec

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerArtifactStore persists the protocol model in an embedded Badger
// KV store, keyed by (namespace, key). It is the production path for
// loading a Registry artifact that was compiled once and shipped
// alongside a deployment, rather than rebuilt from Go literals on every
// process start.
type BadgerArtifactStore struct {
	db *badger.DB
}

func OpenBadgerArtifactStore(path string) (*BadgerArtifactStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path))
	if err != nil {
		return nil, fmt.Errorf("spec: open badger artifact store: %w", err)
	}
	return &BadgerArtifactStore{db: db}, nil
}

func (s *BadgerArtifactStore) Close() error {
	return s.db.Close()
}

// Put stores a single gob-encoded record. Used by the tooling that writes
// the artifact (out of scope as an XML compiler, but the write path itself
// is part of this module's public surface so a future compiler can target it).
func (s *BadgerArtifactStore) Put(namespace, key string, record []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(namespace, key), record)
	})
}

func (s *BadgerArtifactStore) Get(namespace, key string) (record []byte, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(namespace, key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound{Namespace: namespace, Key: key}
		}
		if err != nil {
			return err
		}
		record, err = item.ValueCopy(nil)
		return err
	})
	return
}

func (s *BadgerArtifactStore) Keys(namespace string) ([]string, error) {
	prefix := []byte(namespace + "/")
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			full := string(it.Item().KeyCopy(nil))
			keys = append(keys, full[len(prefix):])
		}
		return nil
	})
	return keys, err
}

func recordKey(namespace, key string) []byte {
	return []byte(namespace + "/" + key)
}

// ErrNotFound reports a missing artifact record.
type ErrNotFound struct {
	Namespace string
	Key       string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("spec: no record %s/%s in artifact store", e.Namespace, e.Key)
}
