package memdb

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/clarel-c/go-mydex/db"
)

type memdb struct {
	db map[string][]byte
	sync.RWMutex
}

// New creates a memory-based key-value store
// which is mainly used for testing.
func New() db.Database {
	return &memdb{db: make(map[string][]byte)}
}

func (m *memdb) NewBucket(name string) error {
	return nil
}

func key(bucket string, k []byte) string {
	return bucket + "!" + string(k)
}

// Put writes the key/value pair to the database.
func (m *memdb) Put(bucket string, k, value []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return fmt.Errorf("memdb is closed")
	}

	m.db[key(bucket, k)] = value
	return nil
}

// Delete deletes the key from the database.
func (m *memdb) Delete(bucket string, k []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return fmt.Errorf("memdb is closed")
	}

	delete(m.db, key(bucket, k))
	return nil
}

// Get retrieves the value of the key from the database. A missing
// key yields a nil value with no error, the same behaviour as the
// boltdb backend.
func (m *memdb) Get(bucket string, k []byte) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, fmt.Errorf("memdb is closed")
	}

	if val, ok := m.db[key(bucket, k)]; ok {
		return val, nil
	}
	return nil, nil
}

// GetAll retrieves the values of the keys with prefix from the
// database, in key order.
func (m *memdb) GetAll(bucket string, keyPrefix []byte) ([][]byte, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, fmt.Errorf("memdb is closed")
	}

	prefix := key(bucket, keyPrefix)
	var keys []string
	for k := range m.db {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var vals [][]byte
	for _, k := range keys {
		vals = append(vals, m.db[k])
	}
	return vals, nil
}

func (m *memdb) Close() error {
	m.Lock()
	defer m.Unlock()
	m.db = nil
	return nil
}

// Begin returns a transaction which buffers all the writes in
// memory and applies them as a whole on Commit.
func (m *memdb) Begin() (db.Tx, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, fmt.Errorf("memdb is closed")
	}

	return &memdbTx{
		db:      m,
		writes:  make(map[string][]byte),
		deletes: make(map[string]bool),
	}, nil
}

// memdbTx buffers writes until Commit so that a failed operation
// can be discarded without touching the underlying store.
type memdbTx struct {
	db      *memdb
	writes  map[string][]byte
	deletes map[string]bool
	done    bool
}

func (mtx *memdbTx) Get(bucket string, k []byte) ([]byte, error) {
	kk := key(bucket, k)
	if mtx.deletes[kk] {
		return nil, nil
	}
	if val, ok := mtx.writes[kk]; ok {
		return val, nil
	}
	return mtx.db.Get(bucket, k)
}

func (mtx *memdbTx) GetAll(bucket string, keyPrefix []byte) ([][]byte, error) {
	prefix := key(bucket, keyPrefix)

	merged := make(map[string][]byte)

	mtx.db.RLock()
	for k, v := range mtx.db.db {
		if strings.HasPrefix(k, prefix) {
			merged[k] = v
		}
	}
	mtx.db.RUnlock()

	for k, v := range mtx.writes {
		if strings.HasPrefix(k, prefix) {
			merged[k] = v
		}
	}
	for k := range mtx.deletes {
		delete(merged, k)
	}

	var keys []string
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var vals [][]byte
	for _, k := range keys {
		vals = append(vals, merged[k])
	}
	return vals, nil
}

func (mtx *memdbTx) Put(bucket string, k, value []byte) error {
	if mtx.done {
		return fmt.Errorf("transaction is finished")
	}
	kk := key(bucket, k)
	delete(mtx.deletes, kk)
	mtx.writes[kk] = value
	return nil
}

func (mtx *memdbTx) Delete(bucket string, k []byte) error {
	if mtx.done {
		return fmt.Errorf("transaction is finished")
	}
	kk := key(bucket, k)
	delete(mtx.writes, kk)
	mtx.deletes[kk] = true
	return nil
}

func (mtx *memdbTx) Commit() error {
	if mtx.done {
		return fmt.Errorf("transaction is finished")
	}
	mtx.done = true

	mtx.db.Lock()
	defer mtx.db.Unlock()

	if mtx.db.db == nil {
		return fmt.Errorf("memdb is closed")
	}
	for k, v := range mtx.writes {
		mtx.db.db[k] = v
	}
	for k := range mtx.deletes {
		delete(mtx.db.db, k)
	}
	return nil
}

func (mtx *memdbTx) Rollback() error {
	if mtx.done {
		return fmt.Errorf("transaction is finished")
	}
	mtx.done = true
	mtx.writes = nil
	mtx.deletes = nil
	return nil
}
