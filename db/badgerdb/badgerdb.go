// Copyright 2023 The go-mydex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badgerdb

import (
	"github.com/dgraph-io/badger"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/log"
)

func init() {
	db.Register("badger", New)
}

type badgerdb struct {
	db *badger.DB
}

// New creates a new badger backed database in the specified
// directory. Badger has no native bucket concept so bucket names
// are folded into the keys as prefixes. It will panic if the
// database cannot be opened.
func New(path string) db.Database {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	bd, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("open badger db in %s failed: %v", path, err)
	}
	return &badgerdb{db: bd}
}

func bkey(bucket string, key []byte) []byte {
	k := []byte(bucket + "!")
	return append(k, key...)
}

func (bd *badgerdb) NewBucket(name string) error {
	return nil
}

// Put writes the key/value pair to the database.
func (bd *badgerdb) Put(bucket string, key, value []byte) error {
	return bd.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bkey(bucket, key), value)
	})
}

// Delete deletes the key from the database.
func (bd *badgerdb) Delete(bucket string, key []byte) error {
	return bd.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(bkey(bucket, key))
	})
}

// Get retrieves the value of the key from the database. A missing
// key yields a nil value with no error, the same behaviour as the
// boltdb backend.
func (bd *badgerdb) Get(bucket string, key []byte) ([]byte, error) {
	var val []byte
	if err := bd.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bkey(bucket, key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	}); err != nil {
		return nil, err
	}
	return val, nil
}

// GetAll retrieves the values of the keys with prefix from the
// database, in key order.
func (bd *badgerdb) GetAll(bucket string, keyPrefix []byte) ([][]byte, error) {
	var vals [][]byte
	if err := bd.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := bkey(bucket, keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			vals = append(vals, v)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return vals, nil
}

// Close closes the underlying database.
func (bd *badgerdb) Close() error {
	if bd.db != nil {
		return bd.db.Close()
	}
	return nil
}

// Begin returns a writable database transaction object which can
// be used for manually managing the transaction.
func (bd *badgerdb) Begin() (db.Tx, error) {
	txn := bd.db.NewTransaction(true)
	return &badgerdbTx{txn: txn}, nil
}

// badgerdbTx wraps the badger transaction to provide the desired interface.
type badgerdbTx struct {
	txn *badger.Txn
}

func (btx *badgerdbTx) Get(bucket string, key []byte) ([]byte, error) {
	item, err := btx.txn.Get(bkey(bucket, key))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (btx *badgerdbTx) GetAll(bucket string, keyPrefix []byte) ([][]byte, error) {
	var vals [][]byte
	opts := badger.DefaultIteratorOptions
	it := btx.txn.NewIterator(opts)
	defer it.Close()
	prefix := bkey(bucket, keyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		v, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (btx *badgerdbTx) Put(bucket string, key, value []byte) error {
	return btx.txn.Set(bkey(bucket, key), value)
}

func (btx *badgerdbTx) Delete(bucket string, key []byte) error {
	return btx.txn.Delete(bkey(bucket, key))
}

func (btx *badgerdbTx) Rollback() error {
	btx.txn.Discard()
	return nil
}

func (btx *badgerdbTx) Commit() error {
	return btx.txn.Commit()
}
