package db

import (
	"fmt"
)

var constructors = make(map[string]Ctor)

// Getter is the interface for retrieving values from a bucket,
// it is implemented by both Database and Tx so that read paths
// can work inside or outside of a transaction.
type Getter interface {
	Get(bucket string, key []byte) ([]byte, error)
	GetAll(bucket string, keyPrefix []byte) ([][]byte, error)
}

// Putter is the interface for writing key/value pairs to a bucket.
type Putter interface {
	Put(bucket string, key, value []byte) error
	Delete(bucket string, key []byte) error
}

// Tx is a writable transaction, every mutation performed through
// it becomes visible atomically on Commit and is discarded as a
// whole on Rollback.
type Tx interface {
	Getter
	Putter
	Commit() error
	Rollback() error
}

// Database is the generic storage interface of the exchange, the
// concrete backend is chosen by name through the registry below.
type Database interface {
	Getter
	Putter
	NewBucket(name string) error
	Begin() (Tx, error)
	Close() error
}

// Ctor creates a database backend with the supplied file path.
type Ctor func(path string) Database

// Register makes a database backend available by name, each
// backend should call it from its package init.
func Register(name string, ctor Ctor) {
	constructors[name] = ctor
}

// GetDB returns the constructor of a registered backend.
func GetDB(name string) (Ctor, error) {
	if _, ok := constructors[name]; !ok {
		return nil, fmt.Errorf("database %s not registered", name)
	}
	return constructors[name], nil
}
