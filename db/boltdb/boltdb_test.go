package boltdb

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test validity of supplied key.
func TestDBOps(t *testing.T) {
	// open the database
	db := New("test.db")
	defer os.Remove("test.db")
	defer db.Close()

	// create bucket
	err := db.NewBucket("TEST")
	assert.Equal(t, nil, err)

	// test get nonexistance key
	val, err := db.Get("TEST", []byte("none"))
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte(nil), val)

	// test set key/value pair
	err = db.Put("TEST", []byte("testKey"), []byte("testValue"))
	assert.Equal(t, nil, err)

	// test get value of key
	val, err = db.Get("TEST", []byte("testKey"))
	assert.Equal(t, err, nil)
	assert.Equal(t, []byte("testValue"), val)
}

// Test transaction commit and rollback.
func TestDBTx(t *testing.T) {
	db := New("testtx.db")
	defer os.Remove("testtx.db")
	defer db.Close()

	assert.Nil(t, db.NewBucket("TEST"))

	tx, err := db.Begin()
	assert.Nil(t, err)
	assert.Nil(t, tx.Put("TEST", []byte("k1"), []byte("v1")))
	assert.Nil(t, tx.Commit())

	val, err := db.Get("TEST", []byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), val)

	tx, err = db.Begin()
	assert.Nil(t, err)
	assert.Nil(t, tx.Put("TEST", []byte("k2"), []byte("v2")))
	assert.Nil(t, tx.Rollback())

	val, err = db.Get("TEST", []byte("k2"))
	assert.Nil(t, err)
	assert.Equal(t, []byte(nil), val)
}
