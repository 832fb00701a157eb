package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarel-c/go-mydex/db/memdb"
)

func TestBalanceRoundtrip(t *testing.T) {
	memorydb := memdb.New()
	lm := NewManager(memorydb, 100)

	// An untouched account has a zero balance.
	balance, err := lm.GetBalance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Equal(t, int64(0), balance.Amount)

	err = lm.AddBalance(balance, 7000)
	assert.Nil(t, err)
	err = lm.SaveBalance(memorydb, balance)
	assert.Nil(t, err)

	amount, err := lm.Balance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Equal(t, int64(7000), amount)
}

func TestBalanceUnderflowAndOverflow(t *testing.T) {
	memorydb := memdb.New()
	lm := NewManager(memorydb, 100)

	balance, err := lm.GetBalance(memorydb, "T1", "alice")
	assert.Nil(t, err)

	err = lm.SubBalance(balance, 1)
	assert.Equal(t, ErrBalanceUnderflow, err)

	err = lm.AddBalance(balance, math.MaxInt64)
	assert.Nil(t, err)
	err = lm.AddBalance(balance, 1)
	assert.Equal(t, ErrBalanceOverflow, err)
}

func TestTransfer(t *testing.T) {
	memorydb := memdb.New()
	lm := NewManager(memorydb, 100)

	balance, err := lm.GetBalance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Nil(t, lm.AddBalance(balance, 1000))
	assert.Nil(t, lm.SaveBalance(memorydb, balance))

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	err = lm.Transfer(memorytx, "T1", "alice", "bob", 400)
	assert.Nil(t, err)
	assert.Nil(t, memorytx.Commit())

	aliceAmount, err := lm.Balance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Equal(t, int64(600), aliceAmount)

	bobAmount, err := lm.Balance(memorydb, "T1", "bob")
	assert.Nil(t, err)
	assert.Equal(t, int64(400), bobAmount)
}

func TestTransferInsufficient(t *testing.T) {
	memorydb := memdb.New()
	lm := NewManager(memorydb, 100)

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	err = lm.Transfer(memorytx, "T1", "alice", "bob", 1)
	assert.Equal(t, ErrBalanceUnderflow, err)
	assert.Nil(t, memorytx.Rollback())
}

func TestSelfTransfer(t *testing.T) {
	memorydb := memdb.New()
	lm := NewManager(memorydb, 100)

	balance, err := lm.GetBalance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Nil(t, lm.AddBalance(balance, 100))
	assert.Nil(t, lm.SaveBalance(memorydb, balance))

	// A self transfer must not change the balance.
	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	err = lm.Transfer(memorytx, "T1", "alice", "alice", 60)
	assert.Nil(t, err)
	assert.Nil(t, memorytx.Commit())

	amount, err := lm.Balance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Equal(t, int64(100), amount)
}
