package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarel-c/go-mydex/db/memdb"
	"github.com/clarel-c/go-mydex/mydexpb"
)

func TestWithdrawOpBoundary(t *testing.T) {
	memorydb := memdb.New()
	lm, _, em := newManagers(memorydb)

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	depositOp := Deposit{LM: lm, EM: em, Token: "T1", AccountID: "alice", Amount: 4000, Timestamp: 1700000000}
	assert.Nil(t, depositOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	// One unit above the balance fails and the balance is untouched.
	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	withdrawOp := Withdraw{LM: lm, EM: em, Token: "T1", AccountID: "alice", Amount: 4001, Timestamp: 1700000001}
	assert.Equal(t, ErrInsufficientBalance, withdrawOp.Apply(memorytx))
	assert.Nil(t, memorytx.Rollback())
	withdrawOp.Evict()

	amount, err := lm.Balance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Equal(t, int64(4000), amount)

	// The exact balance succeeds and leaves zero behind.
	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	withdrawOp = Withdraw{LM: lm, EM: em, Token: "T1", AccountID: "alice", Amount: 4000, Timestamp: 1700000002}
	assert.Nil(t, withdrawOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	amount, err = lm.Balance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Equal(t, int64(0), amount)

	// The withdraw event carries the resulting balance.
	it := em.Query([]mydexpb.EventType{mydexpb.EventType_WITHDRAW}, 0, 0)
	event, err := it.Next()
	assert.Nil(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, int64(4000), event.Transfer.Amount)
	assert.Equal(t, int64(0), event.Transfer.Balance)
}
