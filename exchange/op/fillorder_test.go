package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarel-c/go-mydex/db/memdb"
	"github.com/clarel-c/go-mydex/mydexpb"
)

func TestFillOrderOp(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)
	orderID := makeTestOrder(t, memorydb, lm, om, em, "alice")

	// Fund the executor with the buy token.
	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	depositOp := Deposit{LM: lm, EM: em, Token: "T2", AccountID: "bob", Amount: 7000, Timestamp: 1700000001}
	assert.Nil(t, depositOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	fillOp := FillOrder{
		LM:         lm,
		OM:         om,
		EM:         em,
		Executor:   "bob",
		FeeAccount: "fees",
		FeePercent: 1,
		OrderID:    orderID,
		Timestamp:  1700000002,
	}
	assert.Nil(t, fillOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	// The order was buy 200 T2 for 100 T1 with one percent fee:
	// bob pays 202 T2, alice receives 200 T2, the fee account
	// receives 2 T2 and 100 T1 move from alice to bob.
	check := func(token, account string, want int64) {
		amount, err := lm.Balance(memorydb, token, account)
		assert.Nil(t, err)
		assert.Equal(t, want, amount)
	}
	check("T1", "alice", 6900)
	check("T2", "alice", 200)
	check("T1", "bob", 100)
	check("T2", "bob", 6798)
	check("T2", "fees", 2)
	check("T1", "fees", 0)

	status, err := om.OrderStatus(memorydb, orderID)
	assert.Nil(t, err)
	assert.Equal(t, mydexpb.OrderStatus_FILLED, status)

	// The trade event names both parties.
	it := em.Query([]mydexpb.EventType{mydexpb.EventType_TRADE}, 0, 0)
	event, err := it.Next()
	assert.Nil(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, orderID, event.Trade.OrderID)
	assert.Equal(t, "bob", event.Trade.Executor)
	assert.Equal(t, "alice", event.Trade.Initiator)
	assert.Equal(t, int64(200), event.Trade.BuyAmount)
	assert.Equal(t, int64(100), event.Trade.SellAmount)
}

func TestFillOrderOpExecutorInsufficient(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)
	orderID := makeTestOrder(t, memorydb, lm, om, em, "alice")

	// 201 is one unit short of the 200 + 2 fee the executor owes.
	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	depositOp := Deposit{LM: lm, EM: em, Token: "T2", AccountID: "bob", Amount: 201, Timestamp: 1700000001}
	assert.Nil(t, depositOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	defer memorytx.Rollback()
	fillOp := FillOrder{LM: lm, OM: om, EM: em, Executor: "bob", FeeAccount: "fees", FeePercent: 1, OrderID: orderID, Timestamp: 1700000002}
	assert.Equal(t, ErrInsufficientBalance, fillOp.Apply(memorytx))
}

func TestFillOrderOpCreatorInsufficient(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)
	orderID := makeTestOrder(t, memorydb, lm, om, em, "alice")

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	depositOp := Deposit{LM: lm, EM: em, Token: "T2", AccountID: "bob", Amount: 7000, Timestamp: 1700000001}
	assert.Nil(t, depositOp.Apply(memorytx))
	// The creator spends the sell funds before the fill, nothing
	// was reserved at creation time.
	withdrawOp := Withdraw{LM: lm, EM: em, Token: "T1", AccountID: "alice", Amount: 6950, Timestamp: 1700000001}
	assert.Nil(t, withdrawOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	defer memorytx.Rollback()
	fillOp := FillOrder{LM: lm, OM: om, EM: em, Executor: "bob", FeeAccount: "fees", FeePercent: 1, OrderID: orderID, Timestamp: 1700000002}
	assert.Equal(t, ErrCreatorInsufficientBalance, fillOp.Apply(memorytx))
}

func TestFillOrderOpFinalized(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)
	orderID := makeTestOrder(t, memorydb, lm, om, em, "alice")

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	cancelOp := CancelOrder{OM: om, EM: em, Caller: "alice", OrderID: orderID, Timestamp: 1700000001}
	assert.Nil(t, cancelOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	defer memorytx.Rollback()
	fillOp := FillOrder{LM: lm, OM: om, EM: em, Executor: "bob", FeeAccount: "fees", FeePercent: 1, OrderID: orderID, Timestamp: 1700000002}
	assert.Equal(t, ErrOrderFinalized, fillOp.Apply(memorytx))
}

func TestFillOrderOpFeeAccountAsExecutor(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)
	orderID := makeTestOrder(t, memorydb, lm, om, em, "alice")

	// The fee account itself fills the order, the fee flows back
	// to it and conservation still holds.
	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	depositOp := Deposit{LM: lm, EM: em, Token: "T2", AccountID: "fees", Amount: 1000, Timestamp: 1700000001}
	assert.Nil(t, depositOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	fillOp := FillOrder{LM: lm, OM: om, EM: em, Executor: "fees", FeeAccount: "fees", FeePercent: 1, OrderID: orderID, Timestamp: 1700000002}
	assert.Nil(t, fillOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	check := func(token, account string, want int64) {
		amount, err := lm.Balance(memorydb, token, account)
		assert.Nil(t, err)
		assert.Equal(t, want, amount)
	}
	// paid 202, got the 2 fee back
	check("T2", "fees", 800)
	check("T2", "alice", 200)
	check("T1", "alice", 6900)
	check("T1", "fees", 100)
}

func TestFillOrderOpZeroFee(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)
	orderID := makeTestOrder(t, memorydb, lm, om, em, "alice")

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	depositOp := Deposit{LM: lm, EM: em, Token: "T2", AccountID: "bob", Amount: 200, Timestamp: 1700000001}
	assert.Nil(t, depositOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	fillOp := FillOrder{LM: lm, OM: om, EM: em, Executor: "bob", FeeAccount: "fees", FeePercent: 0, OrderID: orderID, Timestamp: 1700000002}
	assert.Nil(t, fillOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	amount, err := lm.Balance(memorydb, "T2", "fees")
	assert.Nil(t, err)
	assert.Equal(t, int64(0), amount)
}
