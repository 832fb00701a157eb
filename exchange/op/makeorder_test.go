package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarel-c/go-mydex/db/memdb"
	"github.com/clarel-c/go-mydex/mydexpb"
)

func TestMakeOrderOp(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	depositOp := Deposit{LM: lm, EM: em, Token: "T1", AccountID: "alice", Amount: 7000, Timestamp: 1700000000}
	assert.Nil(t, depositOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())

	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	makeOrderOp := MakeOrder{
		LM:         lm,
		OM:         om,
		EM:         em,
		Creator:    "alice",
		BuyToken:   "T2",
		BuyAmount:  200,
		SellToken:  "T1",
		SellAmount: 100,
		Timestamp:  1700000001,
	}
	assert.Nil(t, makeOrderOp.Apply(memorytx))
	assert.Nil(t, memorytx.Commit())
	assert.Equal(t, uint64(1), makeOrderOp.OrderID)

	ord, err := om.GetOrder(memorydb, 1)
	assert.Nil(t, err)
	assert.Equal(t, "alice", ord.Creator)
	assert.Equal(t, mydexpb.OrderStatus_OPEN, ord.Status)

	// Creating an order reserves nothing, the full balance stays
	// spendable.
	amount, err := lm.Balance(memorydb, "T1", "alice")
	assert.Nil(t, err)
	assert.Equal(t, int64(7000), amount)

	// An order event was appended.
	it := em.Query([]mydexpb.EventType{mydexpb.EventType_ORDER}, 0, 0)
	event, err := it.Next()
	assert.Nil(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, uint64(1), event.Order.OrderID)
	assert.Equal(t, "alice", event.Order.Creator)
}

func TestMakeOrderOpInsufficientBalance(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	defer memorytx.Rollback()

	makeOrderOp := MakeOrder{
		LM:         lm,
		OM:         om,
		EM:         em,
		Creator:    "alice",
		BuyToken:   "T2",
		BuyAmount:  200,
		SellToken:  "T1",
		SellAmount: 100,
		Timestamp:  1700000001,
	}
	assert.Equal(t, ErrInsufficientBalance, makeOrderOp.Apply(memorytx))
}

func TestMakeOrderOpInvalid(t *testing.T) {
	memorydb := memdb.New()
	lm, om, em := newManagers(memorydb)

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)
	defer memorytx.Rollback()

	makeOrderOp := MakeOrder{LM: lm, OM: om, EM: em, Creator: "alice", BuyToken: "T2", BuyAmount: 0, SellToken: "T1", SellAmount: 100}
	assert.Equal(t, ErrInvalidAmount, makeOrderOp.Apply(memorytx))

	makeOrderOp = MakeOrder{LM: lm, OM: om, EM: em, Creator: "alice", BuyToken: "T1", BuyAmount: 200, SellToken: "T1", SellAmount: 100}
	assert.Equal(t, ErrInvalidToken, makeOrderOp.Apply(memorytx))

	makeOrderOp = MakeOrder{LM: lm, OM: om, EM: em, Creator: "", BuyToken: "T2", BuyAmount: 200, SellToken: "T1", SellAmount: 100}
	assert.Equal(t, ErrInvalidAccountID, makeOrderOp.Apply(memorytx))
}
