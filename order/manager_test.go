package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarel-c/go-mydex/db/memdb"
	"github.com/clarel-c/go-mydex/mydexpb"
)

func TestNextOrderID(t *testing.T) {
	memorydb := memdb.New()
	om := NewManager(memorydb, 100)

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)

	// The first ID ever is one and subsequent IDs grow by one.
	for want := uint64(1); want <= 5; want++ {
		id, err := om.NextOrderID(memorytx)
		assert.Nil(t, err)
		assert.Equal(t, want, id)
	}
	assert.Nil(t, memorytx.Commit())

	// The counter survives the transaction boundary.
	memorytx, err = memorydb.Begin()
	assert.Nil(t, err)
	id, err := om.NextOrderID(memorytx)
	assert.Nil(t, err)
	assert.Equal(t, uint64(6), id)
	assert.Nil(t, memorytx.Commit())
}

func TestGetOrderNotExist(t *testing.T) {
	memorydb := memdb.New()
	om := NewManager(memorydb, 100)

	_, err := om.GetOrder(memorydb, 0)
	assert.Equal(t, ErrOrderNotExist, err)

	_, err = om.GetOrder(memorydb, 42)
	assert.Equal(t, ErrOrderNotExist, err)

	_, err = om.OrderStatus(memorydb, 42)
	assert.Equal(t, ErrOrderNotExist, err)
}

func TestOrderRoundtrip(t *testing.T) {
	memorydb := memdb.New()
	om := NewManager(memorydb, 100)

	memorytx, err := memorydb.Begin()
	assert.Nil(t, err)

	id, err := om.NextOrderID(memorytx)
	assert.Nil(t, err)

	ord := &mydexpb.Order{
		OrderID:    id,
		Creator:    "alice",
		BuyToken:   "T2",
		BuyAmount:  200,
		SellToken:  "T1",
		SellAmount: 100,
		Timestamp:  1700000000,
		Status:     mydexpb.OrderStatus_OPEN,
	}
	assert.Nil(t, om.SaveOrder(memorytx, ord))
	assert.Nil(t, memorytx.Commit())

	got, err := om.GetOrder(memorydb, id)
	assert.Nil(t, err)
	assert.Equal(t, "alice", got.Creator)
	assert.Equal(t, int64(200), got.BuyAmount)
	assert.Equal(t, mydexpb.OrderStatus_OPEN, got.Status)

	status, err := om.OrderStatus(memorydb, id)
	assert.Nil(t, err)
	assert.Equal(t, mydexpb.OrderStatus_OPEN, status)

	// Mutating the returned copy must not leak into the registry.
	got.Status = mydexpb.OrderStatus_FILLED
	status, err = om.OrderStatus(memorydb, id)
	assert.Nil(t, err)
	assert.Equal(t, mydexpb.OrderStatus_OPEN, status)
}
