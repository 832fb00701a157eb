package order

import (
	"encoding/binary"
	"errors"
	"fmt"

	pb "github.com/golang/protobuf/proto"
	lru "github.com/hashicorp/golang-lru"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/log"
	"github.com/clarel-c/go-mydex/mydexpb"
)

var (
	ErrOrderNotExist = errors.New("order not exist")
)

// counter key of the sequential order ID
var counterKey = []byte("ORDERID")

// Manager owns the order records and the sequential order ID
// counter. IDs start at one and are never reused, a cancelled
// order keeps its ID forever.
type Manager struct {
	database db.Database
	bucket   string

	// LRU cache for order records.
	orders *lru.Cache
}

func NewManager(d db.Database, cacheSize int) *Manager {
	om := &Manager{
		database: d,
		bucket:   "ORDER",
	}
	err := om.database.NewBucket(om.bucket)
	if err != nil {
		log.Fatalf("create db bucket %s failed: %v", om.bucket, err)
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		log.Fatalf("create order LRU cache failed: %v", err)
	}
	om.orders = cache
	return om
}

func orderKey(orderID uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, orderID)
	return k
}

// NextOrderID increments the persisted order ID counter within the
// supplied transaction and returns the new ID. The first call ever
// returns one, zero is never a valid order ID.
func (om *Manager) NextOrderID(dt db.Tx) (uint64, error) {
	b, err := dt.Get(om.bucket, counterKey)
	if err != nil {
		return 0, fmt.Errorf("get order ID counter failed: %v", err)
	}

	var next uint64 = 1
	if b != nil {
		next = binary.BigEndian.Uint64(b) + 1
	}

	nb := make([]byte, 8)
	binary.BigEndian.PutUint64(nb, next)
	if err := dt.Put(om.bucket, counterKey, nb); err != nil {
		return 0, fmt.Errorf("save order ID counter failed: %v", err)
	}

	return next, nil
}

// GetOrder returns a copy of the order record with the given ID,
// ErrOrderNotExist for a zero or unknown ID.
func (om *Manager) GetOrder(getter db.Getter, orderID uint64) (*mydexpb.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotExist
	}

	if ord, ok := om.orders.Get(orderID); ok {
		o := ord.(*mydexpb.Order)
		orderCopy := pb.Clone(o)
		return orderCopy.(*mydexpb.Order), nil
	}

	b, err := getter.Get(om.bucket, orderKey(orderID))
	if err != nil {
		return nil, fmt.Errorf("get order %d failed: %v", orderID, err)
	}
	if b == nil {
		return nil, ErrOrderNotExist
	}
	ord, err := mydexpb.DecodeOrder(b)
	if err != nil {
		return nil, fmt.Errorf("decode order %d failed: %v", orderID, err)
	}

	return ord, nil
}

// OrderStatus returns the lifecycle status of the order.
func (om *Manager) OrderStatus(getter db.Getter, orderID uint64) (mydexpb.OrderStatus, error) {
	ord, err := om.GetOrder(getter, orderID)
	if err != nil {
		return mydexpb.OrderStatus_OPEN, err
	}
	return ord.Status, nil
}

// SaveOrder writes the order record through the supplied putter and
// refreshes the cache. Callers which later roll back the enclosing
// transaction must evict the record with EvictOrder.
func (om *Manager) SaveOrder(putter db.Putter, ord *mydexpb.Order) error {
	ordb, err := mydexpb.Encode(ord)
	if err != nil {
		return fmt.Errorf("encode order failed: %v", err)
	}

	err = putter.Put(om.bucket, orderKey(ord.OrderID), ordb)
	if err != nil {
		return fmt.Errorf("save order in db failed: %v", err)
	}

	orderCopy := pb.Clone(ord)
	om.orders.Add(ord.OrderID, orderCopy.(*mydexpb.Order))

	return nil
}

// EvictOrder drops the cached order record, it is used after a
// transaction rollback to prevent the cache from serving
// uncommitted state.
func (om *Manager) EvictOrder(orderID uint64) {
	om.orders.Remove(orderID)
}
