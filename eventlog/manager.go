package eventlog

import (
	"encoding/binary"
	"fmt"

	mapset "github.com/deckarep/golang-set"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/log"
	"github.com/clarel-c/go-mydex/mydexpb"
)

// counter key of the monotonic sequence number
var seqKey = []byte("SEQNUM")

// Manager owns the append-only event log. Events are written in the
// same transaction as the state change they describe and are never
// mutated or removed afterwards, external observers reconstruct the
// order book and trade history by replaying ranges of the log.
type Manager struct {
	database db.Database
	bucket   string
}

func NewManager(d db.Database) *Manager {
	em := &Manager{
		database: d,
		bucket:   "EVENT",
	}
	err := em.database.NewBucket(em.bucket)
	if err != nil {
		log.Fatalf("create db bucket %s failed: %v", em.bucket, err)
	}
	return em
}

func seqToKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

// Append assigns the next sequence number to the event and writes
// it within the supplied transaction. Sequence numbers start at one
// and grow by one with each append.
func (em *Manager) Append(dt db.Tx, event *mydexpb.Event) error {
	b, err := dt.Get(em.bucket, seqKey)
	if err != nil {
		return fmt.Errorf("get event seqnum failed: %v", err)
	}

	var seq uint64 = 1
	if b != nil {
		seq = binary.BigEndian.Uint64(b) + 1
	}

	event.SeqNum = seq

	evb, err := mydexpb.Encode(event)
	if err != nil {
		return fmt.Errorf("encode event failed: %v", err)
	}
	if err := dt.Put(em.bucket, seqToKey(seq), evb); err != nil {
		return fmt.Errorf("save event in db failed: %v", err)
	}
	if err := dt.Put(em.bucket, seqKey, seqToKey(seq)); err != nil {
		return fmt.Errorf("save event seqnum failed: %v", err)
	}

	return nil
}

// LastSeq returns the sequence number of the latest appended event,
// zero when the log is empty.
func (em *Manager) LastSeq(getter db.Getter) (uint64, error) {
	b, err := getter.Get(em.bucket, seqKey)
	if err != nil {
		return 0, fmt.Errorf("get event seqnum failed: %v", err)
	}
	if b == nil {
		return 0, nil
	}
	return binary.BigEndian.Uint64(b), nil
}

// Query returns an iterator over the events with the given types in
// the sequence range [fromSeq, toSeq], in append order. A nil kinds
// slice matches every event type, a zero toSeq leaves the range
// open ended. The iterator reads committed state lazily, one event
// per step, and can be restarted with Reset.
func (em *Manager) Query(kinds []mydexpb.EventType, fromSeq uint64, toSeq uint64) *Iterator {
	kindSet := mapset.NewSet()
	for _, k := range kinds {
		kindSet.Add(k)
	}

	if fromSeq == 0 {
		fromSeq = 1
	}

	return &Iterator{
		em:      em,
		kinds:   kindSet,
		fromSeq: fromSeq,
		nextSeq: fromSeq,
		toSeq:   toSeq,
	}
}

// Iterator walks a range of the event log in append order.
type Iterator struct {
	em      *Manager
	kinds   mapset.Set
	fromSeq uint64
	nextSeq uint64
	toSeq   uint64
}

// Next returns the next matching event, a nil event means the end
// of the range has been reached.
func (it *Iterator) Next() (*mydexpb.Event, error) {
	for {
		if it.toSeq != 0 && it.nextSeq > it.toSeq {
			return nil, nil
		}

		b, err := it.em.database.Get(it.em.bucket, seqToKey(it.nextSeq))
		if err != nil {
			return nil, fmt.Errorf("get event %d failed: %v", it.nextSeq, err)
		}
		if b == nil {
			return nil, nil
		}

		event, err := mydexpb.DecodeEvent(b)
		if err != nil {
			return nil, fmt.Errorf("decode event %d failed: %v", it.nextSeq, err)
		}

		it.nextSeq++

		if it.kinds.Cardinality() == 0 || it.kinds.Contains(event.Type) {
			return event, nil
		}
	}
}

// Reset rewinds the iterator to the start of its range.
func (it *Iterator) Reset() {
	it.nextSeq = it.fromSeq
}
