package op

import (
	"fmt"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/eventlog"
	"github.com/clarel-c/go-mydex/mydexpb"
	"github.com/clarel-c/go-mydex/order"
)

// CancelOrder voids an open order. Only the creator may cancel and
// a cancelled or filled order can never be reopened.
type CancelOrder struct {
	OM        *order.Manager
	EM        *eventlog.Manager
	Caller    string
	OrderID   uint64
	Timestamp int64
}

func (c *CancelOrder) Apply(dt db.Tx) error {
	if c.Caller == "" {
		return ErrInvalidAccountID
	}

	ord, err := c.OM.GetOrder(dt, c.OrderID)
	if err != nil {
		return err
	}
	if c.Caller != ord.Creator {
		return ErrNotAuthorized
	}
	if ord.Status != mydexpb.OrderStatus_OPEN {
		return ErrOrderFinalized
	}

	ord.Status = mydexpb.OrderStatus_CANCELLED
	if err := c.OM.SaveOrder(dt, ord); err != nil {
		return fmt.Errorf("save order failed: %v", err)
	}

	// The event payload carries the original order fields, the
	// envelope timestamp is the cancellation time.
	event := &mydexpb.Event{
		Type:      mydexpb.EventType_CANCEL,
		Timestamp: c.Timestamp,
		Order:     ord,
	}
	if err := c.EM.Append(dt, event); err != nil {
		return fmt.Errorf("append cancel event failed: %v", err)
	}

	return nil
}

func (c *CancelOrder) Evict() {
	c.OM.EvictOrder(c.OrderID)
}
