package op

import (
	"fmt"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/eventlog"
	"github.com/clarel-c/go-mydex/ledger"
	"github.com/clarel-c/go-mydex/mydexpb"
	"github.com/clarel-c/go-mydex/order"
)

// MakeOrder records a new standing order. The creator's sell token
// balance is checked at creation time only, the funds are not
// reserved and remain spendable until the order is filled, where
// the balance is checked again.
type MakeOrder struct {
	LM         *ledger.Manager
	OM         *order.Manager
	EM         *eventlog.Manager
	Creator    string
	BuyToken   string
	BuyAmount  int64
	SellToken  string
	SellAmount int64
	Timestamp  int64

	// OrderID holds the assigned ID after a successful Apply.
	OrderID uint64
}

func (m *MakeOrder) Apply(dt db.Tx) error {
	if m.Creator == "" {
		return ErrInvalidAccountID
	}
	if m.BuyToken == "" || m.SellToken == "" || m.BuyToken == m.SellToken {
		return ErrInvalidToken
	}
	if m.BuyAmount <= 0 || m.SellAmount <= 0 {
		return ErrInvalidAmount
	}

	// Point-in-time check, not a reservation.
	balance, err := m.LM.Balance(dt, m.SellToken, m.Creator)
	if err != nil {
		return fmt.Errorf("get creator balance failed: %v", err)
	}
	if balance < m.SellAmount {
		return ErrInsufficientBalance
	}

	orderID, err := m.OM.NextOrderID(dt)
	if err != nil {
		return fmt.Errorf("assign order ID failed: %v", err)
	}
	m.OrderID = orderID

	ord := &mydexpb.Order{
		OrderID:    orderID,
		Creator:    m.Creator,
		BuyToken:   m.BuyToken,
		BuyAmount:  m.BuyAmount,
		SellToken:  m.SellToken,
		SellAmount: m.SellAmount,
		Timestamp:  m.Timestamp,
		Status:     mydexpb.OrderStatus_OPEN,
	}
	if err := m.OM.SaveOrder(dt, ord); err != nil {
		return fmt.Errorf("save order failed: %v", err)
	}

	event := &mydexpb.Event{
		Type:      mydexpb.EventType_ORDER,
		Timestamp: m.Timestamp,
		Order:     ord,
	}
	if err := m.EM.Append(dt, event); err != nil {
		return fmt.Errorf("append order event failed: %v", err)
	}

	return nil
}

func (m *MakeOrder) Evict() {
	if m.OrderID != 0 {
		m.OM.EvictOrder(m.OrderID)
	}
}
