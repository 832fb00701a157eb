package op

import (
	"fmt"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/eventlog"
	"github.com/clarel-c/go-mydex/ledger"
	"github.com/clarel-c/go-mydex/mydexpb"
)

// Deposit credits the custody balance of an account. The external
// token contract must have confirmed the delegated transfer into
// custody before this operation is applied.
type Deposit struct {
	LM        *ledger.Manager
	EM        *eventlog.Manager
	Token     string
	AccountID string
	Amount    int64
	Timestamp int64
}

func (d *Deposit) Apply(dt db.Tx) error {
	if d.Token == "" {
		return ErrInvalidToken
	}
	if d.AccountID == "" {
		return ErrInvalidAccountID
	}
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}

	balance, err := d.LM.GetBalance(dt, d.Token, d.AccountID)
	if err != nil {
		return fmt.Errorf("get balance failed: %v", err)
	}
	if err := d.LM.AddBalance(balance, d.Amount); err != nil {
		return err
	}
	if err := d.LM.SaveBalance(dt, balance); err != nil {
		return fmt.Errorf("save balance failed: %v", err)
	}

	event := &mydexpb.Event{
		Type:      mydexpb.EventType_DEPOSIT,
		Timestamp: d.Timestamp,
		Transfer: &mydexpb.TransferInfo{
			Token:     d.Token,
			AccountID: d.AccountID,
			Amount:    d.Amount,
			Balance:   balance.Amount,
		},
	}
	if err := d.EM.Append(dt, event); err != nil {
		return fmt.Errorf("append deposit event failed: %v", err)
	}

	return nil
}

func (d *Deposit) Evict() {
	d.LM.EvictBalance(d.Token, d.AccountID)
}
