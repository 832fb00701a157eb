package op

import (
	"fmt"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/eventlog"
	"github.com/clarel-c/go-mydex/ledger"
	"github.com/clarel-c/go-mydex/mydexpb"
)

// Withdraw debits the custody balance of an account. The caller
// instructs the external token contract to pay the amount back to
// the account after the operation is applied and rolls the debit
// back if the payout does not succeed.
type Withdraw struct {
	LM        *ledger.Manager
	EM        *eventlog.Manager
	Token     string
	AccountID string
	Amount    int64
	Timestamp int64
}

func (w *Withdraw) Apply(dt db.Tx) error {
	if w.Token == "" {
		return ErrInvalidToken
	}
	if w.AccountID == "" {
		return ErrInvalidAccountID
	}
	if w.Amount <= 0 {
		return ErrInvalidAmount
	}

	balance, err := w.LM.GetBalance(dt, w.Token, w.AccountID)
	if err != nil {
		return fmt.Errorf("get balance failed: %v", err)
	}
	if balance.Amount < w.Amount {
		return ErrInsufficientBalance
	}
	if err := w.LM.SubBalance(balance, w.Amount); err != nil {
		return ErrInsufficientBalance
	}
	if err := w.LM.SaveBalance(dt, balance); err != nil {
		return fmt.Errorf("save balance failed: %v", err)
	}

	event := &mydexpb.Event{
		Type:      mydexpb.EventType_WITHDRAW,
		Timestamp: w.Timestamp,
		Transfer: &mydexpb.TransferInfo{
			Token:     w.Token,
			AccountID: w.AccountID,
			Amount:    w.Amount,
			Balance:   balance.Amount,
		},
	}
	if err := w.EM.Append(dt, event); err != nil {
		return fmt.Errorf("append withdraw event failed: %v", err)
	}

	return nil
}

func (w *Withdraw) Evict() {
	w.LM.EvictBalance(w.Token, w.AccountID)
}
