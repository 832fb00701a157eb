package exchange

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/eventlog"
	"github.com/clarel-c/go-mydex/exchange/op"
	"github.com/clarel-c/go-mydex/ledger"
	"github.com/clarel-c/go-mydex/log"
	"github.com/clarel-c/go-mydex/mydexpb"
	"github.com/clarel-c/go-mydex/order"
	"github.com/clarel-c/go-mydex/token"
)

var (
	// The external custody transfer did not complete.
	ErrTokenTransferFailed = errors.New("token transfer failed")
	// Fee percent outside the accepted [0, 100] range.
	ErrInvalidFeePercent = errors.New("invalid fee percent")
	// Empty fee or custody account at construction.
	ErrInvalidAccount = errors.New("invalid account")
)

// Manager is the front door of the exchange. Every mutating call
// runs as one serialized database transaction: the operation either
// applies in full and appends its event, or leaves no trace at all.
type Manager struct {
	database db.Database
	tokens   *token.Registry

	// custody account of the exchange at the token contracts
	custodyAccount string
	// receiver of the percentage fee on every filled order
	feeAccount string
	// whole percentage points of the buy amount, fixed for the
	// lifetime of the exchange
	feePercent int64

	LM *ledger.Manager
	OM *order.Manager
	EM *eventlog.Manager

	// Mutating operations are strictly sequential, no two of them
	// ever interleave.
	mu sync.Mutex
}

func NewManager(d db.Database, tokens *token.Registry, custodyAccount string, feeAccount string, feePercent int64) (*Manager, error) {
	if custodyAccount == "" || feeAccount == "" {
		return nil, ErrInvalidAccount
	}
	// A fee above one hundred percent can never be settled, reject
	// it at construction rather than at fill time.
	if feePercent < 0 || feePercent > 100 {
		return nil, ErrInvalidFeePercent
	}

	m := &Manager{
		database:       d,
		tokens:         tokens,
		custodyAccount: custodyAccount,
		feeAccount:     feeAccount,
		feePercent:     feePercent,
		LM:             ledger.NewManager(d, 10000),
		OM:             order.NewManager(d, 10000),
		EM:             eventlog.NewManager(d),
	}
	return m, nil
}

// FeeAccount returns the designated fee account.
func (m *Manager) FeeAccount() string {
	return m.feeAccount
}

// FeePercent returns the fee percentage.
func (m *Manager) FeePercent() int64 {
	return m.feePercent
}

// apply runs the operation as one atomic unit of work, a fail
// in-between leaves neither ledger nor event log mutations behind.
func (m *Manager) apply(o op.Op) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dt, err := m.database.Begin()
	if err != nil {
		return fmt.Errorf("begin db transaction failed: %v", err)
	}

	if err := o.Apply(dt); err != nil {
		if rerr := dt.Rollback(); rerr != nil {
			log.Errorf("rollback db transaction failed: %v", rerr)
		}
		o.Evict()
		return err
	}

	if err := dt.Commit(); err != nil {
		o.Evict()
		return fmt.Errorf("commit db transaction failed: %v", err)
	}

	return nil
}

// Deposit moves the amount of the token from the account into
// custody through the contract's delegated transfer and credits the
// internal balance. The internal credit happens only after the
// custody transfer is confirmed.
func (m *Manager) Deposit(tokenID string, accountID string, amount int64) error {
	// Validate before touching the external contract.
	if accountID == "" {
		return op.ErrInvalidAccountID
	}
	if amount <= 0 {
		return op.ErrInvalidAmount
	}
	contract, err := m.tokens.Get(tokenID)
	if err != nil {
		return err
	}

	if err := contract.TransferFrom(m.custodyAccount, accountID, m.custodyAccount, amount); err != nil {
		log.Warnw("custody transfer failed", "token", tokenID, "account", accountID, "amount", amount, "err", err)
		return ErrTokenTransferFailed
	}

	deposit := &op.Deposit{
		LM:        m.LM,
		EM:        m.EM,
		Token:     tokenID,
		AccountID: accountID,
		Amount:    amount,
		Timestamp: time.Now().Unix(),
	}
	if err := m.apply(deposit); err != nil {
		// The tokens are already in custody, pay them back so the
		// failed deposit leaves no trace on either side.
		if terr := contract.Transfer(m.custodyAccount, accountID, amount); terr != nil {
			log.Errorw("refund of failed deposit failed", "token", tokenID, "account", accountID, "amount", amount, "err", terr)
		}
		return err
	}

	log.Infow("deposit applied", "token", tokenID, "account", accountID, "amount", amount)
	return nil
}

// Withdraw debits the internal balance and instructs the contract
// to pay the amount back to the account. A failed payout rolls the
// debit back.
func (m *Manager) Withdraw(tokenID string, accountID string, amount int64) error {
	contract, err := m.tokens.Get(tokenID)
	if err != nil {
		return err
	}

	withdraw := &op.Withdraw{
		LM:        m.LM,
		EM:        m.EM,
		Token:     tokenID,
		AccountID: accountID,
		Amount:    amount,
		Timestamp: time.Now().Unix(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dt, err := m.database.Begin()
	if err != nil {
		return fmt.Errorf("begin db transaction failed: %v", err)
	}

	abort := func() {
		if rerr := dt.Rollback(); rerr != nil {
			log.Errorf("rollback db transaction failed: %v", rerr)
		}
		withdraw.Evict()
	}

	if err := withdraw.Apply(dt); err != nil {
		abort()
		return err
	}

	// The payout is confirmed before the debit becomes visible,
	// when it fails the whole withdrawal is rolled back.
	if err := contract.Transfer(m.custodyAccount, accountID, amount); err != nil {
		log.Warnw("custody payout failed", "token", tokenID, "account", accountID, "amount", amount, "err", err)
		abort()
		return ErrTokenTransferFailed
	}

	if err := dt.Commit(); err != nil {
		withdraw.Evict()
		return fmt.Errorf("commit db transaction failed: %v", err)
	}

	log.Infow("withdraw applied", "token", tokenID, "account", accountID, "amount", amount)
	return nil
}

// MakeOrder records a standing order to exchange a fixed amount of
// the sell token for a fixed amount of the buy token and returns
// the assigned order ID. The creator's balance is checked but not
// reserved, see FillOrder.
func (m *Manager) MakeOrder(creator string, buyToken string, buyAmount int64, sellToken string, sellAmount int64) (uint64, error) {
	makeOrder := &op.MakeOrder{
		LM:         m.LM,
		OM:         m.OM,
		EM:         m.EM,
		Creator:    creator,
		BuyToken:   buyToken,
		BuyAmount:  buyAmount,
		SellToken:  sellToken,
		SellAmount: sellAmount,
		Timestamp:  time.Now().Unix(),
	}
	if err := m.apply(makeOrder); err != nil {
		return 0, err
	}

	log.Infow("order created", "orderID", makeOrder.OrderID, "creator", creator)
	return makeOrder.OrderID, nil
}

// CancelOrder voids an open order of the caller.
func (m *Manager) CancelOrder(caller string, orderID uint64) error {
	cancelOrder := &op.CancelOrder{
		OM:        m.OM,
		EM:        m.EM,
		Caller:    caller,
		OrderID:   orderID,
		Timestamp: time.Now().Unix(),
	}
	if err := m.apply(cancelOrder); err != nil {
		return err
	}

	log.Infow("order cancelled", "orderID", orderID, "caller", caller)
	return nil
}

// FillOrder settles an open order on behalf of the executor. The
// executor pays the buy amount plus the fee in the buy token, the
// creator receives the buy amount, the fee account receives the
// fee, and the sell amount moves from the creator to the executor,
// all within one transaction. Both parties' balances are validated
// at fill time since order creation reserves nothing, a creator may
// have spent the funds in the meantime and the fill then fails.
func (m *Manager) FillOrder(executor string, orderID uint64) error {
	fillOrder := &op.FillOrder{
		LM:         m.LM,
		OM:         m.OM,
		EM:         m.EM,
		Executor:   executor,
		FeeAccount: m.feeAccount,
		FeePercent: m.feePercent,
		OrderID:    orderID,
		Timestamp:  time.Now().Unix(),
	}
	if err := m.apply(fillOrder); err != nil {
		return err
	}

	log.Infow("order filled", "orderID", orderID, "executor", executor)
	return nil
}

// Balance returns the custody balance of the account in the token,
// zero for accounts that never deposited.
func (m *Manager) Balance(tokenID string, accountID string) (int64, error) {
	return m.LM.Balance(m.database, tokenID, accountID)
}

// GetOrder returns the order record with the given ID.
func (m *Manager) GetOrder(orderID uint64) (*mydexpb.Order, error) {
	return m.OM.GetOrder(m.database, orderID)
}

// OrderStatus returns the lifecycle status of the order.
func (m *Manager) OrderStatus(orderID uint64) (mydexpb.OrderStatus, error) {
	return m.OM.OrderStatus(m.database, orderID)
}

// Events returns an iterator over the event log restricted to the
// given types and sequence range, in append order.
func (m *Manager) Events(kinds []mydexpb.EventType, fromSeq uint64, toSeq uint64) *eventlog.Iterator {
	return m.EM.Query(kinds, fromSeq, toSeq)
}
