package op

import (
	"fmt"
	"math"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/eventlog"
	"github.com/clarel-c/go-mydex/ledger"
	"github.com/clarel-c/go-mydex/mydexpb"
	"github.com/clarel-c/go-mydex/order"
)

// FillOrder settles an open order between its creator and the
// executor and routes the fee to the fee account. The creator's
// balance is re-validated here because the funds were never
// reserved at creation time.
type FillOrder struct {
	LM         *ledger.Manager
	OM         *order.Manager
	EM         *eventlog.Manager
	Executor   string
	FeeAccount string
	FeePercent int64
	OrderID    uint64
	Timestamp  int64

	// remembered by Apply for cache eviction on rollback
	buyToken  string
	sellToken string
	creator   string
}

func (f *FillOrder) Apply(dt db.Tx) error {
	if f.Executor == "" {
		return ErrInvalidAccountID
	}

	ord, err := f.OM.GetOrder(dt, f.OrderID)
	if err != nil {
		return err
	}
	f.buyToken = ord.BuyToken
	f.sellToken = ord.SellToken
	f.creator = ord.Creator

	if ord.Status != mydexpb.OrderStatus_OPEN {
		return ErrOrderFinalized
	}

	// Fee is truncated towards zero, 200 units at one percent
	// yields exactly two.
	fee := DivideBigInt(MultiplyInt64(ord.BuyAmount, f.FeePercent), 100, RoundDown)
	if ord.BuyAmount > math.MaxInt64-fee {
		return ErrInsufficientBalance
	}
	total := ord.BuyAmount + fee

	// Collect the balance records in a unit of work keyed by
	// (token, account) so that overlapping parties, the fee account
	// included, share one record and every mutation lands exactly
	// once.
	records := make(map[string]*mydexpb.Balance)
	var keys []string
	load := func(token string, accountID string) (*mydexpb.Balance, error) {
		k := token + "_" + accountID
		if blc, ok := records[k]; ok {
			return blc, nil
		}
		blc, err := f.LM.GetBalance(dt, token, accountID)
		if err != nil {
			return nil, fmt.Errorf("get balance failed: %v", err)
		}
		records[k] = blc
		keys = append(keys, k)
		return blc, nil
	}

	executorBuy, err := load(ord.BuyToken, f.Executor)
	if err != nil {
		return err
	}
	creatorSell, err := load(ord.SellToken, ord.Creator)
	if err != nil {
		return err
	}

	// All checks precede all mutations.
	if executorBuy.Amount < total {
		return ErrInsufficientBalance
	}
	if creatorSell.Amount < ord.SellAmount {
		return ErrCreatorInsufficientBalance
	}

	creatorBuy, err := load(ord.BuyToken, ord.Creator)
	if err != nil {
		return err
	}
	feeBuy, err := load(ord.BuyToken, f.FeeAccount)
	if err != nil {
		return err
	}
	executorSell, err := load(ord.SellToken, f.Executor)
	if err != nil {
		return err
	}

	if err := f.LM.SubBalance(executorBuy, total); err != nil {
		return ErrInsufficientBalance
	}
	if err := f.LM.AddBalance(creatorBuy, ord.BuyAmount); err != nil {
		return err
	}
	if err := f.LM.AddBalance(feeBuy, fee); err != nil {
		return err
	}
	if err := f.LM.SubBalance(creatorSell, ord.SellAmount); err != nil {
		return ErrCreatorInsufficientBalance
	}
	if err := f.LM.AddBalance(executorSell, ord.SellAmount); err != nil {
		return err
	}

	for _, k := range keys {
		if err := f.LM.SaveBalance(dt, records[k]); err != nil {
			return fmt.Errorf("save balance failed: %v", err)
		}
	}

	ord.Status = mydexpb.OrderStatus_FILLED
	if err := f.OM.SaveOrder(dt, ord); err != nil {
		return fmt.Errorf("save order failed: %v", err)
	}

	event := &mydexpb.Event{
		Type:      mydexpb.EventType_TRADE,
		Timestamp: f.Timestamp,
		Trade: &mydexpb.TradeInfo{
			OrderID:    ord.OrderID,
			Executor:   f.Executor,
			BuyToken:   ord.BuyToken,
			BuyAmount:  ord.BuyAmount,
			SellToken:  ord.SellToken,
			SellAmount: ord.SellAmount,
			Initiator:  ord.Creator,
			Fee:        fee,
		},
	}
	if err := f.EM.Append(dt, event); err != nil {
		return fmt.Errorf("append trade event failed: %v", err)
	}

	return nil
}

func (f *FillOrder) Evict() {
	f.OM.EvictOrder(f.OrderID)
	if f.buyToken == "" {
		return
	}
	f.LM.EvictBalance(f.buyToken, f.Executor)
	f.LM.EvictBalance(f.buyToken, f.creator)
	f.LM.EvictBalance(f.buyToken, f.FeeAccount)
	f.LM.EvictBalance(f.sellToken, f.creator)
	f.LM.EvictBalance(f.sellToken, f.Executor)
}
