package ledger

import (
	"errors"
	"fmt"
	"math"

	pb "github.com/golang/protobuf/proto"
	lru "github.com/hashicorp/golang-lru"

	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/log"
	"github.com/clarel-c/go-mydex/mydexpb"
)

var (
	ErrBalanceOverflow  = errors.New("balance overflow")
	ErrBalanceUnderflow = errors.New("balance underflow")
)

// Manager owns the per-token, per-account balance table. Balances
// are only ever mutated through a db transaction so that a failed
// operation leaves the table untouched.
type Manager struct {
	database db.Database
	bucket   string

	// LRU cache for balance records.
	balances *lru.Cache
}

func NewManager(d db.Database, cacheSize int) *Manager {
	lm := &Manager{
		database: d,
		bucket:   "LEDGER",
	}
	err := lm.database.NewBucket(lm.bucket)
	if err != nil {
		log.Fatalf("create db bucket %s failed: %v", lm.bucket, err)
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		log.Fatalf("create ledger LRU cache failed: %v", err)
	}
	lm.balances = cache
	return lm
}

func balanceKey(token string, accountID string) string {
	return token + "_" + accountID
}

// GetBalance returns the balance record of the account in the token.
// An account which has never been credited yields a record with a
// zero amount.
func (lm *Manager) GetBalance(getter db.Getter, token string, accountID string) (*mydexpb.Balance, error) {
	k := balanceKey(token, accountID)

	// First check the LRU cache, if the record is in the cache
	// we return a deep copy of it.
	if blc, ok := lm.balances.Get(k); ok {
		b := blc.(*mydexpb.Balance)
		balanceCopy := pb.Clone(b)
		return balanceCopy.(*mydexpb.Balance), nil
	}

	// Then check the database.
	b, err := getter.Get(lm.bucket, []byte(k))
	if err != nil {
		return nil, fmt.Errorf("get balance %s failed: %v", k, err)
	}
	if b == nil {
		return &mydexpb.Balance{Token: token, AccountID: accountID, Amount: 0}, nil
	}
	balance, err := mydexpb.DecodeBalance(b)
	if err != nil {
		return nil, fmt.Errorf("decode balance %s failed: %v", k, err)
	}

	return balance, nil
}

// Balance returns the amount the account holds in the token, zero
// for accounts that were never touched.
func (lm *Manager) Balance(getter db.Getter, token string, accountID string) (int64, error) {
	balance, err := lm.GetBalance(getter, token, accountID)
	if err != nil {
		return 0, err
	}
	return balance.Amount, nil
}

// SaveBalance writes the balance record through the supplied putter
// and refreshes the cache. Callers which later roll back the
// enclosing transaction must evict the record with EvictBalance.
func (lm *Manager) SaveBalance(putter db.Putter, balance *mydexpb.Balance) error {
	blcb, err := mydexpb.Encode(balance)
	if err != nil {
		return fmt.Errorf("encode balance failed: %v", err)
	}

	k := balanceKey(balance.Token, balance.AccountID)
	err = putter.Put(lm.bucket, []byte(k), blcb)
	if err != nil {
		return fmt.Errorf("save balance in db failed: %v", err)
	}

	balanceCopy := pb.Clone(balance)
	lm.balances.Add(k, balanceCopy.(*mydexpb.Balance))

	return nil
}

// EvictBalance drops the cached balance record of the account in
// the token, it is used after a transaction rollback to prevent the
// cache from serving uncommitted amounts.
func (lm *Manager) EvictBalance(token string, accountID string) {
	lm.balances.Remove(balanceKey(token, accountID))
}

// AddBalance credits the record and checks for overflow.
func (lm *Manager) AddBalance(balance *mydexpb.Balance, amount int64) error {
	if balance.Amount > math.MaxInt64-amount {
		return ErrBalanceOverflow
	}

	balance.Amount += amount

	return nil
}

// SubBalance debits the record and checks for underflow.
func (lm *Manager) SubBalance(balance *mydexpb.Balance, amount int64) error {
	if balance.Amount < amount {
		return ErrBalanceUnderflow
	}

	balance.Amount -= amount

	return nil
}

// Transfer moves the amount between two accounts in the same token
// atomically within the supplied transaction. It never touches the
// external token contract.
func (lm *Manager) Transfer(dt db.Tx, token string, from string, to string, amount int64) error {
	// A self transfer only needs the balance check.
	if from == to {
		balance, err := lm.GetBalance(dt, token, from)
		if err != nil {
			return fmt.Errorf("get balance of sender failed: %v", err)
		}
		if balance.Amount < amount {
			return ErrBalanceUnderflow
		}
		return nil
	}

	fromBalance, err := lm.GetBalance(dt, token, from)
	if err != nil {
		return fmt.Errorf("get balance of sender failed: %v", err)
	}
	toBalance, err := lm.GetBalance(dt, token, to)
	if err != nil {
		return fmt.Errorf("get balance of receiver failed: %v", err)
	}

	if err := lm.SubBalance(fromBalance, amount); err != nil {
		return err
	}
	if err := lm.AddBalance(toBalance, amount); err != nil {
		return err
	}

	if err := lm.SaveBalance(dt, fromBalance); err != nil {
		return err
	}
	if err := lm.SaveBalance(dt, toBalance); err != nil {
		return err
	}

	return nil
}
