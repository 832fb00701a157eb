package memtoken

import (
	"errors"
	"sync"

	"github.com/clarel-c/go-mydex/token"
)

var (
	ErrInsufficientFunds     = errors.New("insufficient token funds")
	ErrInsufficientAllowance = errors.New("insufficient token allowance")
)

// memtoken is a memory-backed token contract with delegated
// allowance semantics, it is used by tests and by the dev node as
// the external collaborator.
type memtoken struct {
	mu sync.Mutex

	name     string
	symbol   string
	decimals uint32
	supply   int64

	balances   map[string]int64
	allowances map[string]map[string]int64
}

// New creates a token contract and mints the total supply to the
// issuer account.
func New(name string, symbol string, decimals uint32, supply int64, issuer string) token.Contract {
	mt := &memtoken{
		name:       name,
		symbol:     symbol,
		decimals:   decimals,
		supply:     supply,
		balances:   make(map[string]int64),
		allowances: make(map[string]map[string]int64),
	}
	mt.balances[issuer] = supply
	return mt
}

func (mt *memtoken) Name() (string, error) {
	return mt.name, nil
}

func (mt *memtoken) Symbol() (string, error) {
	return mt.symbol, nil
}

func (mt *memtoken) Decimals() (uint32, error) {
	return mt.decimals, nil
}

func (mt *memtoken) TotalSupply() (int64, error) {
	return mt.supply, nil
}

func (mt *memtoken) BalanceOf(accountID string) (int64, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.balances[accountID], nil
}

func (mt *memtoken) Allowance(owner string, spender string) (int64, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.allowances[owner][spender], nil
}

func (mt *memtoken) Approve(owner string, spender string, amount int64) error {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.allowances[owner] == nil {
		mt.allowances[owner] = make(map[string]int64)
	}
	mt.allowances[owner][spender] = amount
	return nil
}

func (mt *memtoken) Transfer(from string, to string, amount int64) error {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.transfer(from, to, amount)
}

func (mt *memtoken) TransferFrom(spender string, from string, to string, amount int64) error {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	if mt.allowances[from][spender] < amount {
		return ErrInsufficientAllowance
	}
	if err := mt.transfer(from, to, amount); err != nil {
		return err
	}
	mt.allowances[from][spender] -= amount
	return nil
}

func (mt *memtoken) transfer(from string, to string, amount int64) error {
	if mt.balances[from] < amount {
		return ErrInsufficientFunds
	}
	mt.balances[from] -= amount
	mt.balances[to] += amount
	return nil
}
