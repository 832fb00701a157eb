package token

import (
	"errors"
	"sync"
)

var (
	ErrTokenNotExist = errors.New("token not exist")
)

// Contract is the interface of an external fungible token
// collaborator. The exchange never holds token state itself, it
// only instructs the contract to move units into and out of its
// custody account and mirrors the result in the internal ledger.
type Contract interface {
	Name() (string, error)
	Symbol() (string, error)
	Decimals() (uint32, error)
	TotalSupply() (int64, error)
	BalanceOf(accountID string) (int64, error)
	Allowance(owner string, spender string) (int64, error)
	// Approve authorizes the spender to transfer up to the amount
	// on behalf of the owner.
	Approve(owner string, spender string, amount int64) error
	// Transfer moves the amount from one account to another.
	Transfer(from string, to string, amount int64) error
	// TransferFrom moves the amount within the spender's allowance
	// granted by the from account.
	TransferFrom(spender string, from string, to string, amount int64) error
}

// Registry maps token IDs to their contract bindings.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]Contract
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]Contract)}
}

// Register binds the token ID to the contract, a rebind of an
// existing ID replaces the previous contract.
func (r *Registry) Register(tokenID string, c Contract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[tokenID] = c
}

// Get returns the contract bound to the token ID.
func (r *Registry) Get(tokenID string) (Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.tokens[tokenID]
	if !ok {
		return nil, ErrTokenNotExist
	}
	return c, nil
}

// IDs returns the registered token IDs.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for id := range r.tokens {
		ids = append(ids, id)
	}
	return ids
}
