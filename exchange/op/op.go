package op

import (
	"errors"

	"github.com/clarel-c/go-mydex/db"
)

var (
	// A debit exceeds the available custody funds of the caller.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// The order creator no longer holds the sell amount at fill time.
	ErrCreatorInsufficientBalance = errors.New("insufficient creator balance")
	// A non-creator attempts to cancel an order.
	ErrNotAuthorized = errors.New("not authorized")
	// Cancel or fill on an order that is already cancelled or filled.
	ErrOrderFinalized = errors.New("order already finalized")
	// Zero or negative amount supplied to an operation.
	ErrInvalidAmount = errors.New("invalid amount")
	// Empty or conflicting token IDs supplied to an operation.
	ErrInvalidToken = errors.New("invalid token")
	// Empty account ID supplied to an operation.
	ErrInvalidAccountID = errors.New("invalid accountID")
)

// Op is the interface with which every ledger-affecting operation
// complies. Apply performs all its checks before any mutation and
// writes only through the supplied transaction, so that the caller
// can roll the whole operation back. Evict drops every cache entry
// the operation may have refreshed, the caller invokes it after a
// rollback.
type Op interface {
	Apply(dt db.Tx) error
	Evict()
}
