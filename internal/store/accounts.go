package store

import (
	"github.com/ruralpay/settlement-engine/internal/models"
)

// AccountStore holds current balance state per client. Accounts are created
// lazily on first reference and never removed.
type AccountStore struct {
	accounts map[uint16]*models.Account
}

// NewAccountStore creates an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[uint16]*models.Account),
	}
}

// GetOrCreate returns the account for clientID, creating a zero-balance
// account if none exists yet.
func (as *AccountStore) GetOrCreate(clientID uint16) *models.Account {
	acct, ok := as.accounts[clientID]
	if !ok {
		acct = &models.Account{}
		as.accounts[clientID] = acct
	}
	return acct
}

// Get returns the account for clientID without creating one.
func (as *AccountStore) Get(clientID uint16) (*models.Account, bool) {
	acct, ok := as.accounts[clientID]
	return acct, ok
}

// Snapshot returns a read-only copy of all accounts keyed by client id.
// Iteration order over the returned map is unspecified.
func (as *AccountStore) Snapshot() map[uint16]models.Account {
	snapshot := make(map[uint16]models.Account, len(as.accounts))
	for clientID, acct := range as.accounts {
		snapshot[clientID] = *acct
	}
	return snapshot
}

// Len returns the number of known clients.
func (as *AccountStore) Len() int {
	return len(as.accounts)
}
