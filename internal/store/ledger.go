package store

import (
	"github.com/ruralpay/settlement-engine/internal/models"
)

// LedgerStore retains every accepted deposit and withdrawal, keyed by
// transaction id, so later dispute-family transactions can reference them.
// Dispute, resolve and chargeback records never enter the ledger.
type LedgerStore struct {
	records map[uint32]*models.Transaction
}

// NewLedgerStore creates an empty ledger.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		records: make(map[uint32]*models.Transaction),
	}
}

// Insert stores a copy of the record under its transaction id. Transaction
// ids are expected to be globally unique, so last-write-wins.
func (ls *LedgerStore) Insert(tx models.Transaction) {
	ls.records[tx.TxID] = &tx
}

// Lookup returns a mutable handle to the stored record. The dispute-family
// handlers use it to read the amount and flip the dispute flags in place.
func (ls *LedgerStore) Lookup(txID uint32) (*models.Transaction, bool) {
	rec, ok := ls.records[txID]
	return rec, ok
}

// Len returns the number of retained records.
func (ls *LedgerStore) Len() int {
	return len(ls.records)
}
