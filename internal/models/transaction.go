package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of an incoming transaction record.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeDispute    TransactionType = "dispute"
	TypeResolve    TransactionType = "resolve"
	TypeChargeback TransactionType = "chargeback"
)

// Monetary reports whether this kind carries an amount and is retained in
// the ledger for later dispute lookup.
func (t TransactionType) Monetary() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

// Known reports whether the kind is one of the five supported values.
func (t TransactionType) Known() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeDispute, TypeResolve, TypeChargeback:
		return true
	}
	return false
}

// Transaction represents one parsed input record. Amount is present for
// deposits and withdrawals only. Disputed and Resolved are mutated in place
// on the ledger copy over the record's lifetime.
type Transaction struct {
	Type     TransactionType     `json:"type"`
	ClientID uint16              `json:"client"`
	TxID     uint32              `json:"tx"`
	Amount   decimal.NullDecimal `json:"amount"`
	Disputed bool                `json:"-"`
	Resolved bool                `json:"-"`
}
