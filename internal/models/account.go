package models

import (
	"github.com/shopspring/decimal"
)

// Account holds the current balance state for a single client. Accounts are
// created lazily with zero balances and are never removed.
type Account struct {
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Locked    bool            `json:"locked"`
}

// Total is the full balance: available plus held. Derived, never stored.
func (a Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}
