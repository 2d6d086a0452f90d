package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ruralpay/settlement-engine/internal/models"
	"github.com/ruralpay/settlement-engine/internal/store"
)

var (
	ErrAccountFrozen       = errors.New("account frozen")
	ErrLimitExceeded       = errors.New("deposit limit exceeded")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAlreadyDisputed     = errors.New("transaction is already disputed")
	ErrNotDisputed         = errors.New("transaction is not disputed")
	ErrAlreadyResolved     = errors.New("transaction already resolved")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrForeignClient       = errors.New("transaction belongs to another client")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrClientNotFound      = errors.New("client not found")
)

// maxBalance caps the available balance a deposit may reach. It guards the
// representable range of the scalar, not a business limit.
var maxBalance = decimal.NewFromFloat(math.MaxFloat32)

// ProcessorService applies one transaction at a time against the account and
// ledger stores. It validates preconditions, applies the state transition,
// and returns a sentinel error when the transaction must be rejected. Ledger
// retention is the caller's decision: the processor never inserts records,
// so dispute-family kinds cannot pollute the ledger.
type ProcessorService struct {
	accounts *store.AccountStore
	ledger   *store.LedgerStore
}

// NewProcessorService creates a processor over the given stores.
func NewProcessorService(accounts *store.AccountStore, ledger *store.LedgerStore) *ProcessorService {
	return &ProcessorService{
		accounts: accounts,
		ledger:   ledger,
	}
}

// Process dispatches the transaction to the handler for its kind. A
// rejection aborts only this transaction; the stores are left untouched.
func (ps *ProcessorService) Process(tx *models.Transaction) error {
	switch tx.Type {
	case models.TypeDeposit:
		return ps.creditAccount(tx)
	case models.TypeWithdrawal:
		return ps.debitAccount(tx)
	case models.TypeDispute:
		return ps.disputeTransaction(tx.ClientID, tx.TxID)
	case models.TypeResolve:
		return ps.resolveTransaction(tx.ClientID, tx.TxID)
	case models.TypeChargeback:
		return ps.chargebackTransaction(tx.ClientID, tx.TxID)
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, tx.Type)
	}
}

func (ps *ProcessorService) creditAccount(tx *models.Transaction) error {
	if !tx.Amount.Valid {
		return ErrInvalidTransaction
	}
	acct := ps.accounts.GetOrCreate(tx.ClientID)
	if acct.Locked {
		return ErrAccountFrozen
	}
	amount := tx.Amount.Decimal
	if acct.Available.Add(amount).GreaterThanOrEqual(maxBalance) {
		return ErrLimitExceeded
	}
	acct.Available = acct.Available.Add(amount)
	return nil
}

func (ps *ProcessorService) debitAccount(tx *models.Transaction) error {
	if !tx.Amount.Valid {
		return ErrInvalidTransaction
	}
	acct := ps.accounts.GetOrCreate(tx.ClientID)
	if acct.Locked {
		return ErrAccountFrozen
	}
	amount := tx.Amount.Decimal
	// Strict inequality: an exact-balance withdrawal is rejected.
	if !acct.Available.GreaterThan(amount) {
		return ErrInsufficientFunds
	}
	acct.Available = acct.Available.Sub(amount)
	return nil
}

func (ps *ProcessorService) disputeTransaction(clientID uint16, txID uint32) error {
	rec, err := ps.referencedRecord(clientID, txID)
	if err != nil {
		return err
	}
	if rec.Disputed {
		return ErrAlreadyDisputed
	}
	acct, ok := ps.accounts.Get(clientID)
	if !ok {
		return ErrClientNotFound
	}
	if acct.Locked {
		return ErrAccountFrozen
	}
	acct.Held = acct.Held.Add(rec.Amount.Decimal)
	rec.Disputed = true
	return nil
}

func (ps *ProcessorService) resolveTransaction(clientID uint16, txID uint32) error {
	rec, err := ps.referencedRecord(clientID, txID)
	if err != nil {
		return err
	}
	if !rec.Disputed {
		return ErrNotDisputed
	}
	if rec.Resolved {
		return ErrAlreadyResolved
	}
	acct, ok := ps.accounts.Get(clientID)
	if !ok {
		return ErrClientNotFound
	}
	if acct.Locked {
		return ErrAccountFrozen
	}
	acct.Available = acct.Available.Add(rec.Amount.Decimal)
	acct.Held = acct.Held.Sub(rec.Amount.Decimal)
	rec.Resolved = true
	return nil
}

// chargebackTransaction locks the account without checking the frozen flag
// first, and clears Disputed while leaving Resolved false. Both quirks are
// kept as-is; normalizing them would change which follow-up transactions
// the engine accepts.
func (ps *ProcessorService) chargebackTransaction(clientID uint16, txID uint32) error {
	rec, err := ps.referencedRecord(clientID, txID)
	if err != nil {
		return err
	}
	if !rec.Disputed {
		return ErrNotDisputed
	}
	if rec.Resolved {
		return ErrAlreadyResolved
	}
	acct, ok := ps.accounts.Get(clientID)
	if !ok {
		return ErrClientNotFound
	}
	acct.Held = acct.Held.Sub(rec.Amount.Decimal)
	acct.Locked = true
	rec.Disputed = false
	return nil
}

// referencedRecord resolves the ledger record a dispute-family transaction
// points at, validating ownership and that the record carries an amount.
// Records admitted into the ledger always carry an amount; the check guards
// against confusing a dispute-family record with the deposit or withdrawal
// it references.
func (ps *ProcessorService) referencedRecord(clientID uint16, txID uint32) (*models.Transaction, error) {
	rec, ok := ps.ledger.Lookup(txID)
	if !ok {
		return nil, ErrTransactionNotFound
	}
	if rec.ClientID != clientID {
		return nil, ErrForeignClient
	}
	if !rec.Amount.Valid {
		return nil, ErrInvalidTransaction
	}
	return rec, nil
}
