package services

import (
	"errors"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/ruralpay/settlement-engine/internal/ingest"
	"github.com/ruralpay/settlement-engine/internal/store"
)

// Summary aggregates the outcome of a single processing run.
type Summary struct {
	SessionID  string `json:"session_id"`
	Read       int    `json:"read"`
	Applied    int    `json:"applied"`
	Rejected   int    `json:"rejected"`
	Malformed  int    `json:"malformed"`
	Accounts   int    `json:"accounts"`
	LedgerSize int    `json:"ledger_size"`
}

// EngineService drives a full run: it pulls records from the reader one at a
// time, applies them through the processor in input order, and commits
// accepted deposits and withdrawals to the ledger. Every rejection is local:
// it is logged and the stream continues with the next record.
type EngineService struct {
	processor *ProcessorService
	validator *ValidationHelper
	accounts  *store.AccountStore
	ledger    *store.LedgerStore
}

// NewEngineService creates an engine over the given stores.
func NewEngineService(accounts *store.AccountStore, ledger *store.LedgerStore) *EngineService {
	return &EngineService{
		processor: NewProcessorService(accounts, ledger),
		validator: NewValidationHelper(),
		accounts:  accounts,
		ledger:    ledger,
	}
}

// Run consumes the reader until EOF and returns the run summary. Each record
// is fully applied, rejected or skipped before the next one is read, so
// dispute-family records always see prior deposits already committed.
func (es *EngineService) Run(r *ingest.Reader) Summary {
	sessionID := uuid.New().String()
	summary := Summary{SessionID: sessionID}

	for {
		tx, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !errors.Is(err, ingest.ErrMalformedRecord) {
				// The stream itself failed; rereading cannot recover.
				log.Printf("[ENGINE] session=%s input error, stopping: %v", sessionID, err)
				break
			}
			summary.Read++
			summary.Malformed++
			log.Printf("[ENGINE] session=%s skipping: %v", sessionID, err)
			continue
		}
		summary.Read++

		if err := es.validator.ValidateStruct(*tx); err != nil {
			summary.Malformed++
			log.Printf("[ENGINE] session=%s rejecting tx=%d client=%d: %v", sessionID, tx.TxID, tx.ClientID, err)
			continue
		}

		if err := es.processor.Process(tx); err != nil {
			summary.Rejected++
			log.Printf("[ENGINE] session=%s tx=%d client=%d: %v", sessionID, tx.TxID, tx.ClientID, err)
			continue
		}

		if tx.Type.Monetary() {
			es.ledger.Insert(*tx)
		}
		summary.Applied++
	}

	summary.Accounts = es.accounts.Len()
	summary.LedgerSize = es.ledger.Len()
	log.Printf("[ENGINE] session=%s done: read=%d applied=%d rejected=%d malformed=%d accounts=%d ledger=%d",
		sessionID, summary.Read, summary.Applied, summary.Rejected, summary.Malformed,
		summary.Accounts, summary.LedgerSize)
	return summary
}
