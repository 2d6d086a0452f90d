package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ruralpay/settlement-engine/internal/models"
)

// ErrMalformedRecord marks input rows that cannot be decoded into a
// transaction record. It is distinct from every processing error: a
// malformed row is reported and skipped without aborting the stream.
var ErrMalformedRecord = errors.New("malformed record")

// Reader decodes delimited transaction records from an input stream with
// fields `type, client, tx, amount`. Fields are whitespace-trimmed and the
// kind is matched case-insensitively. The amount column may be empty or
// missing entirely for dispute-family rows.
type Reader struct {
	csv        *csv.Reader
	line       int
	skipHeader bool
}

// NewReader wraps r in a buffered CSV reader.
func NewReader(r io.Reader, bufferSize int) *Reader {
	cr := csv.NewReader(bufio.NewReaderSize(r, bufferSize))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{
		csv:        cr,
		skipHeader: true,
	}
}

// Read returns the next transaction record. It returns io.EOF once the
// stream is exhausted and an ErrMalformedRecord-wrapped error for rows that
// cannot be decoded. Errors from the underlying stream are terminal: they
// are returned without the malformed marker, since retrying the read would
// yield the same failure on every call.
func (r *Reader) Read() (*models.Transaction, error) {
	for {
		fields, err := r.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("read input: %w", err)
			}
			r.line++
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, r.line, err)
		}
		r.line++

		if r.skipHeader {
			r.skipHeader = false
			if isHeader(fields) {
				continue
			}
		}

		tx, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, r.line, err)
		}
		return tx, nil
	}
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "type")
}

func parseRecord(fields []string) (*models.Transaction, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	kind := models.TransactionType(strings.ToLower(strings.TrimSpace(fields[0])))
	if !kind.Known() {
		return nil, fmt.Errorf("unknown transaction type %q", strings.TrimSpace(fields[0]))
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client id %q", fields[1])
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q", fields[2])
	}

	tx := &models.Transaction{
		Type:     kind,
		ClientID: uint16(clientID),
		TxID:     uint32(txID),
	}

	if len(fields) >= 4 {
		raw := strings.TrimSpace(fields[3])
		if raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid amount %q", fields[3])
			}
			tx.Amount = decimal.NullDecimal{Decimal: amount, Valid: true}
		}
	}

	return tx, nil
}
