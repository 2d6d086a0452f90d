package report

import (
	"fmt"
	"io"

	"github.com/ruralpay/settlement-engine/internal/models"
)

// Writer renders the final account snapshot as delimited text with a fixed
// number of fractional digits. It never mutates state.
type Writer struct {
	out       io.Writer
	precision int32
}

// NewWriter creates a report writer targeting out.
func NewWriter(out io.Writer, precision int32) *Writer {
	return &Writer{
		out:       out,
		precision: precision,
	}
}

// WriteAccounts prints the header and one row per known client. Row order
// follows map iteration and is unspecified.
func (w *Writer) WriteAccounts(accounts map[uint16]models.Account) error {
	if _, err := fmt.Fprintln(w.out, "client, available, held, total, locked"); err != nil {
		return err
	}
	for clientID, acct := range accounts {
		_, err := fmt.Fprintf(w.out, "%d,%s,%s,%s,%t\n",
			clientID,
			acct.Available.StringFixed(w.precision),
			acct.Held.StringFixed(w.precision),
			acct.Total().StringFixed(w.precision),
			acct.Locked,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
