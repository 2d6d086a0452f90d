package report

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruralpay/settlement-engine/internal/models"
)

func TestWriter_WriteAccounts(t *testing.T) {
	t.Run("renders fixed precision and the derived total", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, 4)

		accounts := map[uint16]models.Account{
			1: {
				Available: decimal.NewFromFloat(40),
				Held:      decimal.NewFromFloat(50),
			},
		}

		err := w.WriteAccounts(accounts)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "client, available, held, total, locked", lines[0])
		assert.Equal(t, "1,40.0000,50.0000,90.0000,false", lines[1])
	})

	t.Run("one row per client regardless of order", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, 4)

		accounts := map[uint16]models.Account{
			1: {Available: decimal.NewFromFloat(1.5)},
			2: {Available: decimal.NewFromFloat(2.5), Locked: true},
			3: {Held: decimal.NewFromFloat(3)},
		}

		err := w.WriteAccounts(accounts)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 4)

		rows := lines[1:]
		sort.Strings(rows)
		assert.Equal(t, "1,1.5000,0.0000,1.5000,false", rows[0])
		assert.Equal(t, "2,2.5000,0.0000,2.5000,true", rows[1])
		assert.Equal(t, "3,0.0000,3.0000,3.0000,false", rows[2])
	})

	t.Run("locked accounts render a lowercase boolean", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, 4)

		accounts := map[uint16]models.Account{
			9: {Locked: true},
		}

		require.NoError(t, w.WriteAccounts(accounts))
		assert.Contains(t, buf.String(), "9,0.0000,0.0000,0.0000,true")
	})

	t.Run("empty snapshot writes only the header", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, 4)

		require.NoError(t, w.WriteAccounts(nil))
		assert.Equal(t, "client, available, held, total, locked\n", buf.String())
	})
}
