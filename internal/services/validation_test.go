package services

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ruralpay/settlement-engine/internal/models"
)

func TestValidationHelper_ValidateStruct(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("deposit with amount", func(t *testing.T) {
		tx := models.Transaction{
			Type:     models.TypeDeposit,
			ClientID: 1,
			TxID:     1,
			Amount:   decimal.NullDecimal{Decimal: decimal.NewFromFloat(50), Valid: true},
		}

		err := vh.ValidateStruct(tx)
		assert.NoError(t, err)
	})

	t.Run("dispute without amount", func(t *testing.T) {
		tx := models.Transaction{
			Type:     models.TypeDispute,
			ClientID: 1,
			TxID:     1,
		}

		err := vh.ValidateStruct(tx)
		assert.NoError(t, err)
	})

	t.Run("deposit missing amount", func(t *testing.T) {
		tx := models.Transaction{
			Type:     models.TypeDeposit,
			ClientID: 1,
			TxID:     1,
		}

		err := vh.ValidateStruct(tx)
		assert.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, validationErrors, 1)
		assert.Equal(t, "Amount", validationErrors[0].Field())
		assert.Equal(t, "required", validationErrors[0].Tag())
	})

	t.Run("withdrawal missing amount", func(t *testing.T) {
		tx := models.Transaction{
			Type:     models.TypeWithdrawal,
			ClientID: 1,
			TxID:     1,
		}

		err := vh.ValidateStruct(tx)
		assert.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		tx := models.Transaction{
			Type:     models.TransactionType("transfer"),
			ClientID: 1,
			TxID:     1,
		}

		err := vh.ValidateStruct(tx)
		assert.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Equal(t, "Type", validationErrors[0].Field())
		assert.Equal(t, "oneof", validationErrors[0].Tag())
	})
}
