package services

import (
	"github.com/go-playground/validator/v10"

	"github.com/ruralpay/settlement-engine/internal/models"
)

// ValidationHelper provides shared validation functionality for parsed
// transaction records before they reach the processor.
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	v := validator.New()
	v.RegisterStructValidation(transactionStructLevel, models.Transaction{})
	return &ValidationHelper{
		validator: v,
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// transactionStructLevel enforces the cross-field rules a tag cannot
// express: the kind must be one of the five supported values, and deposits
// and withdrawals must carry an amount.
func transactionStructLevel(sl validator.StructLevel) {
	tx := sl.Current().Interface().(models.Transaction)

	if !tx.Type.Known() {
		sl.ReportError(tx.Type, "Type", "type", "oneof", "")
		return
	}

	if tx.Type.Monetary() && !tx.Amount.Valid {
		sl.ReportError(tx.Amount, "Amount", "amount", "required", "")
	}
}
