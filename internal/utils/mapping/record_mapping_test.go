package mapping_test

import (
	"testing"
	"time"

	"github.com/schoolledger/school_ledger_app/internal/models"
	"github.com/schoolledger/school_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerceAmount(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(120.50).Equal(mapping.CoerceAmount("120.50")))
	// Malformed and empty values degrade to zero instead of failing.
	assert.True(t, decimal.Zero.Equal(mapping.CoerceAmount("garbage")))
	assert.True(t, decimal.Zero.Equal(mapping.CoerceAmount("")))
	assert.True(t, decimal.NewFromInt(-10).Equal(mapping.CoerceAmount("-10")))
}

func TestToDomainRecord(t *testing.T) {
	paid := "250"
	due := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	m := models.TransactionRecord{
		RecordID:   "rec-1",
		Kind:       "INSTALLMENT",
		Amount:     "500",
		PaidAmount: &paid,
		Date:       time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		DueDate:    &due,
		Status:     "PARTIAL",
		Notes:      "first term",
		OwnerID:    "student-9",
		OwnerKind:  "STUDENT",
	}

	d := mapping.ToDomainRecord(m)

	assert.Equal(t, "rec-1", d.RecordID)
	assert.True(t, decimal.NewFromInt(500).Equal(d.Amount))
	if assert.NotNil(t, d.PaidAmount) {
		assert.True(t, decimal.NewFromInt(250).Equal(*d.PaidAmount))
	}
	assert.Equal(t, due, *d.DueDate)
}

func TestToDomainRecord_MalformedAmounts(t *testing.T) {
	bad := "NaN-ish"
	m := models.TransactionRecord{
		RecordID:   "rec-2",
		Kind:       "ADDITIONAL_FEE",
		Amount:     "not a number",
		PaidAmount: &bad,
		Status:     "PENDING",
	}

	d := mapping.ToDomainRecord(m)

	assert.True(t, decimal.Zero.Equal(d.Amount))
	if assert.NotNil(t, d.PaidAmount) {
		assert.True(t, decimal.Zero.Equal(*d.PaidAmount))
	}
}

func TestRecordMappingRoundTrip(t *testing.T) {
	m := models.TransactionRecord{
		RecordID:  "rec-3",
		Kind:      "SALARY",
		Amount:    "1200.75",
		Status:    "PAID",
		OwnerID:   "staff-4",
		OwnerKind: "STAFF",
	}

	back := mapping.ToModelRecord(mapping.ToDomainRecord(m))

	assert.Equal(t, m.RecordID, back.RecordID)
	assert.Equal(t, "1200.75", back.Amount)
	assert.Nil(t, back.PaidAmount)
}
