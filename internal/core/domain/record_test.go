package domain_test

import (
	"testing"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestTransactionRecord_PaidContribution(t *testing.T) {
	tests := []struct {
		name   string
		record domain.TransactionRecord
		want   decimal.Decimal
	}{
		{
			name: "partial payment recorded",
			record: domain.TransactionRecord{
				Amount:     decimal.NewFromInt(500),
				PaidAmount: decimalPtr(decimal.NewFromInt(200)),
			},
			want: decimal.NewFromInt(200),
		},
		{
			name: "no partial payment falls back to full amount",
			record: domain.TransactionRecord{
				Amount: decimal.NewFromInt(500),
			},
			want: decimal.NewFromInt(500),
		},
		{
			name: "zero partial payment is respected, not treated as absent",
			record: domain.TransactionRecord{
				Amount:     decimal.NewFromInt(500),
				PaidAmount: decimalPtr(decimal.Zero),
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.record.PaidContribution()),
				"want %s got %s", tt.want, tt.record.PaidContribution())
		})
	}
}

func TestIsKnownDocumentType(t *testing.T) {
	for _, dt := range domain.KnownDocumentTypes {
		assert.True(t, domain.IsKnownDocumentType(dt), string(dt))
	}
	assert.False(t, domain.IsKnownDocumentType("students_list"), "aliases are not canonical types")
	assert.False(t, domain.IsKnownDocumentType(""))
}
