package utils_test

import (
	"testing"

	"github.com/schoolledger/school_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "grouped thousands", value: decimal.NewFromInt(1000), want: "1,000.00 دينار"},
		{name: "millions", value: decimal.NewFromFloat(1234567.5), want: "1,234,567.50 دينار"},
		{name: "small amount", value: decimal.NewFromFloat(42.125), want: "42.13 دينار"},
		{name: "zero", value: decimal.Zero, want: "0.00 دينار"},
		{name: "negative", value: decimal.NewFromInt(-7500), want: "-7,500.00 دينار"},
		{name: "float input", value: 500.0, want: "500.00 دينار"},
		{name: "int input", value: 250, want: "250.00 دينار"},
		{name: "numeric string", value: "1500", want: "1,500.00 دينار"},
		{name: "nil renders as zero", value: nil, want: "0.00 دينار"},
		{name: "malformed string renders as zero", value: "abc", want: "0.00 دينار"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatCurrency(tt.value))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1,000", utils.GroupThousands("1000"))
	assert.Equal(t, "100", utils.GroupThousands("100"))
	assert.Equal(t, "12,345.67", utils.GroupThousands("12345.67"))
	assert.Equal(t, "-1,234,567.89", utils.GroupThousands("-1234567.89"))
	assert.Equal(t, "0.00", utils.GroupThousands("0.00"))
}

func TestToDecimal(t *testing.T) {
	d, ok := utils.ToDecimal("12.50")
	assert.True(t, ok)
	assert.True(t, decimal.NewFromFloat(12.5).Equal(d))

	_, ok = utils.ToDecimal(nil)
	assert.False(t, ok)

	_, ok = utils.ToDecimal("not-a-number")
	assert.False(t, ok)

	d, ok = utils.ToDecimal(decimalPtr(decimal.NewFromInt(9)))
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(9).Equal(d))
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
