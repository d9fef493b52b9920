package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind classifies a monetary event.
type RecordKind string

const (
	KindInstallment    RecordKind = "INSTALLMENT"
	KindAdditionalFee  RecordKind = "ADDITIONAL_FEE"
	KindSalary         RecordKind = "SALARY"
	KindExpense        RecordKind = "EXPENSE"
	KindExternalIncome RecordKind = "EXTERNAL_INCOME"
)

// RecordStatus is the settlement state a record carries in storage.
// The engine only reads statuses; it never writes them back.
type RecordStatus string

const (
	StatusPaid    RecordStatus = "PAID"
	StatusPending RecordStatus = "PENDING"
	StatusPartial RecordStatus = "PARTIAL"
	StatusOverdue RecordStatus = "OVERDUE"
)

// OwnerKind identifies the entity a record belongs to.
type OwnerKind string

const (
	OwnerStudent OwnerKind = "STUDENT"
	OwnerStaff   OwnerKind = "STAFF"
)

// TransactionRecord is a single monetary event: an installment payment, an
// additional fee, a salary payment, an expense, or external income.
// Records are created by the data-access layer and are immutable here.
type TransactionRecord struct {
	RecordID string          `json:"recordID"`
	Kind     RecordKind      `json:"kind"`
	Amount   decimal.Decimal `json:"amount"`
	// PaidAmount is the collected/paid sub-amount for partial settlements.
	// Nil means no partial-payment figure was recorded for this event.
	PaidAmount *decimal.Decimal `json:"paidAmount,omitempty"`
	Date       time.Time        `json:"date"`
	DueDate    *time.Time       `json:"dueDate,omitempty"`
	Status     RecordStatus     `json:"status"`
	Notes      string           `json:"notes"`
	OwnerID    string           `json:"ownerID"`
	OwnerKind  OwnerKind        `json:"ownerKind"`
	AuditFields
}

// PaidContribution returns the amount this record contributes to a paid sum:
// the recorded paid sub-amount when present, otherwise the full amount.
func (r TransactionRecord) PaidContribution() decimal.Decimal {
	if r.PaidAmount != nil {
		return *r.PaidAmount
	}
	return r.Amount
}

// DueStatus is the read-only due classification of a record.
type DueStatus string

const (
	DueNone  DueStatus = "NONE"
	DueToday DueStatus = "DUE_TODAY"
	DuePast  DueStatus = "OVERDUE"
)
