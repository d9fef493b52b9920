package mapping

import (
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	"github.com/schoolledger/school_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

// CoerceAmount parses a stored amount string into a decimal. Malformed or
// empty values coerce to zero so one bad row degrades a total instead of
// aborting the aggregation that reads it.
func CoerceAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToDomainRecord converts a model TransactionRecord to the domain shape.
func ToDomainRecord(m models.TransactionRecord) domain.TransactionRecord {
	var paid *decimal.Decimal
	if m.PaidAmount != nil {
		p := CoerceAmount(*m.PaidAmount)
		paid = &p
	}
	return domain.TransactionRecord{
		RecordID:    m.RecordID,
		Kind:        domain.RecordKind(m.Kind),
		Amount:      CoerceAmount(m.Amount),
		PaidAmount:  paid,
		Date:        m.Date,
		DueDate:     m.DueDate,
		Status:      domain.RecordStatus(m.Status),
		Notes:       m.Notes,
		OwnerID:     m.OwnerID,
		OwnerKind:   domain.OwnerKind(m.OwnerKind),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecords converts a slice of model records.
func ToDomainRecords(ms []models.TransactionRecord) []domain.TransactionRecord {
	records := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		records[i] = ToDomainRecord(m)
	}
	return records
}

// ToModelRecord converts a domain TransactionRecord to the model shape.
func ToModelRecord(d domain.TransactionRecord) models.TransactionRecord {
	var paid *string
	if d.PaidAmount != nil {
		p := d.PaidAmount.String()
		paid = &p
	}
	return models.TransactionRecord{
		RecordID:    d.RecordID,
		Kind:        string(d.Kind),
		Amount:      d.Amount.String(),
		PaidAmount:  paid,
		Date:        d.Date,
		DueDate:     d.DueDate,
		Status:      string(d.Status),
		Notes:       d.Notes,
		OwnerID:     d.OwnerID,
		OwnerKind:   string(d.OwnerKind),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
