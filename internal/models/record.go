package models

import "time"

// TransactionRecord is the database row shape for a monetary event.
// Amount columns are scanned as text so a malformed value in storage degrades
// to zero during mapping instead of failing the whole query.
type TransactionRecord struct {
	RecordID   string     `json:"recordID"`
	Kind       string     `json:"kind"`
	Amount     string     `json:"amount"`
	PaidAmount *string    `json:"paidAmount"`
	Date       time.Time  `json:"date"`
	DueDate    *time.Time `json:"dueDate"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
	OwnerID    string     `json:"ownerID"`
	OwnerKind  string     `json:"ownerKind"`
	AuditFields
}

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
