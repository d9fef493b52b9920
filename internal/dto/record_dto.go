package dto

import (
	"time"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordResponse defines the data returned for a transaction record.
type RecordResponse struct {
	RecordID   string           `json:"recordID"`
	Kind       string           `json:"kind"`
	Amount     decimal.Decimal  `json:"amount"`
	PaidAmount *decimal.Decimal `json:"paidAmount,omitempty"`
	Date       time.Time        `json:"date"`
	DueDate    *time.Time       `json:"dueDate,omitempty"`
	Status     string           `json:"status"`
	Notes      string           `json:"notes,omitempty"`
	OwnerID    string           `json:"ownerID"`
	OwnerKind  string           `json:"ownerKind"`
}

// ListRecordsResponse wraps a page of records with its continuation token.
type ListRecordsResponse struct {
	Records   []RecordResponse `json:"records"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToRecordResponse converts a domain TransactionRecord to its DTO.
func ToRecordResponse(r domain.TransactionRecord) RecordResponse {
	return RecordResponse{
		RecordID:   r.RecordID,
		Kind:       string(r.Kind),
		Amount:     r.Amount,
		PaidAmount: r.PaidAmount,
		Date:       r.Date,
		DueDate:    r.DueDate,
		Status:     string(r.Status),
		Notes:      r.Notes,
		OwnerID:    r.OwnerID,
		OwnerKind:  string(r.OwnerKind),
	}
}

// ToRecordResponses converts a slice of domain records.
func ToRecordResponses(records []domain.TransactionRecord) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i, r := range records {
		responses[i] = ToRecordResponse(r)
	}
	return responses
}
