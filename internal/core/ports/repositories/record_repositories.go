package repositories

import (
	"context"
	"time"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
)

// RecordFilter narrows a transaction record query. Nil fields are ignored.
type RecordFilter struct {
	Kind      *domain.RecordKind
	Status    *domain.RecordStatus
	OwnerID   *string
	OwnerKind *domain.OwnerKind
	From      *time.Time
	To        *time.Time
}

// RecordRepository is the read-only boundary to the transaction record store.
// The engine never writes records; inserts belong to the data-entry screens.
type RecordRepository interface {
	// FindRecordsByOwner returns all records of one kind for one owning
	// entity, oldest first.
	FindRecordsByOwner(ctx context.Context, ownerID string, kind domain.RecordKind) ([]domain.TransactionRecord, error)

	// FindRecords returns every record matching the filter, oldest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]domain.TransactionRecord, error)

	// ListRecords pages through records matching the filter, newest first,
	// returning a next-page token when more rows remain.
	ListRecords(ctx context.Context, filter RecordFilter, limit int, nextToken *string) ([]domain.TransactionRecord, *string, error)
}
