package services

import (
	"context"
	"time"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolledger/school_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerSvc turns raw transaction records into derived financial state.
type LedgerSvc interface {
	// ComputeScopeBalance derives paid/remaining state for one obligation
	// scope. Pure: it never mutates the input records.
	ComputeScopeBalance(ctx context.Context, totalOwed decimal.Decimal, records []domain.TransactionRecord) domain.ScopeBalance

	// Aggregate derives totals and statistics for a record collection in a
	// single pass. An empty collection yields an all-zero summary.
	Aggregate(ctx context.Context, records []domain.TransactionRecord) domain.AggregateSummary

	// ClassifyDueStatus is the read-only due-today/overdue classification of
	// a single record against the given day.
	ClassifyDueStatus(record domain.TransactionRecord, today time.Time) domain.DueStatus

	// StudentBalance fetches a student's installment records and computes
	// the scope balance against the given total obligation.
	StudentBalance(ctx context.Context, studentID string, totalOwed decimal.Decimal) (*domain.ScopeBalance, error)

	// Summary fetches the records matching the filter and aggregates them.
	Summary(ctx context.Context, filter portsrepo.RecordFilter) (*domain.AggregateSummary, error)

	// ListRecords pages through records matching the filter.
	ListRecords(ctx context.Context, filter portsrepo.RecordFilter, limit int, nextToken *string) ([]domain.TransactionRecord, *string, error)
}
