package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolledger/school_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ledgerService implements the LedgerSvc interface.
type ledgerService struct {
	BaseService
	recordRepo portsrepo.RecordRepository
}

// NewLedgerService creates a new ledger service over the record store.
func NewLedgerService(repo portsrepo.RecordRepository) portssvc.LedgerSvc {
	return &ledgerService{
		recordRepo: repo,
	}
}

// Ensure ledgerService implements the LedgerSvc interface
var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// ComputeScopeBalance sums each record's paid contribution (the paid
// sub-amount, falling back to the full amount when none was recorded) and
// derives remaining = totalOwed - paid. Remaining is deliberately not
// clamped: an overpayment yields a negative remaining balance. The
// collection rate is paid/totalOwed*100 when totalOwed is positive, else 0.
func (s *ledgerService) ComputeScopeBalance(ctx context.Context, totalOwed decimal.Decimal, records []domain.TransactionRecord) domain.ScopeBalance {
	paid := decimal.Zero
	for _, r := range records {
		paid = paid.Add(r.PaidContribution())
	}

	rate := decimal.Zero
	if totalOwed.IsPositive() {
		rate = paid.Div(totalOwed).Mul(oneHundred)
	}

	return domain.ScopeBalance{
		TotalOwed:      totalOwed,
		TotalPaid:      paid,
		Remaining:      totalOwed.Sub(paid),
		CollectionRate: rate,
		Records:        records,
	}
}

// Aggregate iterates once over the records, accumulating the total, the paid
// and outstanding and overdue sums, per-kind sub-totals, and the derived
// count/average/maximum. The collection rate is paid/total*100 when total is
// positive, else 0. An empty collection yields an all-zero summary; it is
// not a fault.
func (s *ledgerService) Aggregate(ctx context.Context, records []domain.TransactionRecord) domain.AggregateSummary {
	summary := domain.AggregateSummary{
		Total:          decimal.Zero,
		Paid:           decimal.Zero,
		Outstanding:    decimal.Zero,
		Overdue:        decimal.Zero,
		Average:        decimal.Zero,
		Maximum:        decimal.Zero,
		CollectionRate: decimal.Zero,
		ByKind:         make(map[domain.RecordKind]decimal.Decimal),
	}

	for _, r := range records {
		summary.Total = summary.Total.Add(r.Amount)
		summary.ByKind[r.Kind] = summary.ByKind[r.Kind].Add(r.Amount)

		switch r.Status {
		case domain.StatusPaid:
			summary.Paid = summary.Paid.Add(r.PaidContribution())
		case domain.StatusPartial:
			if r.PaidAmount != nil {
				summary.Paid = summary.Paid.Add(*r.PaidAmount)
			}
		case domain.StatusPending:
			summary.Outstanding = summary.Outstanding.Add(r.Amount)
		case domain.StatusOverdue:
			summary.Overdue = summary.Overdue.Add(r.Amount)
		}

		if r.Amount.GreaterThan(summary.Maximum) {
			summary.Maximum = r.Amount
		}
	}

	summary.Count = len(records)
	if summary.Count > 0 {
		summary.Average = summary.Total.Div(decimal.NewFromInt(int64(summary.Count)))
	}
	if summary.Total.IsPositive() {
		summary.CollectionRate = summary.Paid.Div(summary.Total).Mul(oneHundred)
	}

	return summary
}

// ClassifyDueStatus classifies a record against the given day: overdue when
// its status is unsettled and its due date is strictly before today, due
// today on exact date equality. Settled records and records without a due
// date are never due. The classification is read-only; stored statuses are
// never rewritten.
func (s *ledgerService) ClassifyDueStatus(record domain.TransactionRecord, today time.Time) domain.DueStatus {
	if record.DueDate == nil {
		return domain.DueNone
	}

	switch record.Status {
	case domain.StatusPending, domain.StatusPartial, domain.StatusOverdue:
	default:
		return domain.DueNone
	}

	due := truncateToDay(*record.DueDate)
	day := truncateToDay(today)
	switch {
	case due.Before(day):
		return domain.DuePast
	case due.Equal(day):
		return domain.DueToday
	default:
		return domain.DueNone
	}
}

// StudentBalance fetches a student's installment records and computes the
// scope balance against the given total tuition obligation.
func (s *ledgerService) StudentBalance(ctx context.Context, studentID string, totalOwed decimal.Decimal) (*domain.ScopeBalance, error) {
	records, err := s.recordRepo.FindRecordsByOwner(ctx, studentID, domain.KindInstallment)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch installment records",
			slog.String("student_id", studentID))
		return nil, fmt.Errorf("failed to fetch installment records: %w", err)
	}

	balance := s.ComputeScopeBalance(ctx, totalOwed, records)

	s.LogInfo(ctx, "Scope balance computed",
		slog.String("student_id", studentID),
		slog.Int("record_count", len(records)),
		slog.String("remaining", balance.Remaining.String()))
	return &balance, nil
}

// Summary fetches the records matching the filter and aggregates them.
func (s *ledgerService) Summary(ctx context.Context, filter portsrepo.RecordFilter) (*domain.AggregateSummary, error) {
	records, err := s.recordRepo.FindRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch records for summary")
		return nil, fmt.Errorf("failed to fetch records for summary: %w", err)
	}

	summary := s.Aggregate(ctx, records)

	s.LogInfo(ctx, "Aggregate summary computed",
		slog.Int("record_count", summary.Count),
		slog.String("total", summary.Total.String()),
		slog.String("collection_rate", summary.CollectionRate.String()))
	return &summary, nil
}

// ListRecords pages through records matching the filter.
func (s *ledgerService) ListRecords(ctx context.Context, filter portsrepo.RecordFilter, limit int, nextToken *string) ([]domain.TransactionRecord, *string, error) {
	records, token, err := s.recordRepo.ListRecords(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records")
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, token, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
