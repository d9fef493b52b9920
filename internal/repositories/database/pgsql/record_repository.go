package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolledger/school_ledger_app/internal/core/ports/repositories"
	"github.com/schoolledger/school_ledger_app/internal/models"
	"github.com/schoolledger/school_ledger_app/internal/utils/mapping"
	"github.com/schoolledger/school_ledger_app/internal/utils/pagination"
)

// Amount columns are cast to text so a malformed stored value degrades to
// zero in the mapping layer instead of failing the scan.
const recordColumns = `record_id, kind, amount::text, paid_amount::text, record_date, due_date,
	status, COALESCE(notes, ''), owner_id, owner_kind,
	created_at, created_by, last_updated_at, last_updated_by`

// recordRepository implements the RecordRepository interface.
type recordRepository struct {
	BaseRepository
}

// NewRecordRepository creates a new transaction record repository.
func NewRecordRepository(db *pgxpool.Pool) portsrepo.RecordRepository {
	return &recordRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure recordRepository implements the RecordRepository interface
var _ portsrepo.RecordRepository = (*recordRepository)(nil)

// FindRecordsByOwner returns all records of one kind for one owning entity,
// oldest first.
func (r *recordRepository) FindRecordsByOwner(ctx context.Context, ownerID string, kind domain.RecordKind) ([]domain.TransactionRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM transaction_records
		WHERE owner_id = $1 AND kind = $2
		ORDER BY record_date ASC, created_at ASC`, recordColumns)

	rows, err := r.Pool.Query(ctx, query, ownerID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("error querying records by owner: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// FindRecords returns every record matching the filter, oldest first.
func (r *recordRepository) FindRecords(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.TransactionRecord, error) {
	where, args := buildFilterClauses(filter)
	query := fmt.Sprintf(`SELECT %s FROM transaction_records%s
		ORDER BY record_date ASC, created_at ASC`, recordColumns, where)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListRecords pages through records matching the filter, newest first, using
// a (record_date, created_at) keyset token.
func (r *recordRepository) ListRecords(ctx context.Context, filter portsrepo.RecordFilter, limit int, nextToken *string) ([]domain.TransactionRecord, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	where, args := buildFilterClauses(filter)
	clauses := where

	if nextToken != nil && *nextToken != "" {
		recordDate, createdAt, err := pagination.DecodeRecordToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", err)
		}
		args = append(args, recordDate, createdAt)
		cond := fmt.Sprintf("(record_date, created_at) < ($%d, $%d)", len(args)-1, len(args))
		if clauses == "" {
			clauses = " WHERE " + cond
		} else {
			clauses += " AND " + cond
		}
	}

	args = append(args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM transaction_records%s
		ORDER BY record_date DESC, created_at DESC
		LIMIT $%d`, recordColumns, clauses, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing records: %w", err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		t := pagination.EncodeRecordToken(last.Date, last.CreatedAt)
		token = &t
	}

	return records, token, nil
}

// buildFilterClauses turns a RecordFilter into a WHERE clause and its
// positional arguments. Nil filter fields are skipped.
func buildFilterClauses(filter portsrepo.RecordFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if filter.Kind != nil {
		add("kind = $%d", string(*filter.Kind))
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}
	if filter.OwnerID != nil {
		add("owner_id = $%d", *filter.OwnerID)
	}
	if filter.OwnerKind != nil {
		add("owner_kind = $%d", string(*filter.OwnerKind))
	}
	if filter.From != nil {
		add("record_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("record_date <= $%d", *filter.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func collectRecords(rows pgx.Rows) ([]domain.TransactionRecord, error) {
	var result []models.TransactionRecord
	for rows.Next() {
		var m models.TransactionRecord
		if err := rows.Scan(
			&m.RecordID,
			&m.Kind,
			&m.Amount,
			&m.PaidAmount,
			&m.Date,
			&m.DueDate,
			&m.Status,
			&m.Notes,
			&m.OwnerID,
			&m.OwnerKind,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning record row: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.TransactionRecord{}, nil
	}
	return mapping.ToDomainRecords(result), nil
}
