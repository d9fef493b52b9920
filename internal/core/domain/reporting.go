package domain

import (
	"github.com/shopspring/decimal"
)

// ScopeBalance is the derived paid/remaining state for one obligation scope,
// e.g. one student's tuition. Remaining is not clamped: an overpaid scope
// carries a negative remaining balance.
type ScopeBalance struct {
	TotalOwed decimal.Decimal `json:"totalOwed"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Remaining decimal.Decimal `json:"remaining"`
	// CollectionRate is TotalPaid/TotalOwed*100, 0 when TotalOwed is not
	// positive. Measured against the obligation, not the record total, so
	// an unpaid remainder lowers it even with every record settled.
	CollectionRate decimal.Decimal     `json:"collectionRate"`
	Records        []TransactionRecord `json:"records"`
}

// AggregateSummary holds derived totals and statistics for a filtered
// collection of transaction records. Computed fresh on every call, never
// cached.
type AggregateSummary struct {
	Total       decimal.Decimal `json:"total"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Overdue     decimal.Decimal `json:"overdue"`
	Count       int             `json:"count"`
	Average     decimal.Decimal `json:"average"`
	Maximum     decimal.Decimal `json:"maximum"`
	// CollectionRate is paid/total*100, 0 when total is zero. In [0,100]
	// whenever all amounts are non-negative and paid <= total.
	CollectionRate decimal.Decimal                `json:"collectionRate"`
	ByKind         map[RecordKind]decimal.Decimal `json:"byKind"`
}

// RenderContext is the field-name to value mapping handed to the template
// renderer. Built fresh per render call and discarded after rendering.
type RenderContext map[string]any
