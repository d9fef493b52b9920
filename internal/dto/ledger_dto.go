package dto

import (
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScopeBalanceResponse represents the derived balance for one obligation
// scope, e.g. one student's tuition.
type ScopeBalanceResponse struct {
	TotalOwed      decimal.Decimal  `json:"totalOwed"`
	TotalPaid      decimal.Decimal  `json:"totalPaid"`
	Remaining      decimal.Decimal  `json:"remaining"`
	CollectionRate decimal.Decimal  `json:"collectionRate"`
	Records        []RecordResponse `json:"records"`
}

// AggregateSummaryResponse represents derived totals for a record filter.
type AggregateSummaryResponse struct {
	Total          decimal.Decimal            `json:"total"`
	Paid           decimal.Decimal            `json:"paid"`
	Outstanding    decimal.Decimal            `json:"outstanding"`
	Overdue        decimal.Decimal            `json:"overdue"`
	Count          int                        `json:"count"`
	Average        decimal.Decimal            `json:"average"`
	Maximum        decimal.Decimal            `json:"maximum"`
	CollectionRate decimal.Decimal            `json:"collectionRate"`
	ByKind         map[string]decimal.Decimal `json:"byKind"`
}

// ToScopeBalanceResponse converts a domain ScopeBalance to its DTO.
func ToScopeBalanceResponse(b domain.ScopeBalance) ScopeBalanceResponse {
	return ScopeBalanceResponse{
		TotalOwed:      b.TotalOwed,
		TotalPaid:      b.TotalPaid,
		Remaining:      b.Remaining,
		CollectionRate: b.CollectionRate,
		Records:        ToRecordResponses(b.Records),
	}
}

// ToAggregateSummaryResponse converts a domain AggregateSummary to its DTO.
func ToAggregateSummaryResponse(s domain.AggregateSummary) AggregateSummaryResponse {
	byKind := make(map[string]decimal.Decimal, len(s.ByKind))
	for kind, amount := range s.ByKind {
		byKind[string(kind)] = amount
	}
	return AggregateSummaryResponse{
		Total:          s.Total,
		Paid:           s.Paid,
		Outstanding:    s.Outstanding,
		Overdue:        s.Overdue,
		Count:          s.Count,
		Average:        s.Average,
		Maximum:        s.Maximum,
		CollectionRate: s.CollectionRate,
		ByKind:         byKind,
	}
}
