package dto

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerParams defines the optional ledger window. Both bounds are inclusive.
type LedgerParams struct {
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerEntryResponse is one row of the ledger.
type LedgerEntryResponse struct {
	TransactionID string                 `json:"transactionID"`
	Kind          domain.TransactionKind `json:"kind"`
	Date          string                 `json:"date"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Direction     domain.Direction       `json:"direction"`
	Status        domain.EntryStatus     `json:"status"`
	CategoryLabel string                 `json:"categoryLabel"`
	AccountLabel  string                 `json:"accountLabel"`
}

type LedgerSummaryResponse struct {
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	NetFlow     decimal.Decimal `json:"netFlow"`
}

type LedgerMetaResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Count     int    `json:"count"`
}

// LedgerResponse defines the data returned by the ledger endpoint.
type LedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Summary LedgerSummaryResponse `json:"summary"`
	Meta    LedgerMetaResponse    `json:"meta"`
}

// ToLedgerResponse converts a domain.Ledger to LedgerResponse DTO
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LedgerEntryResponse{
			TransactionID: e.TransactionID,
			Kind:          e.Kind,
			Date:          e.Date.Format(domain.DateLayout),
			Description:   e.Description,
			Amount:        e.Amount,
			Direction:     e.Direction,
			Status:        e.Status,
			CategoryLabel: e.CategoryLabel,
			AccountLabel:  e.AccountLabel,
		}
	}
	return LedgerResponse{
		Entries: entries,
		Summary: LedgerSummaryResponse{
			TotalCredit: l.Summary.TotalCredit,
			TotalDebit:  l.Summary.TotalDebit,
			NetFlow:     l.Summary.NetFlow,
		},
		Meta: LedgerMetaResponse{
			StartDate: l.StartDate.Format(domain.DateLayout),
			EndDate:   l.EndDate.Format(domain.DateLayout),
			Count:     len(entries),
		},
	}
}
