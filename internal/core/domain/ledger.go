package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the settlement state as shown in the ledger.
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusCompleted EntryStatus = "COMPLETED"
)

const (
	uncategorizedLabel  = "Uncategorized"
	unknownAccountLabel = "Unknown Account"
)

// LedgerEntry is one income or expense projected onto the ledger.
type LedgerEntry struct {
	TransactionID string          `json:"transactionID"`
	Kind          TransactionKind `json:"kind"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     Direction       `json:"direction"`
	Status        EntryStatus     `json:"status"`
	CategoryLabel string          `json:"categoryLabel"`
	AccountLabel  string          `json:"accountLabel"`
}

// LedgerSummary totals every entry in the window, pending ones included.
type LedgerSummary struct {
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	NetFlow     decimal.Decimal `json:"netFlow"`
}

// Ledger is the merged, date-ordered view over [StartDate, EndDate].
type Ledger struct {
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Entries   []LedgerEntry `json:"entries"`
	Summary   LedgerSummary `json:"summary"`
}

// ProjectLedger merges incomes then expenses and orders them by display date.
// The sort is stable, so on equal dates incomes stay ahead of expenses and
// each side keeps the order it was fetched in.
func ProjectLedger(
	start, end time.Time,
	incomes, expenses []Transaction,
	accounts map[string]BankAccount,
	counterparties map[string]Counterparty,
) Ledger {
	ledger := Ledger{
		StartDate: start,
		EndDate:   end,
		Entries:   make([]LedgerEntry, 0, len(incomes)+len(expenses)),
		Summary: LedgerSummary{
			TotalCredit: decimal.Zero,
			TotalDebit:  decimal.Zero,
		},
	}

	for _, group := range [][]Transaction{incomes, expenses} {
		for i := range group {
			t := &group[i]
			ledger.Entries = append(ledger.Entries, toLedgerEntry(t, accounts, counterparties))
			if t.Kind.Direction() == Credit {
				ledger.Summary.TotalCredit = ledger.Summary.TotalCredit.Add(t.Amount)
			} else {
				ledger.Summary.TotalDebit = ledger.Summary.TotalDebit.Add(t.Amount)
			}
		}
	}

	sort.SliceStable(ledger.Entries, func(i, j int) bool {
		return ledger.Entries[i].Date.Before(ledger.Entries[j].Date)
	})
	ledger.Summary.NetFlow = ledger.Summary.TotalCredit.Sub(ledger.Summary.TotalDebit)
	return ledger
}

func toLedgerEntry(t *Transaction, accounts map[string]BankAccount, counterparties map[string]Counterparty) LedgerEntry {
	counterpartyName := ""
	if t.CounterpartyID != nil {
		if cp, ok := counterparties[*t.CounterpartyID]; ok {
			counterpartyName = cp.Name
		}
	}

	description := t.Kind.Label()
	switch {
	case t.Remarks != nil && *t.Remarks != "":
		description = *t.Remarks
	case t.Kind == KindIncome && counterpartyName != "":
		description = counterpartyName
	}

	category := counterpartyName
	if category == "" {
		category = uncategorizedLabel
		if t.Kind == KindExpense {
			category = t.Kind.Label()
		}
	}

	account := unknownAccountLabel
	if acc, ok := accounts[t.BankAccountID]; ok && acc.Name != "" {
		account = acc.Name
	}

	status := StatusPending
	if t.Settled {
		status = StatusCompleted
	}

	return LedgerEntry{
		TransactionID: t.TransactionID,
		Kind:          t.Kind,
		Date:          t.DisplayDate(),
		Description:   description,
		Amount:        t.Amount,
		Direction:     t.Kind.Direction(),
		Status:        status,
		CategoryLabel: category,
		AccountLabel:  account,
	}
}
