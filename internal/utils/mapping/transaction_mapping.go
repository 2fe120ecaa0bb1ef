package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelTransaction flattens the recurrence into its nullable columns.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  d.TransactionID,
		OwnerID:        d.OwnerID,
		Kind:           string(d.Kind),
		CounterpartyID: d.CounterpartyID,
		BankAccountID:  d.BankAccountID,
		Amount:         d.Amount,
		EffectiveDate:  d.EffectiveDate,
		IsSettled:      d.Settled,
		SettlementDate: d.SettlementDate,
		Remarks:        d.Remarks,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if r := d.Recurrence; r != nil {
		recurrenceType := string(r.Type)
		until := r.Until
		groupID := r.GroupID
		m.RecurrenceType = &recurrenceType
		m.RecurUntil = &until
		m.RecurringGroupID = &groupID
		if r.Type == domain.RecurrenceSpecificDay {
			day := r.Day
			m.RecurrenceDay = &day
		}
	}
	return m
}

// ToDomainTransaction rebuilds the recurrence only when the group columns are present.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:  m.TransactionID,
		OwnerID:        m.OwnerID,
		Kind:           domain.TransactionKind(m.Kind),
		CounterpartyID: m.CounterpartyID,
		BankAccountID:  m.BankAccountID,
		Amount:         m.Amount,
		EffectiveDate:  domain.DateOf(m.EffectiveDate),
		Settled:        m.IsSettled,
		Remarks:        m.Remarks,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.SettlementDate != nil {
		s := domain.DateOf(*m.SettlementDate)
		d.SettlementDate = &s
	}
	if m.RecurrenceType != nil && m.RecurringGroupID != nil && m.RecurUntil != nil {
		d.Recurrence = &domain.Recurrence{
			RecurrenceRule: domain.RecurrenceRule{Type: domain.RecurrenceType(*m.RecurrenceType)},
			Until:          domain.DateOf(*m.RecurUntil),
			GroupID:        *m.RecurringGroupID,
		}
		if m.RecurrenceDay != nil {
			d.Recurrence.Day = *m.RecurrenceDay
		}
	}
	return d
}

// ToDomainTransactionSlice converts a slice of models.Transaction.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
