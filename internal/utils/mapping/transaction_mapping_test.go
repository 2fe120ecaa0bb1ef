package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelTransaction_RecurrenceColumns(t *testing.T) {
	until := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	specific := ToModelTransaction(domain.Transaction{
		Kind:   domain.KindExpense,
		Amount: decimal.NewFromInt(10),
		Recurrence: &domain.Recurrence{
			RecurrenceRule: domain.RecurrenceRule{Type: domain.RecurrenceSpecificDay, Day: 31},
			Until:          until,
			GroupID:        "grp-1",
		},
	})
	require.NotNil(t, specific.RecurrenceDay)
	assert.Equal(t, 31, *specific.RecurrenceDay)
	assert.Equal(t, "SPECIFIC_DAY", *specific.RecurrenceType)
	assert.Equal(t, "grp-1", *specific.RecurringGroupID)

	endOfMonth := ToModelTransaction(domain.Transaction{
		Recurrence: &domain.Recurrence{
			RecurrenceRule: domain.RecurrenceRule{Type: domain.RecurrenceEndOfMonth},
			Until:          until,
			GroupID:        "grp-2",
		},
	})
	assert.Nil(t, endOfMonth.RecurrenceDay)

	oneOff := ToModelTransaction(domain.Transaction{})
	assert.Nil(t, oneOff.RecurrenceType)
	assert.Nil(t, oneOff.RecurringGroupID)
}

func TestToDomainTransaction_PartialRecurrenceIgnored(t *testing.T) {
	recurrenceType := "END_OF_MONTH"
	m := ToModelTransaction(domain.Transaction{TransactionID: "t-1"})
	m.RecurrenceType = &recurrenceType

	d := ToDomainTransaction(m)
	assert.Nil(t, d.Recurrence)
	assert.Empty(t, d.GroupID())
}

func TestToDomainTransaction_NormalisesDates(t *testing.T) {
	local := time.FixedZone("UTC+5", 5*3600)
	paid := time.Date(2025, 2, 3, 0, 0, 0, 0, local)
	m := ToModelTransaction(domain.Transaction{
		EffectiveDate:  time.Date(2025, 2, 1, 0, 0, 0, 0, local),
		SettlementDate: &paid,
	})

	d := ToDomainTransaction(m)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), d.EffectiveDate)
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), *d.SettlementDate)
}
