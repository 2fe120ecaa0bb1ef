package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
)

// RecurrenceType selects which day of each month a recurring transaction lands on.
type RecurrenceType string

const (
	RecurrenceStartOfMonth RecurrenceType = "START_OF_MONTH"
	RecurrenceEndOfMonth   RecurrenceType = "END_OF_MONTH"
	RecurrenceSpecificDay  RecurrenceType = "SPECIFIC_DAY"
)

// MaxSeriesLength caps how many records a single recurring request may generate (50 years of months).
const MaxSeriesLength = 600

// RecurrenceRule is the evaluator input: a type plus the day of month for SPECIFIC_DAY.
type RecurrenceRule struct {
	Type RecurrenceType `json:"type"`
	Day  int            `json:"day,omitempty"`
}

// Recurrence is attached to every member of a generated series.
type Recurrence struct {
	RecurrenceRule
	Until   time.Time `json:"until"`
	GroupID string    `json:"groupID"`
}

// Validate checks the rule shape. START_OF_MONTH and END_OF_MONTH ignore Day.
func (r RecurrenceRule) Validate() error {
	switch r.Type {
	case RecurrenceStartOfMonth, RecurrenceEndOfMonth:
		return nil
	case RecurrenceSpecificDay:
		if r.Day < 1 || r.Day > 31 {
			return fmt.Errorf("%w: recurrence day must be between 1 and 31 for %s", apperrors.ErrValidation, r.Type)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown recurrence type %q", apperrors.ErrValidation, r.Type)
	}
}

// Normalized drops Day for the types that do not use it.
func (r RecurrenceRule) Normalized() RecurrenceRule {
	if r.Type != RecurrenceSpecificDay {
		r.Day = 0
	}
	return r
}

// FirstOccurrence applies the rule to the anchor's month.
func FirstOccurrence(anchor time.Time, rule RecurrenceRule) time.Time {
	return occurrenceIn(anchor.Year(), anchor.Month(), rule)
}

// NextOccurrence applies the rule to the calendar month after current.
// The rule is re-evaluated against a fresh month, so a clamped day never carries forward.
func NextOccurrence(current time.Time, rule RecurrenceRule) time.Time {
	next := time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return occurrenceIn(next.Year(), next.Month(), rule)
}

// ExpandSeries returns every occurrence from FirstOccurrence(anchor) up to and including until.
func ExpandSeries(anchor, until time.Time, rule RecurrenceRule) ([]time.Time, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	anchor, until = DateOf(anchor), DateOf(until)
	if until.Before(anchor) {
		return nil, fmt.Errorf("%w: recurrence end date %s is before start date %s",
			apperrors.ErrValidation, until.Format(DateLayout), anchor.Format(DateLayout))
	}

	var dates []time.Time
	for current := FirstOccurrence(anchor, rule); !current.After(until); current = NextOccurrence(current, rule) {
		if len(dates) == MaxSeriesLength {
			return nil, fmt.Errorf("%w: recurrence would generate more than %d records", apperrors.ErrValidation, MaxSeriesLength)
		}
		dates = append(dates, current)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: recurrence generates no dates between %s and %s",
			apperrors.ErrValidation, anchor.Format(DateLayout), until.Format(DateLayout))
	}
	return dates, nil
}

func occurrenceIn(year int, month time.Month, rule RecurrenceRule) time.Time {
	last := DaysInMonth(year, month)
	day := 1
	switch rule.Type {
	case RecurrenceEndOfMonth:
		day = last
	case RecurrenceSpecificDay:
		day = min(rule.Day, last)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth handles leap years through time.Date normalisation of day 0.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
