package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_tracker/internal/commands"
)

func runTrackerctl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSchedule_SpecificDayClamps(t *testing.T) {
	out, err := runTrackerctl(t, "schedule", "--type", "SPECIFIC_DAY", "--day", "31", "--anchor", "2025-01-10", "--until", "2025-04-30")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31\n2025-02-28\n2025-03-31\n2025-04-30\n", out)
}

func TestSchedule_EndOfMonthLeapYear(t *testing.T) {
	out, err := runTrackerctl(t, "schedule", "--type", "END_OF_MONTH", "--anchor", "2024-01-15", "--until", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31\n2024-02-29\n2024-03-31\n", out)
}

func TestSchedule_UntilBeforeFirstOccurrence(t *testing.T) {
	_, err := runTrackerctl(t, "schedule", "--type", "END_OF_MONTH", "--anchor", "2025-01-05", "--until", "2025-01-20")
	assert.ErrorContains(t, err, "no dates")
}

func TestSchedule_RejectsBadInput(t *testing.T) {
	_, err := runTrackerctl(t, "schedule", "--type", "SPECIFIC_DAY", "--anchor", "2025-01-01", "--until", "2025-02-01")
	assert.Error(t, err, "SPECIFIC_DAY needs --day")

	_, err = runTrackerctl(t, "schedule", "--type", "WEEKLY", "--anchor", "2025-01-01", "--until", "2025-02-01")
	assert.Error(t, err)

	_, err = runTrackerctl(t, "schedule", "--anchor", "2025-13-01", "--until", "2025-02-01")
	assert.Error(t, err)

	_, err = runTrackerctl(t, "schedule", "--until", "2025-02-01")
	assert.Error(t, err, "--anchor is required")
}

func TestMigrate_RejectsUnknownDirection(t *testing.T) {
	_, err := runTrackerctl(t, "migrate", "sideways")
	assert.ErrorContains(t, err, "sideways")
}
