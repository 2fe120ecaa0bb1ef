package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// newScheduleCommand previews the dates a recurring income or expense would be generated on.
func newScheduleCommand() *cobra.Command {
	var recurrenceType string
	var day int
	var anchor string
	var until string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the occurrence dates of a recurrence rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchorDate, err := domain.ParseDate(anchor)
			if err != nil {
				return fmt.Errorf("parsing --anchor: %w", err)
			}
			untilDate, err := domain.ParseDate(until)
			if err != nil {
				return fmt.Errorf("parsing --until: %w", err)
			}

			rule := domain.RecurrenceRule{Type: domain.RecurrenceType(recurrenceType), Day: day}
			if err := rule.Validate(); err != nil {
				return err
			}

			dates, err := domain.ExpandSeries(anchorDate, untilDate, rule.Normalized())
			if err != nil {
				return err
			}
			for _, d := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), d.Format(domain.DateLayout))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recurrenceType, "type", string(domain.RecurrenceStartOfMonth), "START_OF_MONTH, END_OF_MONTH or SPECIFIC_DAY")
	cmd.Flags().IntVar(&day, "day", 0, "day of month for SPECIFIC_DAY")
	cmd.Flags().StringVar(&anchor, "anchor", "", "first effective date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&until, "until", "", "last date a record may land on, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("until")

	return cmd
}
