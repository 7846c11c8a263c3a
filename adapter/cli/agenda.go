package cli

import (
	"fmt"
	"time"

	calendarQueries "github.com/felixgeelhaar/luna/internal/calendar/application/queries"
	"github.com/spf13/cobra"
)

var agendaDate string

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show the events for a day",
	Long: `Show the events for one calendar day, sorted by start time.

Examples:
  luna agenda --seed 15
  luna agenda --calendar work.ics --date 2026-09-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		date, err := resolveDate(agendaDate)
		if err != nil {
			return err
		}

		events, err := app.ListEventsHandler.Handle(cmd.Context(), calendarQueries.ListEventsQuery{Date: &date})
		if err != nil {
			return err
		}

		fmt.Printf("Agenda for %s\n", date.Format("Mon, Jan 2 2006"))
		if len(events) == 0 {
			fmt.Println("  No events.")
			return nil
		}
		for _, event := range events {
			printEvent(event)
		}
		return nil
	},
}

func init() {
	agendaCmd.Flags().StringVar(&agendaDate, "date", "", "day to show (YYYY-MM-DD, default today)")
	AddCommand(agendaCmd)
}

// resolveDate parses a YYYY-MM-DD flag value, defaulting to today.
func resolveDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}
