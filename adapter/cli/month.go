package cli

import (
	"fmt"
	"strings"
	"time"

	calendarQueries "github.com/felixgeelhaar/luna/internal/calendar/application/queries"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/spf13/cobra"
)

var (
	monthFlag int
	yearFlag  int
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show a month grid with event counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		now := time.Now()
		month := now.Month()
		year := now.Year()
		if monthFlag != 0 {
			if monthFlag < 1 || monthFlag > 12 {
				return fmt.Errorf("invalid month %d", monthFlag)
			}
			month = time.Month(monthFlag)
		}
		if yearFlag != 0 {
			year = yearFlag
		}

		events, err := app.ListEventsHandler.Handle(cmd.Context(), calendarQueries.ListEventsQuery{})
		if err != nil {
			return err
		}

		days := calendarQueries.MonthGrid(month, year, now)
		printMonthGrid(month, year, days, events)
		return nil
	},
}

func init() {
	monthCmd.Flags().IntVar(&monthFlag, "month", 0, "month (1-12), default current")
	monthCmd.Flags().IntVar(&yearFlag, "year", 0, "year, default current")
	AddCommand(monthCmd)
}

func printMonthGrid(month time.Month, year int, days []calendarQueries.CalendarDay, events []*calendarDomain.Event) {
	fmt.Printf("%s %d\n", month, year)
	fmt.Println(" Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	var row strings.Builder
	for _, day := range days {
		var cell string
		switch {
		case !day.IsCurrentMonth:
			cell = "   . "
		case day.IsToday:
			cell = fmt.Sprintf("[%2d] ", day.DayOfMonth)
		default:
			cell = fmt.Sprintf(" %2d  ", day.DayOfMonth)
		}

		// Mark days that have events.
		if day.IsCurrentMonth && len(calendarDomain.EventsForDay(events, day.Date)) > 0 {
			cell = cell[:4] + "*"
		}
		row.WriteString(cell)

		if day.DayOfWeek == time.Saturday {
			fmt.Println(strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}
}
