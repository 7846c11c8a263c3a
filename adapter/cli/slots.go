package cli

import (
	"fmt"
	"time"

	assistantQueries "github.com/felixgeelhaar/luna/internal/assistant/application/queries"
	"github.com/spf13/cobra"
)

var (
	slotsDate     string
	slotsDuration int
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show free working-hours slots for a day",
	Long: `Show the free slots of the requested duration within the day's
working hours. Each gap between events yields at most one slot,
placed at the start of the gap.

Examples:
  luna slots --seed 15
  luna slots --calendar work.ics --date 2026-09-01 --duration 60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		date, err := resolveDate(slotsDate)
		if err != nil {
			return err
		}

		slots, err := app.FindFreeSlotsHandler.Handle(cmd.Context(), assistantQueries.FindFreeSlotsQuery{
			Settings: app.Settings,
			Date:     date,
			Duration: time.Duration(slotsDuration) * time.Minute,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Free slots for %s\n", date.Format("Mon, Jan 2 2006"))
		if len(slots) == 0 {
			fmt.Println("  No slots available.")
			return nil
		}
		for _, slot := range slots {
			fmt.Printf("  %s - %s (%d min)\n",
				slot.Start.Format("3:04 PM"),
				slot.End.Format("3:04 PM"),
				slot.DurationMin,
			)
		}
		return nil
	},
}

func init() {
	slotsCmd.Flags().StringVar(&slotsDate, "date", "", "day to search (YYYY-MM-DD, default today)")
	slotsCmd.Flags().IntVar(&slotsDuration, "duration", 0, "slot duration in minutes (default: configured preference)")
	AddCommand(slotsCmd)
}
