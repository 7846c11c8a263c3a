package cli

import (
	"fmt"
	"strconv"
	"strings"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	"github.com/spf13/cobra"
)

var settingsSet []string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or adjust suggestion settings",
	Long: `Show the effective suggestion settings. With --set, applies overrides
for this invocation and prints the merged result.

Supported keys:
  focus-time=<bool>           enable focus time blocks
  meeting-suggestions=<bool>  enable meeting suggestions
  priority-assignment=<bool>  enable priority prediction
  work-start=<HH:MM>          working hours start
  work-end=<HH:MM>            working hours end
  meeting-duration=<minutes>  preferred meeting duration (15, 30, 45, 60, 90, 120)
  focus-preference=<value>    morning, afternoon, or custom
  focus-times=<ranges>        custom focus time ranges, e.g. "09:00-11:00,13:00-14:30"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return errNoApp
		}

		settings := app.Settings
		if len(settingsSet) > 0 {
			update, err := buildPartial(settingsSet)
			if err != nil {
				return err
			}
			merged := settings.Merge(update)
			if err := merged.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}
			settings = merged
			app.Settings = merged
		}

		printSettings(settings)
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringArrayVar(&settingsSet, "set", nil, "override a setting as key=value (repeatable)")
	AddCommand(settingsCmd)
}

func printSettings(s assistantDomain.Settings) {
	fmt.Printf("Focus time:           %s\n", enabledLabel(s.EnableFocusTime))
	fmt.Printf("Meeting suggestions:  %s\n", enabledLabel(s.EnableMeetingSuggestions))
	fmt.Printf("Priority assignment:  %s\n", enabledLabel(s.EnablePriorityAssignment))
	fmt.Printf("Working hours:        %s - %s\n", s.WorkingHours.Start, s.WorkingHours.End)
	fmt.Printf("Meeting duration:     %d min\n", s.PreferredMeetingDuration)
	fmt.Printf("Focus preference:     %s\n", s.FocusTimePreference)
	if len(s.CustomFocusTimes) > 0 {
		ranges := make([]string, 0, len(s.CustomFocusTimes))
		for _, r := range s.CustomFocusTimes {
			ranges = append(ranges, r.Start+"-"+r.End)
		}
		fmt.Printf("Custom focus times:   %s\n", strings.Join(ranges, ", "))
	}
}

func enabledLabel(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func buildPartial(pairs []string) (assistantDomain.Partial, error) {
	var update assistantDomain.Partial
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return update, fmt.Errorf("invalid setting %q, expected key=value", pair)
		}

		switch key {
		case "focus-time":
			on, err := strconv.ParseBool(value)
			if err != nil {
				return update, fmt.Errorf("invalid value for %s: %q", key, value)
			}
			update.EnableFocusTime = &on
		case "meeting-suggestions":
			on, err := strconv.ParseBool(value)
			if err != nil {
				return update, fmt.Errorf("invalid value for %s: %q", key, value)
			}
			update.EnableMeetingSuggestions = &on
		case "priority-assignment":
			on, err := strconv.ParseBool(value)
			if err != nil {
				return update, fmt.Errorf("invalid value for %s: %q", key, value)
			}
			update.EnablePriorityAssignment = &on
		case "work-start":
			hours := assistantDomain.WorkingHours{Start: value, End: "17:00"}
			if update.WorkingHours != nil {
				hours.End = update.WorkingHours.End
			} else {
				hours.End = GetApp().Settings.WorkingHours.End
			}
			update.WorkingHours = &hours
		case "work-end":
			hours := assistantDomain.WorkingHours{Start: GetApp().Settings.WorkingHours.Start, End: value}
			if update.WorkingHours != nil {
				hours.Start = update.WorkingHours.Start
			}
			update.WorkingHours = &hours
		case "meeting-duration":
			minutes, err := strconv.Atoi(value)
			if err != nil {
				return update, fmt.Errorf("invalid value for %s: %q", key, value)
			}
			update.PreferredMeetingDuration = &minutes
		case "focus-preference":
			pref := assistantDomain.FocusPreference(value)
			update.FocusTimePreference = &pref
		case "focus-times":
			ranges, err := parseFocusRanges(value)
			if err != nil {
				return update, err
			}
			update.CustomFocusTimes = &ranges
		default:
			return update, fmt.Errorf("unknown setting %q", key)
		}
	}
	return update, nil
}

func parseFocusRanges(value string) ([]assistantDomain.ClockRange, error) {
	var ranges []assistantDomain.ClockRange
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		start, end, found := strings.Cut(part, "-")
		if !found {
			return nil, fmt.Errorf("invalid focus time range %q, expected HH:MM-HH:MM", part)
		}
		ranges = append(ranges, assistantDomain.ClockRange{Start: start, End: end})
	}
	return ranges, nil
}
