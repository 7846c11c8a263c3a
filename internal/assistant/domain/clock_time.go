// Package domain holds the assistant bounded context: suggestion settings and
// the clock-time value helpers the heuristics are built on.
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes converts a "HH:MM" clock string to minutes since midnight.
// Input is assumed well-formed; malformed parts contribute zero.
func TimeToMinutes(clock string) int {
	hh, mm, _ := strings.Cut(clock, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	return hours*60 + minutes
}

// MinutesToTime converts minutes since midnight to a zero-padded "HH:MM"
// string. Negative input is not handled.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateTimeSlots enumerates "HH:MM" strings from start to end at the given
// interval in minutes, inclusive of both ends when they fall on the grid.
// Used to populate fixed-choice time pickers.
func GenerateTimeSlots(start, end string, intervalMinutes int) []string {
	slots := make([]string, 0)
	current := TimeToMinutes(start)
	limit := TimeToMinutes(end)

	for current <= limit {
		slots = append(slots, MinutesToTime(current))
		current += intervalMinutes
	}

	return slots
}

// OnDate places a "HH:MM" clock time on the given calendar date, in the
// date's location, with seconds and nanoseconds zeroed.
func OnDate(clock string, date time.Time) time.Time {
	minutes := TimeToMinutes(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
