package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// EventDraft is the best-effort result of quick-add parsing. It is not yet a
// calendar event; the host validates it before committing.
type EventDraft struct {
	Title    string
	Start    time.Time
	End      time.Time
	Priority calendarDomain.Priority
	IsAllDay bool
	Type     calendarDomain.EventType
}

// Complete reports whether the draft carries everything needed to become an
// event.
func (d EventDraft) Complete() bool {
	return d.Title != "" && !d.Start.IsZero() && !d.End.IsZero()
}

// titlePhrases are checked against the lowercased input; when several occur,
// the one at the greatest string offset anchors the title.
var titlePhrases = []string{"meeting with", "call with"}

// dayOffsetRule shifts the draft's date when its phrase occurs in the input.
// Rules are mutually exclusive: the first match wins.
type dayOffsetRule struct {
	phrase string
	days   int
}

var dayOffsetRules = []dayOffsetRule{
	{"tomorrow", 1},
	{"next week", 7},
}

var clockPhrasePattern = regexp.MustCompile(`at (\d{1,2})(:\d{2})?\s*(am|pm)?`)

const allDayPhrase = "all day"

// ParseQuickEvent extracts a single best-effort event draft from free text.
// It never fails: ambiguous input still yields a draft, and a date-only
// phrase like "tomorrow" keeps the reference instant's clock time rather
// than normalizing to a default hour.
func ParseQuickEvent(text string, now time.Time, settings assistantDomain.Settings) EventDraft {
	lower := strings.ToLower(text)

	title := extractTitle(text, lower)
	start, end := now, now

	for _, rule := range dayOffsetRules {
		if strings.Contains(lower, rule.phrase) {
			start = start.AddDate(0, 0, rule.days)
			end = end.AddDate(0, 0, rule.days)
			break
		}
	}

	isAllDay := false
	if strings.Contains(lower, "at ") {
		if m := clockPhrasePattern.FindStringSubmatch(lower); m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute := 0
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2][1:])
			}
			switch m[3] {
			case "pm":
				if hour < 12 {
					hour += 12
				}
			case "am":
				if hour == 12 {
					hour = 0
				}
			}
			start = atClock(start, hour, minute)
			end = atClock(end, hour+1, minute)
		}
	} else if strings.Contains(lower, allDayPhrase) {
		isAllDay = true
		start = atClock(start, 0, 0)
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), end.Location())
	}

	if title == "" {
		title = "New Event"
	}

	return EventDraft{
		Title:    title,
		Start:    start,
		End:      end,
		Priority: PredictEventPriority(settings, text, "", nil),
		IsAllDay: isAllDay,
		Type:     calendarDomain.EventTypeEvent,
	}
}

// extractTitle pulls a short title from the input. When a known phrase is
// present the title is the phrase plus the following word, taken from the
// lowercased text; otherwise it is the first three words of the original.
func extractTitle(text, lower string) string {
	phraseIndex := -1
	for _, phrase := range titlePhrases {
		if idx := strings.Index(lower, phrase); idx > phraseIndex {
			phraseIndex = idx
		}
	}

	if phraseIndex >= 0 {
		words := strings.Split(lower[phraseIndex:], " ")
		if len(words) >= 3 {
			return strings.Join(words[:3], " ")
		}
		return ""
	}

	words := strings.Split(text, " ")
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// atClock places the given wall-clock time on t's calendar day. An hour of 24
// rolls over to the next day, matching the fixed one-hour meeting duration
// for an 11pm start.
func atClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
