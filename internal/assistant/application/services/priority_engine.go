package services

import (
	"strings"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// keywordRule maps a substring match to a priority. Rules are evaluated in
// order over the lowercased title+description; the first hit wins.
type keywordRule struct {
	keyword  string
	priority calendarDomain.Priority
}

// participantRule maps a minimum participant count (exclusive) to a priority.
type participantRule struct {
	moreThan int
	priority calendarDomain.Priority
}

var keywordRules = []keywordRule{
	{"urgent", calendarDomain.PriorityHigh},
	{"important", calendarDomain.PriorityHigh},
	{"asap", calendarDomain.PriorityHigh},
	{"critical", calendarDomain.PriorityHigh},
	{"deadline", calendarDomain.PriorityHigh},
	{"optional", calendarDomain.PriorityLow},
	{"fyi", calendarDomain.PriorityLow},
	{"casual", calendarDomain.PriorityLow},
	{"coffee", calendarDomain.PriorityLow},
}

var participantRules = []participantRule{
	{5, calendarDomain.PriorityHigh},
	{2, calendarDomain.PriorityMedium},
}

// PredictEventPriority classifies an event's urgency from its title,
// description, and participant count. High-priority keywords are checked
// before low-priority ones, then participant thresholds, then a medium
// default. Returns medium unconditionally when priority assignment is
// disabled.
func PredictEventPriority(
	settings assistantDomain.Settings,
	title, description string,
	participants []string,
) calendarDomain.Priority {
	if !settings.EnablePriorityAssignment {
		return calendarDomain.PriorityMedium
	}

	combined := strings.ToLower(title + " " + description)
	for _, rule := range keywordRules {
		if strings.Contains(combined, rule.keyword) {
			return rule.priority
		}
	}

	for _, rule := range participantRules {
		if len(participants) > rule.moreThan {
			return rule.priority
		}
	}

	return calendarDomain.PriorityMedium
}
