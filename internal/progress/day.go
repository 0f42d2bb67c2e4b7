package progress

import "time"

const dateLayout = "2006-01-02"

// dayFact is the single day-boundary observation shared by the XP and
// streak rules, so the two can never disagree on what "today" means.
type dayFact struct {
	Today     string
	Yesterday string

	// IsNewDay is true when the learner has not been active today.
	IsNewDay bool

	// HadYesterday is true when yesterday carries a completion marker.
	HadYesterday bool
}

// rollover observes the day boundary for one external event. All dates use
// the event time's location, i.e. the learner's local calendar.
func (r *Record) rollover(now time.Time) dayFact {
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	return dayFact{
		Today:        today,
		Yesterday:    yesterday,
		IsNewDay:     r.LastActiveDate != today,
		HadYesterday: r.LastCompletionDate == yesterday,
	}
}

// daysBetween returns the whole calendar days from one YYYY-MM-DD date to
// another, or -1 if either fails to parse.
func daysBetween(from, to string) int {
	a, err := time.Parse(dateLayout, from)
	if err != nil {
		return -1
	}
	b, err := time.Parse(dateLayout, to)
	if err != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}
