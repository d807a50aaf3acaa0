package types

import "sort"

// SortEventsByTime orders a timeline chronologically, oldest first. The
// sort is stable so events with identical timestamps keep their relative
// order.
func SortEventsByTime(events []TimelineEvent) {
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].EventTime().Before(events[b].EventTime())
	})
}
