package tui

import (
	"time"

	"newshub/client"
)

// Stats aggregates the current article snapshot for the status summary.
type Stats struct {
	Total      int
	Posted     int
	Categories int
	Today      int
}

// ComputeStats derives summary counts from the article snapshot. "Today"
// means the article's processed timestamp falls on the same calendar date
// as now, in now's location.
func ComputeStats(articles []client.Article, now time.Time) Stats {
	stats := Stats{Total: len(articles)}

	categories := make(map[string]struct{})
	for _, a := range articles {
		if a.Posted {
			stats.Posted++
		}
		categories[a.Category] = struct{}{}
		if sameDay(a.ProcessedAt, now) {
			stats.Today++
		}
	}
	stats.Categories = len(categories)

	return stats
}

func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
