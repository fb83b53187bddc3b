package parser

import (
	"sort"

	"family-task-parser/internal/model"
)

// categoryRank is the scan order. At equal start offsets the lower rank wins, so a
// priority token is never swallowed by a location keyword that begins with it.
var categoryRank = map[model.Category]int{
	model.CategoryPriority:     0,
	model.CategoryTimeBucket:   1,
	model.CategoryFamilyMember: 2,
	model.CategoryLocation:     3,
	model.CategoryTime:         4,
}

// resolve orders matches by (start, rank) and drops any match that overlaps the last kept one.
func resolve(matches []model.Match) []model.Match {
	sorted := append([]model.Match(nil), matches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return categoryRank[sorted[i].Category] < categoryRank[sorted[j].Category]
	})

	kept := make([]model.Match, 0, len(sorted))
	lastEnd := 0
	for _, m := range sorted {
		if m.Start < lastEnd {
			continue
		}
		kept = append(kept, m)
		lastEnd = m.End
	}
	return kept
}
