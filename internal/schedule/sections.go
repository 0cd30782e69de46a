// Package schedule turns a flat match list into the date-bucketed sections
// the client renders. Grouping works on the raw date prefix of the upstream
// timestamp: keys are compared byte-wise, never parsed, so two timestamps in
// different timezones that share a date prefix land in the same bucket. This
// matches observed upstream behavior and must not be "fixed" into calendar
// arithmetic.
package schedule

import (
	"sort"

	"matchday-service/internal/domain"
	"matchday-service/internal/timeutil"
)

// BuildSections groups matches by the date component of their UTC timestamp,
// sorts the resulting sections ascending by date string, and drops sections
// dated strictly before today. Matches keep their original relative order
// within a section. The input slice is not modified.
//
// A match with an empty timestamp groups under the empty key, sorts first,
// and survives the filter only when today is also empty.
func BuildSections(matches []domain.Match, today string) []domain.Section {
	if len(matches) == 0 {
		return nil
	}

	byDate := make(map[string]int, len(matches))
	sections := make([]domain.Section, 0, len(matches))

	for _, m := range matches {
		key := timeutil.DayKey(m.UTCDate)
		idx, ok := byDate[key]
		if !ok {
			byDate[key] = len(sections)
			sections = append(sections, domain.Section{Date: key})
			idx = len(sections) - 1
		}
		sections[idx].Matches = append(sections[idx].Matches, m)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Date < sections[j].Date
	})

	kept := sections[:0]
	for _, s := range sections {
		if s.Date >= today {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// FavoritesOnly returns the sections restricted to matches whose id is in
// saved. Sections left without matches are dropped entirely. The input is
// not modified.
func FavoritesOnly(sections []domain.Section, saved map[int]struct{}) []domain.Section {
	var out []domain.Section
	for _, s := range sections {
		var matches []domain.Match
		for _, m := range s.Matches {
			if _, ok := saved[m.ID]; ok {
				matches = append(matches, m)
			}
		}
		if len(matches) > 0 {
			out = append(out, domain.Section{Date: s.Date, Matches: matches})
		}
	}
	return out
}
