package favorites

import "matchday-service/internal/domain"

// Apply returns a copy of matches with Favorite set for every match whose id
// is a member of saved, and cleared otherwise. Neither the input slice nor
// the saved set is modified.
func Apply(matches []domain.Match, saved map[int]struct{}) []domain.Match {
	if len(matches) == 0 {
		return nil
	}

	out := make([]domain.Match, len(matches))
	for i, m := range matches {
		_, ok := saved[m.ID]
		m.Favorite = ok
		out[i] = m
	}
	return out
}
