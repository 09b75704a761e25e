package stats

import (
	"sort"
	"time"

	"github.com/dom/nba-hub/internal/domain"
)

// ResolveTeamIdentity picks the canonical identity out of the history rows
// matching one abbreviation. An active row wins (the first one found, in
// input order; the schema promises at most one per team, but the resolver
// tolerates violations); otherwise the row with the latest effective start;
// nil when the candidate set is empty. activeCount reports how many active
// rows were seen so the caller can flag an invariant violation.
func ResolveTeamIdentity(records []domain.TeamHistory) (resolved *domain.TeamHistory, activeCount int) {
	for i := range records {
		if records[i].IsActive {
			if resolved == nil {
				resolved = &records[i]
			}
			activeCount++
		}
	}
	if resolved != nil {
		return resolved, activeCount
	}

	if len(records) == 0 {
		return nil, 0
	}

	byStart := make([]domain.TeamHistory, len(records))
	copy(byStart, records)
	sort.SliceStable(byStart, func(i, j int) bool {
		return time.Time(byStart[i].EffectiveStart).Before(time.Time(byStart[j].EffectiveStart))
	})
	latest := byStart[len(byStart)-1]
	return &latest, 0
}
