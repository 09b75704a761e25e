package stats

import (
	"sort"

	"github.com/dom/nba-hub/internal/domain"
)

// PlayerSummary heads a player profile. FirstSeason/LastSeason are nil when
// the player has no totals rows: advanced rows alone do not establish a
// career range.
type PlayerSummary struct {
	PlayerBrefID string   `json:"player_bref_id"`
	PlayerName   string   `json:"player_name"`
	FirstSeason  *int     `json:"first_season"`
	LastSeason   *int     `json:"last_season"`
	Teams        []string `json:"teams"`
}

type PlayerProfile struct {
	Player   PlayerSummary                 `json:"player"`
	Totals   []domain.PlayerSeasonTotal    `json:"totals"`
	Advanced []domain.PlayerSeasonAdvanced `json:"advanced"`
}

// ComposePlayerProfile assembles a player's detail view. Both row sets come
// back season-descending then team-ascending. The summary derives from totals
// only: first/last season, the distinct team list, and the first non-empty
// name in the rows' original fetch order (falling back to the bref id).
func ComposePlayerProfile(brefID string, totals []domain.PlayerSeasonTotal, advanced []domain.PlayerSeasonAdvanced) PlayerProfile {
	name := brefID
	for _, row := range totals {
		if row.PlayerName != nil && *row.PlayerName != "" {
			name = *row.PlayerName
			break
		}
	}

	var firstSeason, lastSeason *int
	teams := make(map[string]struct{})
	for _, row := range totals {
		season := row.SeasonYear
		if firstSeason == nil || season < *firstSeason {
			firstSeason = &season
		}
		if lastSeason == nil || season > *lastSeason {
			lastSeason = &season
		}
		teams[row.TeamAbbrev] = struct{}{}
	}

	sortedTotals := make([]domain.PlayerSeasonTotal, len(totals))
	copy(sortedTotals, totals)
	sort.SliceStable(sortedTotals, func(i, j int) bool {
		if sortedTotals[i].SeasonYear != sortedTotals[j].SeasonYear {
			return sortedTotals[i].SeasonYear > sortedTotals[j].SeasonYear
		}
		return sortedTotals[i].TeamAbbrev < sortedTotals[j].TeamAbbrev
	})

	sortedAdvanced := make([]domain.PlayerSeasonAdvanced, len(advanced))
	copy(sortedAdvanced, advanced)
	sort.SliceStable(sortedAdvanced, func(i, j int) bool {
		if sortedAdvanced[i].SeasonYear != sortedAdvanced[j].SeasonYear {
			return sortedAdvanced[i].SeasonYear > sortedAdvanced[j].SeasonYear
		}
		return sortedAdvanced[i].TeamAbbrev < sortedAdvanced[j].TeamAbbrev
	})

	return PlayerProfile{
		Player: PlayerSummary{
			PlayerBrefID: brefID,
			PlayerName:   name,
			FirstSeason:  firstSeason,
			LastSeason:   lastSeason,
			Teams:        sortedTeams(teams),
		},
		Totals:   sortedTotals,
		Advanced: sortedAdvanced,
	}
}

// DirectoryEntry is one line of the all-players index.
type DirectoryEntry struct {
	PlayerBrefID string `json:"player_bref_id"`
	PlayerName   string `json:"player_name"`
	FirstSeason  int    `json:"first_season"`
	LastSeason   int    `json:"last_season"`
	SeasonsCount int    `json:"seasons_count"`
	TeamsCount   int    `json:"teams_count"`
}

// ComposePlayerDirectory aggregates every totals row by player and orders the
// entries by display name ascending (not by any metric). limit <= 0 means the
// full directory.
func ComposePlayerDirectory(totals []domain.PlayerSeasonTotal, limit int) ([]DirectoryEntry, error) {
	agg, err := Aggregate(PlayerTotalLines(totals), ByEntity, PreferFirstNonEmpty)
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, agg.Len())
	for _, acc := range agg.Entries() {
		first, last, ok := acc.SeasonRange()
		if !ok {
			continue
		}
		name := acc.Name
		if name == "" {
			name = acc.Key
		}
		entries = append(entries, DirectoryEntry{
			PlayerBrefID: acc.Key,
			PlayerName:   name,
			FirstSeason:  first,
			LastSeason:   last,
			SeasonsCount: len(acc.Seasons),
			TeamsCount:   len(acc.Teams),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PlayerName < entries[j].PlayerName
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type TeamProfile struct {
	Team      *domain.TeamHistory         `json:"team"`
	Totals    []domain.TeamSeasonTotal    `json:"totals"`
	Advanced  []domain.TeamSeasonAdvanced `json:"advanced"`
	Standings []domain.Standing           `json:"standings"`
}

// ComposeTeamProfile mirrors the player profile for a franchise: the resolved
// identity record stands in for the derived summary, and each season-keyed
// row set comes back season-descending. activeCount passes through from the
// identity resolver for the caller to inspect.
func ComposeTeamProfile(history []domain.TeamHistory, totals []domain.TeamSeasonTotal, advanced []domain.TeamSeasonAdvanced, standings []domain.Standing) (TeamProfile, int) {
	team, activeCount := ResolveTeamIdentity(history)

	sortedTotals := make([]domain.TeamSeasonTotal, len(totals))
	copy(sortedTotals, totals)
	sort.SliceStable(sortedTotals, func(i, j int) bool {
		return sortedTotals[i].SeasonYear > sortedTotals[j].SeasonYear
	})

	sortedAdvanced := make([]domain.TeamSeasonAdvanced, len(advanced))
	copy(sortedAdvanced, advanced)
	sort.SliceStable(sortedAdvanced, func(i, j int) bool {
		return sortedAdvanced[i].SeasonYear > sortedAdvanced[j].SeasonYear
	})

	sortedStandings := make([]domain.Standing, len(standings))
	copy(sortedStandings, standings)
	sort.SliceStable(sortedStandings, func(i, j int) bool {
		return sortedStandings[i].SeasonYear > sortedStandings[j].SeasonYear
	})

	return TeamProfile{
		Team:      team,
		Totals:    sortedTotals,
		Advanced:  sortedAdvanced,
		Standings: sortedStandings,
	}, activeCount
}
