package stats

import (
	"fmt"

	"github.com/dom/nba-hub/internal/domain"
)

// StatLine is the slice of a season stat row that aggregation consumes.
// Counting stats are pointers: nil means the source never recorded the value,
// and it contributes zero to a sum without ever marking the stat as present.
type StatLine struct {
	Key      string // entity natural key (player bref id or team abbrev)
	Season   int
	Team     string
	Name     string // "" = not recorded
	Games    int
	Points   *int
	Rebounds *int
	Assists  *int
	Steals   *int
	Blocks   *int
}

// KeyFunc resolves the grouping key for a stat line.
type KeyFunc func(StatLine) string

// ByEntity groups lines by their entity natural key.
func ByEntity(line StatLine) string { return line.Key }

// ByEntitySeason groups lines by entity and season, for per-season splits.
func ByEntitySeason(line StatLine) string {
	return fmt.Sprintf("%s/%d", line.Key, line.Season)
}

// NameMergePolicy decides which display name an accumulator keeps when a new
// line arrives. current is the name held so far ("" if none).
type NameMergePolicy func(current, incoming string) string

// PreferFirstNonEmpty keeps the first non-empty name observed in scan order.
func PreferFirstNonEmpty(current, incoming string) string {
	if current != "" {
		return current
	}
	return incoming
}

// Accumulator holds the running totals for one grouping key.
type Accumulator struct {
	Key      string
	Name     string
	Games    int
	Points   int
	Rebounds int
	Assists  int
	Steals   int
	Blocks   int
	Teams    map[string]struct{}
	Seasons  map[int]struct{}
}

// SeasonRange returns the smallest and largest season observed. ok is false
// when no season was ever recorded.
func (a *Accumulator) SeasonRange() (first, last int, ok bool) {
	for season := range a.Seasons {
		if !ok || season < first {
			first = season
		}
		if !ok || season > last {
			last = season
		}
		ok = true
	}
	return first, last, ok
}

// Aggregation is the result of one aggregation pass. Accumulators are held in
// the order their keys were first seen, so downstream stable sorts reproduce
// the store's row order for ties instead of map-iteration order.
type Aggregation struct {
	byKey map[string]*Accumulator
	order []string
}

func NewAggregation() *Aggregation {
	return &Aggregation{byKey: make(map[string]*Accumulator)}
}

func (a *Aggregation) Len() int { return len(a.order) }

func (a *Aggregation) Get(key string) (*Accumulator, bool) {
	acc, ok := a.byKey[key]
	return acc, ok
}

// Entries returns all accumulators in first-seen order.
func (a *Aggregation) Entries() []*Accumulator {
	entries := make([]*Accumulator, 0, len(a.order))
	for _, key := range a.order {
		entries = append(entries, a.byKey[key])
	}
	return entries
}

// Aggregate folds stat lines into one accumulator per grouping key. Numeric
// stats sum (nil contributes zero), team and season sets union, and the
// display name merges through the supplied policy. A line missing its entity
// key or season, or carrying a negative games count, fails the whole pass:
// malformed rows are rejected, never silently zeroed.
func Aggregate(lines []StatLine, key KeyFunc, names NameMergePolicy) (*Aggregation, error) {
	agg := NewAggregation()
	for i, line := range lines {
		if err := validate(line); err != nil {
			return nil, fmt.Errorf("stat line %d: %w", i, err)
		}
		agg.fold(key(line), line, names)
	}
	return agg, nil
}

func validate(line StatLine) error {
	if line.Key == "" {
		return domain.ErrMissingEntityKey
	}
	if line.Season == 0 {
		return domain.ErrMissingSeasonYear
	}
	if line.Games < 0 {
		return domain.ErrNegativeGames
	}
	return nil
}

func (a *Aggregation) fold(key string, line StatLine, names NameMergePolicy) {
	acc, ok := a.byKey[key]
	if !ok {
		acc = &Accumulator{
			Key:     key,
			Teams:   make(map[string]struct{}),
			Seasons: make(map[int]struct{}),
		}
		a.byKey[key] = acc
		a.order = append(a.order, key)
	}

	acc.Games += line.Games
	acc.Points += orZero(line.Points)
	acc.Rebounds += orZero(line.Rebounds)
	acc.Assists += orZero(line.Assists)
	acc.Steals += orZero(line.Steals)
	acc.Blocks += orZero(line.Blocks)
	if line.Team != "" {
		acc.Teams[line.Team] = struct{}{}
	}
	acc.Seasons[line.Season] = struct{}{}
	acc.Name = names(acc.Name, line.Name)
}

func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// PlayerTotalLines adapts player season totals to the aggregation input.
func PlayerTotalLines(rows []domain.PlayerSeasonTotal) []StatLine {
	lines := make([]StatLine, len(rows))
	for i, row := range rows {
		name := ""
		if row.PlayerName != nil {
			name = *row.PlayerName
		}
		lines[i] = StatLine{
			Key:      row.PlayerBrefID,
			Season:   row.SeasonYear,
			Team:     row.TeamAbbrev,
			Name:     name,
			Games:    orZero(row.Games),
			Points:   row.Points,
			Rebounds: row.ReboundsTotal,
			Assists:  row.Assists,
			Steals:   row.Steals,
			Blocks:   row.Blocks,
		}
	}
	return lines
}
