package stats

import "sort"

// Metric is a rankable counting stat.
type Metric string

const (
	MetricPoints   Metric = "points"
	MetricRebounds Metric = "rebounds"
	MetricAssists  Metric = "assists"
	MetricSteals   Metric = "steals"
	MetricBlocks   Metric = "blocks"
)

// LeaderboardMetrics lists every metric a season leaderboard is built for.
var LeaderboardMetrics = []Metric{
	MetricPoints,
	MetricRebounds,
	MetricAssists,
	MetricSteals,
	MetricBlocks,
}

// DefaultLeaderboardSize is the top-N cutoff for a leaderboard.
const DefaultLeaderboardSize = 10

// LeaderboardRow is one ranked entry for a single metric.
type LeaderboardRow struct {
	PlayerBrefID string   `json:"player_bref_id"`
	PlayerName   string   `json:"player_name"`
	Teams        []string `json:"teams"`
	Value        int      `json:"value"`
	PerGame      float64  `json:"per_game"`
	Games        int      `json:"games"`
}

// Rank converts an aggregation into the top-N rows for one metric, sorted by
// value descending. The sort is stable over the aggregation's first-seen
// order; ties carry no secondary key. topN <= 0 falls back to the default.
func Rank(agg *Aggregation, metric Metric, topN int) []LeaderboardRow {
	if topN <= 0 {
		topN = DefaultLeaderboardSize
	}

	rows := make([]LeaderboardRow, 0, agg.Len())
	for _, acc := range agg.Entries() {
		value := acc.MetricValue(metric)
		perGame := 0.0
		if acc.Games > 0 {
			perGame = float64(value) / float64(acc.Games)
		}
		name := acc.Name
		if name == "" {
			name = acc.Key
		}
		rows = append(rows, LeaderboardRow{
			PlayerBrefID: acc.Key,
			PlayerName:   name,
			Teams:        sortedTeams(acc.Teams),
			Value:        value,
			PerGame:      perGame,
			Games:        acc.Games,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// MetricValue returns the summed value for one metric.
func (a *Accumulator) MetricValue(metric Metric) int {
	switch metric {
	case MetricPoints:
		return a.Points
	case MetricRebounds:
		return a.Rebounds
	case MetricAssists:
		return a.Assists
	case MetricSteals:
		return a.Steals
	case MetricBlocks:
		return a.Blocks
	default:
		return 0
	}
}

func sortedTeams(teams map[string]struct{}) []string {
	out := make([]string, 0, len(teams))
	for team := range teams {
		out = append(out, team)
	}
	sort.Strings(out)
	return out
}
