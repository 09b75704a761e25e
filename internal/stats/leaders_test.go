package stats_test

import (
	"fmt"
	"testing"

	"github.com/dom/nba-hub/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_TruncatesToTopN(t *testing.T) {
	// 15 players with strictly decreasing point totals.
	lines := make([]stats.StatLine, 0, 15)
	for i := 0; i < 15; i++ {
		l := stats.StatLine{
			Key:    fmt.Sprintf("player%02d", i),
			Season: 2020,
			Team:   "TOT",
			Games:  70,
			Points: intPtr(2000 - i*50),
		}
		lines = append(lines, l)
	}

	agg, err := stats.Aggregate(lines, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	rows := stats.Rank(agg, stats.MetricPoints, 10)
	require.Len(t, rows, 10)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i-1].Value, rows[i].Value, "descending order")
	}
	assert.Equal(t, "player00", rows[0].PlayerBrefID)
	for _, row := range rows {
		assert.NotEqual(t, "player10", row.PlayerBrefID, "11th ranked player excluded")
	}
}

func TestRank_ReturnsAllWhenFewerThanTopN(t *testing.T) {
	agg, err := stats.Aggregate([]stats.StatLine{
		{Key: "a", Season: 2020, Team: "AAA", Games: 10, Points: intPtr(100)},
		{Key: "b", Season: 2020, Team: "BBB", Games: 10, Points: intPtr(90)},
	}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	rows := stats.Rank(agg, stats.MetricPoints, 10)
	assert.Len(t, rows, 2)
}

func TestRank_PerGameRate(t *testing.T) {
	agg, err := stats.Aggregate([]stats.StatLine{
		{Key: "p", Season: 2020, Team: "CLE", Games: 10, Points: intPtr(200)},
		{Key: "p", Season: 2020, Team: "MIA", Games: 8, Points: intPtr(150)},
	}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	rows := stats.Rank(agg, stats.MetricPoints, 10)
	require.Len(t, rows, 1)
	assert.Equal(t, 350, rows[0].Value)
	assert.Equal(t, 18, rows[0].Games)
	assert.InDelta(t, 19.44, rows[0].PerGame, 0.01)
}

func TestRank_ZeroGamesYieldsZeroRate(t *testing.T) {
	agg, err := stats.Aggregate([]stats.StatLine{
		{Key: "dnp", Season: 2020, Team: "PHI", Games: 0, Points: intPtr(0)},
	}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	rows := stats.Rank(agg, stats.MetricPoints, 10)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].PerGame)
}

func TestRank_NameFallsBackToKey(t *testing.T) {
	agg, err := stats.Aggregate([]stats.StatLine{
		{Key: "nobody01", Season: 2020, Team: "SAS", Games: 5, Points: intPtr(10)},
	}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	rows := stats.Rank(agg, stats.MetricPoints, 10)
	require.Len(t, rows, 1)
	assert.Equal(t, "nobody01", rows[0].PlayerName)
}

func TestRank_TeamsSortedLexicographically(t *testing.T) {
	agg, err := stats.Aggregate([]stats.StatLine{
		{Key: "p", Season: 2020, Team: "UTA", Games: 20, Points: intPtr(100)},
		{Key: "p", Season: 2020, Team: "ATL", Games: 20, Points: intPtr(100)},
		{Key: "p", Season: 2020, Team: "MEM", Games: 20, Points: intPtr(100)},
	}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	rows := stats.Rank(agg, stats.MetricPoints, 10)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"ATL", "MEM", "UTA"}, rows[0].Teams)
}

func TestRank_TiesKeepFetchOrder(t *testing.T) {
	agg, err := stats.Aggregate([]stats.StatLine{
		{Key: "first", Season: 2020, Team: "AAA", Games: 10, Points: intPtr(500)},
		{Key: "second", Season: 2020, Team: "BBB", Games: 10, Points: intPtr(500)},
	}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	rows := stats.Rank(agg, stats.MetricPoints, 10)
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0].PlayerBrefID, "stable sort keeps first-seen order for ties")
	assert.Equal(t, "second", rows[1].PlayerBrefID)
}

func TestRank_EachMetricIndependently(t *testing.T) {
	scorer := stats.StatLine{Key: "scorer", Season: 2020, Team: "DAL", Games: 70,
		Points: intPtr(2400), Rebounds: intPtr(300)}
	rebounder := stats.StatLine{Key: "rebounder", Season: 2020, Team: "DEN", Games: 72,
		Points: intPtr(900), Rebounds: intPtr(1000)}

	agg, err := stats.Aggregate([]stats.StatLine{scorer, rebounder}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	points := stats.Rank(agg, stats.MetricPoints, 10)
	rebounds := stats.Rank(agg, stats.MetricRebounds, 10)
	assert.Equal(t, "scorer", points[0].PlayerBrefID)
	assert.Equal(t, "rebounder", rebounds[0].PlayerBrefID)
}

func TestRank_EmptyAggregation(t *testing.T) {
	rows := stats.Rank(stats.NewAggregation(), stats.MetricPoints, 10)
	assert.Empty(t, rows)
}
