package stats_test

import (
	"math/rand"
	"testing"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func line(key string, season int, team string, games int) stats.StatLine {
	return stats.StatLine{Key: key, Season: season, Team: team, Games: games}
}

func TestAggregate_SumsAcrossRows(t *testing.T) {
	first := line("jamesle01", 2010, "CLE", 10)
	first.Points = intPtr(200)
	second := line("jamesle01", 2010, "MIA", 8)
	second.Points = intPtr(150)

	agg, err := stats.Aggregate([]stats.StatLine{first, second}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	require.Equal(t, 1, agg.Len())
	acc, ok := agg.Get("jamesle01")
	require.True(t, ok)
	assert.Equal(t, 18, acc.Games)
	assert.Equal(t, 350, acc.Points)
	assert.Len(t, acc.Teams, 2)
	assert.Len(t, acc.Seasons, 1)
}

func TestAggregate_MissingStatContributesZeroButGamesCount(t *testing.T) {
	withPoints := line("duranke01", 2014, "OKC", 27)
	withPoints.Points = intPtr(893)
	withoutPoints := line("duranke01", 2015, "OKC", 45)
	// Points deliberately nil: not recorded, not zero.

	agg, err := stats.Aggregate([]stats.StatLine{withPoints, withoutPoints}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	acc, ok := agg.Get("duranke01")
	require.True(t, ok)
	assert.Equal(t, 72, acc.Games, "games still count when a stat is unrecorded")
	assert.Equal(t, 893, acc.Points, "nil points must not change the sum")
}

func TestAggregate_CommutativeOverPermutations(t *testing.T) {
	base := []stats.StatLine{}
	for i := 0; i < 20; i++ {
		l := line("player", 2000+i%4, "TM"+string(rune('A'+i%3)), i+1)
		l.Points = intPtr(i * 10)
		l.Rebounds = intPtr(i * 3)
		base = append(base, l)
	}

	reference, err := stats.Aggregate(base, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)
	refAcc, _ := reference.Get("player")

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]stats.StatLine, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		agg, err := stats.Aggregate(shuffled, stats.ByEntity, stats.PreferFirstNonEmpty)
		require.NoError(t, err)
		acc, ok := agg.Get("player")
		require.True(t, ok)

		assert.Equal(t, refAcc.Games, acc.Games)
		assert.Equal(t, refAcc.Points, acc.Points)
		assert.Equal(t, refAcc.Rebounds, acc.Rebounds)
		assert.Equal(t, refAcc.Teams, acc.Teams)
		assert.Equal(t, refAcc.Seasons, acc.Seasons)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	lines := []stats.StatLine{
		line("a", 2001, "NYK", 50),
		line("b", 2001, "BOS", 60),
		line("a", 2002, "NYK", 70),
	}

	first, err := stats.Aggregate(lines, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)
	second, err := stats.Aggregate(lines, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	assert.Equal(t, first.Entries(), second.Entries())
}

func TestAggregate_NameMergePolicy(t *testing.T) {
	unnamed := line("bryanko01", 2000, "LAL", 66)
	named := line("bryanko01", 2001, "LAL", 68)
	named.Name = "Kobe Bryant"
	renamed := line("bryanko01", 2002, "LAL", 80)
	renamed.Name = "K. Bryant"

	agg, err := stats.Aggregate([]stats.StatLine{unnamed, named, renamed}, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	acc, _ := agg.Get("bryanko01")
	assert.Equal(t, "Kobe Bryant", acc.Name, "first non-empty name wins")
}

func TestAggregate_EntitySeasonKey(t *testing.T) {
	lines := []stats.StatLine{
		line("p1", 2001, "ATL", 40),
		line("p1", 2002, "ATL", 41),
		line("p1", 2002, "CHI", 30),
	}

	agg, err := stats.Aggregate(lines, stats.ByEntitySeason, stats.PreferFirstNonEmpty)
	require.NoError(t, err)

	assert.Equal(t, 2, agg.Len())
	acc, ok := agg.Get("p1/2002")
	require.True(t, ok)
	assert.Equal(t, 71, acc.Games)
}

func TestAggregate_RejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name    string
		bad     stats.StatLine
		wantErr error
	}{
		{"missing entity key", line("", 2001, "ATL", 10), domain.ErrMissingEntityKey},
		{"missing season", line("p1", 0, "ATL", 10), domain.ErrMissingSeasonYear},
		{"negative games", line("p1", 2001, "ATL", -1), domain.ErrNegativeGames},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := []stats.StatLine{line("ok", 2001, "ATL", 5), tc.bad}
			_, err := stats.Aggregate(rows, stats.ByEntity, stats.PreferFirstNonEmpty)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg, err := stats.Aggregate(nil, stats.ByEntity, stats.PreferFirstNonEmpty)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.Len())
	assert.Empty(t, agg.Entries())
}
