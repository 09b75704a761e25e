package service_test

import (
	"context"
	"fmt"
	"testing"

	pgrepo "github.com/dom/nba-hub/internal/repository/postgres"
	"github.com/dom/nba-hub/internal/service"
	"github.com/dom/nba-hub/internal/stats"
	"github.com/dom/nba-hub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLeaderService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	tdb := testutil.NewTestDB(t)
	repos := pgrepo.NewRepositories(tdb.DB)
	svc := service.NewLeaderService(repos.PlayerStats, nil, zap.NewNop())
	ctx := context.Background()

	t.Run("merges traded player across team rows", func(t *testing.T) {
		tdb.Truncate(t)

		testutil.NewSeasonTotal("harderj01", 2021, "HOU").
			WithName("James Harden").WithGames(8).WithPoints(200).Build(t, tdb.DB)
		testutil.NewSeasonTotal("harderj01", 2021, "BRK").
			WithName("James Harden").WithGames(36).WithPoints(900).Build(t, tdb.DB)
		testutil.NewSeasonTotal("duranke01", 2021, "BRK").
			WithName("Kevin Durant").WithGames(35).WithPoints(940).Build(t, tdb.DB)

		leaders, err := svc.GetSeasonLeaders(ctx, 2021)
		require.NoError(t, err)

		points := leaders[stats.MetricPoints]
		require.Len(t, points, 2)
		assert.Equal(t, "harderj01", points[0].PlayerBrefID)
		assert.Equal(t, 1100, points[0].Value, "both team stints sum into one entry")
		assert.Equal(t, 44, points[0].Games)
		assert.Equal(t, []string{"BRK", "HOU"}, points[0].Teams)
		assert.Equal(t, "duranke01", points[1].PlayerBrefID)
	})

	t.Run("truncates to ten entries per metric", func(t *testing.T) {
		tdb.Truncate(t)

		for i := 0; i < 13; i++ {
			points := 1000 + i*10
			testutil.NewSeasonTotal(fmt.Sprintf("plyr%02d", i), 1995, "CHI").
				WithGames(80).WithPoints(points).Build(t, tdb.DB)
		}

		leaders, err := svc.GetSeasonLeaders(ctx, 1995)
		require.NoError(t, err)

		points := leaders[stats.MetricPoints]
		require.Len(t, points, 10)
		assert.Equal(t, "plyr12", points[0].PlayerBrefID)
		assert.Equal(t, 1120, points[0].Value)
		for i := 1; i < len(points); i++ {
			assert.GreaterOrEqual(t, points[i-1].Value, points[i].Value)
		}
	})

	t.Run("ranks each metric independently", func(t *testing.T) {
		tdb.Truncate(t)

		testutil.NewSeasonTotal("scorer01", 1987, "CHI").
			WithGames(82).WithPoints(3041).WithAssists(377).Build(t, tdb.DB)
		testutil.NewSeasonTotal("passer01", 1987, "LAL").
			WithGames(80).WithPoints(1909).WithAssists(977).Build(t, tdb.DB)

		leaders, err := svc.GetSeasonLeaders(ctx, 1987)
		require.NoError(t, err)

		assert.Equal(t, "scorer01", leaders[stats.MetricPoints][0].PlayerBrefID)
		assert.Equal(t, "passer01", leaders[stats.MetricAssists][0].PlayerBrefID)
	})

	t.Run("empty season yields empty boards not an error", func(t *testing.T) {
		tdb.Truncate(t)

		leaders, err := svc.GetSeasonLeaders(ctx, 1946)
		require.NoError(t, err)

		require.Len(t, leaders, len(stats.LeaderboardMetrics))
		for metric, rows := range leaders {
			assert.Empty(t, rows, "metric %s", metric)
		}
	})

	t.Run("season rows do not leak across seasons", func(t *testing.T) {
		tdb.Truncate(t)

		testutil.NewSeasonTotal("onesea01", 2003, "CLE").
			WithGames(79).WithPoints(1654).Build(t, tdb.DB)
		testutil.NewSeasonTotal("onesea01", 2004, "CLE").
			WithGames(80).WithPoints(2175).Build(t, tdb.DB)

		leaders, err := svc.GetSeasonLeaders(ctx, 2003)
		require.NoError(t, err)

		points := leaders[stats.MetricPoints]
		require.Len(t, points, 1)
		assert.Equal(t, 1654, points[0].Value)
	})
}
