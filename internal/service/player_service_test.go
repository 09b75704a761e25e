package service_test

import (
	"context"
	"testing"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/repository"
	pgrepo "github.com/dom/nba-hub/internal/repository/postgres"
	"github.com/dom/nba-hub/internal/service"
	"github.com/dom/nba-hub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlayer(t *testing.T, tdb *testutil.TestDB, id int64, first, last string) {
	t.Helper()
	row := domain.Player{
		PlayerID:  id,
		FirstName: testutil.StrPtr(first),
		LastName:  testutil.StrPtr(last),
	}
	require.NoError(t, tdb.DB.Create(&row).Error)
}

func TestPlayerService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	tdb := testutil.NewTestDB(t)
	repos := pgrepo.NewRepositories(tdb.DB)
	svc := service.NewPlayerService(repos.Player, repos.PlayerStats)
	ctx := context.Background()

	t.Run("listing orders by last name and pages without overlap", func(t *testing.T) {
		tdb.Truncate(t)

		seedPlayer(t, tdb, 1, "Michael", "Jordan")
		seedPlayer(t, tdb, 2, "Larry", "Bird")
		seedPlayer(t, tdb, 3, "Magic", "Johnson")
		seedPlayer(t, tdb, 4, "Kareem", "Abdul-Jabbar")

		first, err := svc.List(ctx, repository.PageRequest{Limit: 3})
		require.NoError(t, err)
		require.Len(t, first.Players, 3)
		assert.Equal(t, "Abdul-Jabbar", *first.Players[0].LastName)
		assert.Equal(t, "Bird", *first.Players[1].LastName)
		assert.Equal(t, "Johnson", *first.Players[2].LastName)
		require.NotEmpty(t, first.NextCursor)

		second, err := svc.List(ctx, repository.PageRequest{Cursor: first.NextCursor, Limit: 3})
		require.NoError(t, err)
		require.Len(t, second.Players, 1)
		assert.Equal(t, "Jordan", *second.Players[0].LastName)
		assert.Empty(t, second.NextCursor)
	})

	t.Run("listing rejects a garbage cursor", func(t *testing.T) {
		tdb.Truncate(t)

		_, err := svc.List(ctx, repository.PageRequest{Cursor: "not-a-cursor"})
		assert.ErrorIs(t, err, domain.ErrInvalidCursor)
	})

	t.Run("directory folds career rows into one entry per player", func(t *testing.T) {
		tdb.Truncate(t)

		testutil.NewSeasonTotal("abduka01", 1970, "MIL").
			WithName("Kareem Abdul-Jabbar").WithGames(82).Build(t, tdb.DB)
		testutil.NewSeasonTotal("abduka01", 1976, "LAL").
			WithName("Kareem Abdul-Jabbar").WithGames(82).Build(t, tdb.DB)
		testutil.NewSeasonTotal("birdla01", 1980, "BOS").
			WithName("Larry Bird").WithGames(82).Build(t, tdb.DB)

		entries, err := svc.Directory(ctx, 0)
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, "Kareem Abdul-Jabbar", entries[0].PlayerName)
		assert.Equal(t, 1970, entries[0].FirstSeason)
		assert.Equal(t, 1976, entries[0].LastSeason)
		assert.Equal(t, 2, entries[0].SeasonsCount)
		assert.Equal(t, 2, entries[0].TeamsCount)
		assert.Equal(t, "Larry Bird", entries[1].PlayerName)
	})

	t.Run("directory honors a positive limit", func(t *testing.T) {
		tdb.Truncate(t)

		testutil.NewSeasonTotal("aaa01", 2000, "ATL").WithName("A Player").WithGames(1).Build(t, tdb.DB)
		testutil.NewSeasonTotal("bbb01", 2000, "ATL").WithName("B Player").WithGames(1).Build(t, tdb.DB)

		entries, err := svc.Directory(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "A Player", entries[0].PlayerName)
	})

	t.Run("profile composes totals and advanced for one player", func(t *testing.T) {
		tdb.Truncate(t)

		testutil.NewSeasonTotal("duncati01", 2002, "SAS").
			WithName("Tim Duncan").WithGames(82).WithPoints(2089).Build(t, tdb.DB)
		testutil.NewSeasonTotal("duncati01", 2003, "SAS").
			WithName("Tim Duncan").WithGames(81).WithPoints(1884).Build(t, tdb.DB)
		adv := domain.PlayerSeasonAdvanced{
			PlayerBrefID: "duncati01", SeasonYear: 2002, TeamAbbrev: "SAS",
			PER: testutil.FloatPtr(27.0),
		}
		require.NoError(t, tdb.DB.Create(&adv).Error)

		profile, err := svc.GetProfile(ctx, "duncati01")
		require.NoError(t, err)

		assert.Equal(t, "Tim Duncan", profile.Player.PlayerName)
		require.NotNil(t, profile.Player.FirstSeason)
		assert.Equal(t, 2002, *profile.Player.FirstSeason)
		assert.Equal(t, 2003, *profile.Player.LastSeason)
		require.Len(t, profile.Totals, 2)
		assert.Equal(t, 2003, profile.Totals[0].SeasonYear, "newest season first")
		require.Len(t, profile.Advanced, 1)
	})

	t.Run("profile for unknown id composes an empty body", func(t *testing.T) {
		tdb.Truncate(t)

		profile, err := svc.GetProfile(ctx, "nobody99")
		require.NoError(t, err)

		assert.Equal(t, "nobody99", profile.Player.PlayerName)
		assert.Nil(t, profile.Player.FirstSeason)
		assert.Nil(t, profile.Player.LastSeason)
		assert.Empty(t, profile.Totals)
		assert.Empty(t, profile.Advanced)
	})
}
