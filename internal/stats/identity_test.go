package stats_test

import (
	"testing"
	"time"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func date(year int) datatypes.Date {
	return datatypes.Date(time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC))
}

func identity(id int, startYear int, active bool) domain.TeamHistory {
	abbrev := "CHA"
	return domain.TeamHistory{
		TeamHistoryID:  id,
		TeamID:         10,
		EffectiveStart: date(startYear),
		City:           "Charlotte",
		Nickname:       "Hornets",
		Abbreviation:   &abbrev,
		IsActive:       active,
	}
}

func TestResolveTeamIdentity_ActiveWinsRegardlessOfOrder(t *testing.T) {
	active := identity(3, 2014, true)
	oldA := identity(1, 1988, false)
	oldB := identity(2, 2004, false)

	orderings := [][]domain.TeamHistory{
		{active, oldA, oldB},
		{oldA, active, oldB},
		{oldA, oldB, active},
	}
	for _, records := range orderings {
		resolved, activeCount := stats.ResolveTeamIdentity(records)
		require.NotNil(t, resolved)
		assert.Equal(t, 3, resolved.TeamHistoryID)
		assert.Equal(t, 1, activeCount)
	}
}

func TestResolveTeamIdentity_LatestStartWhenNoActive(t *testing.T) {
	records := []domain.TeamHistory{
		identity(2, 2005, false),
		identity(1, 1990, false),
		identity(3, 2015, false),
	}

	resolved, activeCount := stats.ResolveTeamIdentity(records)
	require.NotNil(t, resolved)
	assert.Equal(t, 3, resolved.TeamHistoryID, "most recent historical identity")
	assert.Zero(t, activeCount)
}

func TestResolveTeamIdentity_MultipleActivesDegradesToFirst(t *testing.T) {
	records := []domain.TeamHistory{
		identity(7, 2010, true),
		identity(8, 2018, true),
	}

	resolved, activeCount := stats.ResolveTeamIdentity(records)
	require.NotNil(t, resolved)
	assert.Equal(t, 7, resolved.TeamHistoryID, "first active found wins")
	assert.Equal(t, 2, activeCount, "caller can observe the invariant violation")
}

func TestResolveTeamIdentity_Empty(t *testing.T) {
	resolved, activeCount := stats.ResolveTeamIdentity(nil)
	assert.Nil(t, resolved)
	assert.Zero(t, activeCount)
}

func TestResolveTeamIdentity_DoesNotReorderInput(t *testing.T) {
	records := []domain.TeamHistory{
		identity(2, 2005, false),
		identity(1, 1990, false),
	}

	_, _ = stats.ResolveTeamIdentity(records)
	assert.Equal(t, 2, records[0].TeamHistoryID, "resolver sorts a copy")
}
