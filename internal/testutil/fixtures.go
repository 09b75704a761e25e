package testutil

import (
	"testing"
	"time"

	"github.com/dom/nba-hub/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IntPtr returns a pointer for optional counting stats.
func IntPtr(v int) *int { return &v }

// Int64Ptr returns a pointer for optional id fields.
func Int64Ptr(v int64) *int64 { return &v }

// FloatPtr returns a pointer for optional rate stats.
func FloatPtr(v float64) *float64 { return &v }

// StrPtr returns a pointer for optional text fields.
func StrPtr(v string) *string { return &v }

// Date builds a datatypes.Date from a calendar day.
func Date(year, month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// DatePtr builds an optional effective-end date.
func DatePtr(year, month, day int) *datatypes.Date {
	d := Date(year, month, day)
	return &d
}

// SeasonTotalBuilder creates player season totals rows with a builder pattern
type SeasonTotalBuilder struct {
	row domain.PlayerSeasonTotal
}

// NewSeasonTotal starts a totals row with the required natural key fields.
func NewSeasonTotal(brefID string, seasonYear int, teamAbbrev string) *SeasonTotalBuilder {
	return &SeasonTotalBuilder{row: domain.PlayerSeasonTotal{
		PlayerBrefID: brefID,
		SeasonYear:   seasonYear,
		TeamAbbrev:   teamAbbrev,
	}}
}

func (b *SeasonTotalBuilder) WithName(name string) *SeasonTotalBuilder {
	b.row.PlayerName = &name
	return b
}

func (b *SeasonTotalBuilder) WithGames(games int) *SeasonTotalBuilder {
	b.row.Games = &games
	return b
}

func (b *SeasonTotalBuilder) WithPoints(points int) *SeasonTotalBuilder {
	b.row.Points = &points
	return b
}

func (b *SeasonTotalBuilder) WithRebounds(rebounds int) *SeasonTotalBuilder {
	b.row.ReboundsTotal = &rebounds
	return b
}

func (b *SeasonTotalBuilder) WithAssists(assists int) *SeasonTotalBuilder {
	b.row.Assists = &assists
	return b
}

func (b *SeasonTotalBuilder) WithSteals(steals int) *SeasonTotalBuilder {
	b.row.Steals = &steals
	return b
}

func (b *SeasonTotalBuilder) WithBlocks(blocks int) *SeasonTotalBuilder {
	b.row.Blocks = &blocks
	return b
}

// Row returns the built row without persisting it.
func (b *SeasonTotalBuilder) Row() domain.PlayerSeasonTotal {
	return b.row
}

// Build inserts the row and returns it.
func (b *SeasonTotalBuilder) Build(t *testing.T, db *gorm.DB) domain.PlayerSeasonTotal {
	t.Helper()
	if err := db.Create(&b.row).Error; err != nil {
		t.Fatalf("failed to create season total: %v", err)
	}
	return b.row
}

// TeamHistoryBuilder creates team identity rows
type TeamHistoryBuilder struct {
	row domain.TeamHistory
}

func NewTeamHistory(id int, teamID int64, abbrev string) *TeamHistoryBuilder {
	return &TeamHistoryBuilder{row: domain.TeamHistory{
		TeamHistoryID:  id,
		TeamID:         teamID,
		Abbreviation:   &abbrev,
		City:           "Test City",
		Nickname:       "Testers",
		EffectiveStart: Date(1980, 7, 1),
	}}
}

func (b *TeamHistoryBuilder) Active() *TeamHistoryBuilder {
	b.row.IsActive = true
	return b
}

func (b *TeamHistoryBuilder) WithEra(start datatypes.Date, end *datatypes.Date) *TeamHistoryBuilder {
	b.row.EffectiveStart = start
	b.row.EffectiveEnd = end
	return b
}

func (b *TeamHistoryBuilder) WithIdentity(city, nickname string) *TeamHistoryBuilder {
	b.row.City = city
	b.row.Nickname = nickname
	return b
}

func (b *TeamHistoryBuilder) Row() domain.TeamHistory {
	return b.row
}

func (b *TeamHistoryBuilder) Build(t *testing.T, db *gorm.DB) domain.TeamHistory {
	t.Helper()
	if err := db.Create(&b.row).Error; err != nil {
		t.Fatalf("failed to create team history: %v", err)
	}
	return b.row
}
