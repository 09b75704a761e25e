package domain

// PlayerSeasonTotal is one player's counting stats for one season with one
// team. A player traded mid-season has one row per team for that season.
// Optional stats are pointers: nil means the source never recorded the value,
// which is distinct from an explicit zero. Games is also a pointer, but for a
// different reason: the column is required, and decoding it through a pointer
// lets the ingest path tell an omitted games count apart from a real zero and
// reject the former. Stored rows always carry a value.
type PlayerSeasonTotal struct {
	SeasonYear    int      `json:"season_year" gorm:"primaryKey;autoIncrement:false;index:idx_pst_season"`
	PlayerBrefID  string   `json:"player_bref_id" gorm:"primaryKey"`
	TeamAbbrev    string   `json:"team_abbrev" gorm:"primaryKey"`
	PlayerName    *string  `json:"player_name,omitempty"`
	Games         *int     `json:"games" gorm:"not null"`
	GamesStarted  *int     `json:"games_started,omitempty"`
	Minutes       *float64 `json:"minutes,omitempty"`
	Points        *int     `json:"points,omitempty"`
	Assists       *int     `json:"assists,omitempty"`
	ReboundsTotal *int     `json:"rebounds_total,omitempty"`
	Steals        *int     `json:"steals,omitempty"`
	Blocks        *int     `json:"blocks,omitempty"`
	FGM           *int     `json:"fgm,omitempty"`
	FGA           *int     `json:"fga,omitempty"`
	FG3M          *int     `json:"fg3m,omitempty"`
	FG3A          *int     `json:"fg3a,omitempty"`
	FTM           *int     `json:"ftm,omitempty"`
	FTA           *int     `json:"fta,omitempty"`
	Turnovers     *int     `json:"turnovers,omitempty"`
	PF            *int     `json:"pf,omitempty"`
}

type PlayerSeasonAdvanced struct {
	SeasonYear   int      `json:"season_year" gorm:"primaryKey;autoIncrement:false;index:idx_psa_season"`
	PlayerBrefID string   `json:"player_bref_id" gorm:"primaryKey"`
	TeamAbbrev   string   `json:"team_abbrev" gorm:"primaryKey"`
	Minutes      *float64 `json:"minutes,omitempty"`
	PER          *float64 `json:"per,omitempty"`
	TSPercent    *float64 `json:"ts_percent,omitempty"`
	USGPercent   *float64 `json:"usg_percent,omitempty"`
	OWS          *float64 `json:"ows,omitempty"`
	DWS          *float64 `json:"dws,omitempty"`
	WS           *float64 `json:"ws,omitempty"`
	BPM          *float64 `json:"bpm,omitempty"`
	VORP         *float64 `json:"vorp,omitempty"`
}

// TeamSeasonTotal mirrors PlayerSeasonTotal at the franchise level, including
// the pointer-typed required Games.
type TeamSeasonTotal struct {
	SeasonYear    int      `json:"season_year" gorm:"primaryKey;autoIncrement:false;index:idx_tst_season"`
	TeamAbbrev    string   `json:"team_abbrev" gorm:"primaryKey"`
	Games         *int     `json:"games" gorm:"not null"`
	Minutes       *float64 `json:"minutes,omitempty"`
	Points        *int     `json:"points,omitempty"`
	Assists       *int     `json:"assists,omitempty"`
	ReboundsTotal *int     `json:"rebounds_total,omitempty"`
	FGM           *int     `json:"fgm,omitempty"`
	FGA           *int     `json:"fga,omitempty"`
	FG3M          *int     `json:"fg3m,omitempty"`
	FG3A          *int     `json:"fg3a,omitempty"`
	FTM           *int     `json:"ftm,omitempty"`
	FTA           *int     `json:"fta,omitempty"`
	Turnovers     *int     `json:"turnovers,omitempty"`
	PF            *int     `json:"pf,omitempty"`
}

type TeamSeasonAdvanced struct {
	SeasonYear int      `json:"season_year" gorm:"primaryKey;autoIncrement:false;index:idx_tsa_season"`
	TeamAbbrev string   `json:"team_abbrev" gorm:"primaryKey"`
	Wins       int      `json:"wins" gorm:"not null"`
	Losses     int      `json:"losses" gorm:"not null"`
	SRS        *float64 `json:"srs,omitempty"`
	Pace       *float64 `json:"pace,omitempty"`
	OffRtg     *float64 `json:"off_rtg,omitempty"`
	DefRtg     *float64 `json:"def_rtg,omitempty"`
	NetRtg     *float64 `json:"net_rtg,omitempty"`
}

type Standing struct {
	SeasonYear int    `json:"season_year" gorm:"primaryKey;autoIncrement:false;index:idx_standings_season"`
	TeamAbbrev string `json:"team_abbrev" gorm:"primaryKey"`
	Wins       int    `json:"wins" gorm:"not null"`
	Losses     int    `json:"losses" gorm:"not null"`
	Playoffs   bool   `json:"playoffs"`
}
