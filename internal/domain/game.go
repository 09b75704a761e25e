package domain

type Game struct {
	GameID     string `json:"game_id" gorm:"primaryKey"`
	LeagueID   int    `json:"league_id" gorm:"not null"`
	SeasonID   int    `json:"season_id" gorm:"not null;index:idx_games_season"`
	SeasonType string `json:"season_type" gorm:"not null"` // "regular" / "playoffs"
	GameDate   string `json:"game_date" gorm:"not null"`
	HomeTeamID int64  `json:"home_team_id" gorm:"not null;index:idx_games_home"`
	AwayTeamID int64  `json:"away_team_id" gorm:"not null;index:idx_games_away"`
	HomePoints *int   `json:"home_points,omitempty"`
	AwayPoints *int   `json:"away_points,omitempty"`
	Attendance *int   `json:"attendance,omitempty"`
	ArenaID    *int   `json:"arena_id,omitempty"`
}

type PlayerBoxscore struct {
	GameID        string   `json:"game_id" gorm:"primaryKey"`
	PlayerID      int64    `json:"player_id" gorm:"primaryKey;autoIncrement:false;index:idx_player_box_player"`
	TeamID        int64    `json:"team_id" gorm:"not null"`
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
	PF            *int     `json:"pf,omitempty"`
	Turnovers     *int     `json:"turnovers,omitempty"`
	PlusMinus     *int     `json:"plus_minus,omitempty"`
}

type TeamBoxscore struct {
	GameID        string   `json:"game_id" gorm:"primaryKey"`
	TeamID        int64    `json:"team_id" gorm:"primaryKey;autoIncrement:false;index:idx_team_box_team"`
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
