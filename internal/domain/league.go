package domain

type League struct {
	LeagueID   int    `json:"league_id" gorm:"primaryKey"`
	LeagueCode string `json:"league_code" gorm:"not null"` // e.g., "NBA"
	LeagueName string `json:"league_name" gorm:"not null"`
}

type Season struct {
	SeasonID   int     `json:"season_id" gorm:"primaryKey"`
	LeagueID   int     `json:"league_id" gorm:"not null;uniqueIndex:idx_seasons_league_year"`
	SeasonYear int     `json:"season_year" gorm:"not null;uniqueIndex:idx_seasons_league_year;index:idx_seasons_year"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

type Arena struct {
	ArenaID   int     `json:"arena_id" gorm:"primaryKey"`
	ArenaName string  `json:"arena_name" gorm:"not null"`
	City      *string `json:"city,omitempty"`
}
