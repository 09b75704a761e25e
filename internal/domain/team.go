package domain

import "gorm.io/datatypes"

type Team struct {
	TeamID        int64   `json:"team_id" gorm:"primaryKey;autoIncrement:false"`
	LeagueID      int     `json:"league_id" gorm:"not null"`
	FranchiseCode *string `json:"franchise_code,omitempty"`
	NBAAPITeamID  *int64  `json:"nba_api_team_id,omitempty"`
}

// TeamHistory is one effective-dated identity of a franchise. A franchise that
// relocated or renamed carries one row per era; at most one row per team_id
// should be active at a time, but the read path tolerates violations.
type TeamHistory struct {
	TeamHistoryID  int             `json:"team_history_id" gorm:"primaryKey;autoIncrement:false"`
	TeamID         int64           `json:"team_id" gorm:"not null;index:idx_team_history_team"`
	EffectiveStart datatypes.Date  `json:"effective_start" gorm:"not null"`
	EffectiveEnd   *datatypes.Date `json:"effective_end,omitempty"` // nil = still effective
	City           string          `json:"city" gorm:"not null"`
	Nickname       string          `json:"nickname" gorm:"not null"`
	Abbreviation   *string         `json:"abbreviation,omitempty" gorm:"index:idx_team_history_abbrev"`
	IsActive       bool            `json:"is_active" gorm:"index:idx_team_history_active"`
}
