package domain

type DraftPick struct {
	SeasonYear   int     `json:"season_year" gorm:"primaryKey;autoIncrement:false"`
	PickOverall  int     `json:"pick_overall" gorm:"primaryKey;autoIncrement:false"`
	RoundNumber  *int    `json:"round_number,omitempty"`
	PickInRound  *int    `json:"pick_in_round,omitempty"`
	TeamAbbrev   *string `json:"team_abbrev,omitempty" gorm:"index:idx_drafts_team"`
	PlayerBrefID *string `json:"player_bref_id,omitempty" gorm:"index:idx_drafts_player"`
	PlayerName   *string `json:"player_name,omitempty"`
	College      *string `json:"college,omitempty"`
}

type Award struct {
	AwardKey     string   `json:"award_key" gorm:"primaryKey"`
	AwardType    string   `json:"award_type" gorm:"not null;index:idx_awards_type_season,priority:1"`
	SeasonYear   int      `json:"season_year" gorm:"not null;index:idx_awards_type_season,priority:2;index:idx_awards_season"`
	PlayerBrefID *string  `json:"player_bref_id,omitempty" gorm:"index:idx_awards_player"`
	PlayerName   *string  `json:"player_name,omitempty"`
	TeamAbbrev   *string  `json:"team_abbrev,omitempty"`
	Rank         *int     `json:"rank,omitempty"`
	PointsWon    *float64 `json:"points_won,omitempty"`
	PointsMax    *float64 `json:"points_max,omitempty"`
	Share        *float64 `json:"share,omitempty"`
}

type Transaction struct {
	TransactionID string  `json:"transaction_id" gorm:"primaryKey"`
	SeasonYear    int     `json:"season_year" gorm:"not null;index:idx_transactions_season"`
	TeamAbbrev    *string `json:"team_abbrev,omitempty"`
	PlayerBrefID  *string `json:"player_bref_id,omitempty" gorm:"index:idx_transactions_player"`
	Details       string  `json:"details" gorm:"not null"`
}
