package domain

type Player struct {
	PlayerID       int64   `json:"player_id" gorm:"primaryKey;autoIncrement:false"`
	NBAAPIPersonID *int64  `json:"nba_api_person_id,omitempty"`
	FirstName      *string `json:"first_name,omitempty" gorm:"index:idx_players_name,priority:2"`
	LastName       *string `json:"last_name,omitempty" gorm:"index:idx_players_name,priority:1"`
	DisplayName    *string `json:"display_name,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty"`
	FromYear       *int    `json:"from_year,omitempty"`
	ToYear         *int    `json:"to_year,omitempty"`
}

type Coach struct {
	CoachID       string `json:"coach_id" gorm:"primaryKey"`
	NBAAPICoachID *int64 `json:"nba_api_coach_id,omitempty"`
	DisplayName   string `json:"display_name" gorm:"not null"`
}

type Referee struct {
	RefereeID   string `json:"referee_id" gorm:"primaryKey"`
	NBAAPIRefID *int64 `json:"nba_api_ref_id,omitempty"`
	DisplayName string `json:"display_name" gorm:"not null"`
}
