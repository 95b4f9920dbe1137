package models

import "time"

// Standing is one row of the championship table.
// Invariants: Played = Wins + Draws + Losses, GoalDifference = GoalsFor - GoalsAgainst.
type Standing struct {
	ID             int       `json:"id" db:"id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	TeamID         string    `json:"team_id" db:"team_id"`
	TeamName       string    `json:"team_name" db:"team_name"`
	LogoPath       string    `json:"logo,omitempty" db:"logo"`
	Points         int       `json:"points" db:"points"`
	Played         int       `json:"played" db:"played"`
	Wins           int       `json:"wins" db:"wins"`
	Draws          int       `json:"draws" db:"draws"`
	Losses         int       `json:"losses" db:"losses"`
	GoalsFor       int       `json:"goals_for" db:"goals_for"`
	GoalsAgainst   int       `json:"goals_against" db:"goals_against"`
	GoalDifference int       `json:"goal_difference" db:"goal_difference"`
	Position       int       `json:"position" db:"position"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func (s *Standing) Clone() *Standing {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
