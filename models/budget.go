package models

import "time"

// TeamBudget is the money a club holds within one championship.
type TeamBudget struct {
	ID             int       `json:"id" db:"id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	TeamID         string    `json:"team_id" db:"team_id"`
	TeamName       string    `json:"team_name" db:"team_name"`
	Budget         int64     `json:"budget" db:"budget"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func (b *TeamBudget) Clone() *TeamBudget {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}
