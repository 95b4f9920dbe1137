package models

import "time"

// Championship представляет сезон лиги одного пользователя.
// Для пары (user, league) существует не более одного чемпионата.
type Championship struct {
	ID           int       `json:"id" db:"id"`
	UserID       int       `json:"user_id" db:"user_id"`
	LeagueID     string    `json:"league_id" db:"league_id"`
	UserTeamID   string    `json:"user_team_id" db:"user_team_id"`
	Name         string    `json:"name" db:"name"`
	Season       string    `json:"season" db:"season"`
	CurrentRound int       `json:"current_round" db:"current_round"`
	TotalRounds  int       `json:"total_rounds" db:"total_rounds"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Clone returns a copy that does not share memory with c.
func (c *Championship) Clone() *Championship {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
