package models

import "time"

// Fixture is a single scheduled match of a championship round.
// Scores stay nil until the fixture is played; a fixture is played exactly once.
type Fixture struct {
	ID             int        `json:"id" db:"id"`
	ChampionshipID int        `json:"championship_id" db:"championship_id"`
	Round          int        `json:"round" db:"round"`
	HomeTeamID     string     `json:"home_team_id" db:"home_team_id"`
	HomeTeamName   string     `json:"home_team_name" db:"home_team_name"`
	AwayTeamID     string     `json:"away_team_id" db:"away_team_id"`
	AwayTeamName   string     `json:"away_team_name" db:"away_team_name"`
	HomeScore      *int       `json:"home_score" db:"home_score"`
	AwayScore      *int       `json:"away_score" db:"away_score"`
	IsPlayed       bool       `json:"is_played" db:"is_played"`
	PlayedAt       *time.Time `json:"played_at,omitempty" db:"played_at"`
}

// Involves reports whether teamID plays in the fixture.
func (f *Fixture) Involves(teamID string) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

func (f *Fixture) Clone() *Fixture {
	if f == nil {
		return nil
	}
	cp := *f
	if f.HomeScore != nil {
		v := *f.HomeScore
		cp.HomeScore = &v
	}
	if f.AwayScore != nil {
		v := *f.AwayScore
		cp.AwayScore = &v
	}
	if f.PlayedAt != nil {
		v := *f.PlayedAt
		cp.PlayedAt = &v
	}
	return &cp
}

// ResultCode is a match outcome from one team's perspective.
type ResultCode string

const (
	ResultWin       ResultCode = "W"
	ResultDraw      ResultCode = "D"
	ResultLoss      ResultCode = "L"
	ResultNotPlayed ResultCode = "-"
)
