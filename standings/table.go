// Package standings holds the league table rules: the point system, invariant
// checks, ranking, simulated scores and recent form.
package standings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Dosada05/league-manager/models"
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

var (
	ErrNegativeScore     = errors.New("score cannot be negative")
	ErrInvariantBroken   = errors.New("standing invariant violated")
	ErrSameStandingTwice = errors.New("home and away standing are the same row")
)

// NewTable returns one zero-valued row per team, positioned in input order.
func NewTable(championshipID int, teams []models.Team) []*models.Standing {
	table := make([]*models.Standing, 0, len(teams))
	for i, t := range teams {
		table = append(table, &models.Standing{
			ChampionshipID: championshipID,
			TeamID:         t.ID,
			TeamName:       t.Name,
			LogoPath:       t.LogoPath,
			Position:       i + 1,
		})
	}
	return table
}

// ApplyResult adds a finished match to both rows. Rows are left untouched on error.
func ApplyResult(home, away *models.Standing, homeGoals, awayGoals int) error {
	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("%w: %d-%d", ErrNegativeScore, homeGoals, awayGoals)
	}
	if home == nil || away == nil {
		return fmt.Errorf("%w: missing standing row", ErrInvariantBroken)
	}
	if home == away {
		return ErrSameStandingTwice
	}

	h, a := *home, *away
	addMatch(&h, homeGoals, awayGoals)
	addMatch(&a, awayGoals, homeGoals)

	if err := Validate(&h); err != nil {
		return err
	}
	if err := Validate(&a); err != nil {
		return err
	}
	*home, *away = h, a
	return nil
}

func addMatch(s *models.Standing, scored, conceded int) {
	s.Played++
	switch {
	case scored > conceded:
		s.Wins++
		s.Points += PointsWin
	case scored == conceded:
		s.Draws++
		s.Points += PointsDraw
	default:
		s.Losses++
		s.Points += PointsLoss
	}
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
}

// Validate checks the derived fields of a row.
func Validate(s *models.Standing) error {
	switch {
	case s.Played < 0 || s.Wins < 0 || s.Draws < 0 || s.Losses < 0 || s.Points < 0 ||
		s.GoalsFor < 0 || s.GoalsAgainst < 0:
		return fmt.Errorf("%w: team %s has negative counters", ErrInvariantBroken, s.TeamID)
	case s.Played != s.Wins+s.Draws+s.Losses:
		return fmt.Errorf("%w: team %s played %d != %d+%d+%d", ErrInvariantBroken, s.TeamID, s.Played, s.Wins, s.Draws, s.Losses)
	case s.GoalDifference != s.GoalsFor-s.GoalsAgainst:
		return fmt.Errorf("%w: team %s goal difference %d != %d-%d", ErrInvariantBroken, s.TeamID, s.GoalDifference, s.GoalsFor, s.GoalsAgainst)
	case s.Points != s.Wins*PointsWin+s.Draws*PointsDraw:
		return fmt.Errorf("%w: team %s has %d points for %dW %dD", ErrInvariantBroken, s.TeamID, s.Points, s.Wins, s.Draws)
	}
	return nil
}

// Less orders rows by points, goal difference and goals scored (all descending).
// Remaining ties fall back to team name and then team id so the order is stable.
func Less(a, b *models.Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	if a.TeamName != b.TeamName {
		return a.TeamName < b.TeamName
	}
	return a.TeamID < b.TeamID
}

// Rank sorts the table in place and renumbers Position from 1.
func Rank(table []*models.Standing) {
	sort.SliceStable(table, func(i, j int) bool {
		return Less(table[i], table[j])
	})
	for i, s := range table {
		s.Position = i + 1
	}
}

// Leader returns the row at position 1, or nil for an empty table.
func Leader(table []*models.Standing) *models.Standing {
	for _, s := range table {
		if s.Position == 1 {
			return s
		}
	}
	return nil
}
