package brackets

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/league-manager/models"
)

var (
	ErrNotEnoughTeams     = errors.New("at least two teams are required")
	ErrOddTeamCount       = errors.New("team count must be even")
	ErrDuplicateTeam      = errors.New("team listed more than once")
	ErrUserTeamNotInGroup = errors.New("user team is not part of the league")
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "DoubleRoundRobin"
}

// TotalRounds is the number of rounds of a double round-robin for teamCount teams.
func TotalRounds(teamCount int) int {
	if teamCount < 2 {
		return 0
	}
	return 2 * (teamCount - 1)
}

// GenerateFixtures builds a double round-robin with the circle method.
// Team at seat 0 stays fixed, the rest rotate one seat per round. The second
// turn mirrors the first with home and away swapped, shifted by T-1 rounds.
func (g *RoundRobinGenerator) GenerateFixtures(ctx context.Context, params GenerateFixturesParams) ([]*models.Fixture, error) {
	teams := params.Teams
	if err := validateTeams(teams, params.UserTeamID); err != nil {
		return nil, fmt.Errorf("RoundRobinGenerator: %w", err)
	}

	championshipID := 0
	if params.Championship != nil {
		championshipID = params.Championship.ID
	}

	n := len(teams)
	roundsPerTurn := n - 1
	seats := make([]models.Team, n)
	copy(seats, teams)

	firstTurn := make([]*models.Fixture, 0, n*roundsPerTurn/2)
	for round := 1; round <= roundsPerTurn; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < n/2; i++ {
			home, away := seats[i], seats[n-1-i]
			// fixed seat alternates venue so it does not host a whole turn in a row
			if i == 0 && round%2 == 0 {
				home, away = away, home
			}
			firstTurn = append(firstTurn, newFixture(championshipID, round, home, away))
		}
		rotate(seats)
	}

	fixtures := make([]*models.Fixture, 0, 2*len(firstTurn))
	fixtures = append(fixtures, firstTurn...)
	for _, f := range firstTurn {
		fixtures = append(fixtures, &models.Fixture{
			ChampionshipID: championshipID,
			Round:          f.Round + roundsPerTurn,
			HomeTeamID:     f.AwayTeamID,
			HomeTeamName:   f.AwayTeamName,
			AwayTeamID:     f.HomeTeamID,
			AwayTeamName:   f.HomeTeamName,
		})
	}

	return fixtures, nil
}

func validateTeams(teams []models.Team, userTeamID string) error {
	if len(teams) < 2 {
		return fmt.Errorf("%w (found %d)", ErrNotEnoughTeams, len(teams))
	}
	if len(teams)%2 != 0 {
		return fmt.Errorf("%w (found %d)", ErrOddTeamCount, len(teams))
	}

	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateTeam, t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	if userTeamID != "" {
		if _, ok := seen[userTeamID]; !ok {
			return fmt.Errorf("%w: %q", ErrUserTeamNotInGroup, userTeamID)
		}
	}
	return nil
}

// rotate shifts every seat except the first one position clockwise.
func rotate(seats []models.Team) {
	if len(seats) < 3 {
		return
	}
	last := seats[len(seats)-1]
	copy(seats[2:], seats[1:len(seats)-1])
	seats[1] = last
}

func newFixture(championshipID, round int, home, away models.Team) *models.Fixture {
	return &models.Fixture{
		ChampionshipID: championshipID,
		Round:          round,
		HomeTeamID:     home.ID,
		HomeTeamName:   home.Name,
		AwayTeamID:     away.ID,
		AwayTeamName:   away.Name,
	}
}
