package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-manager/models"
)

var (
	ErrStandingNotFound            = errors.New("standing not found")
	ErrStandingConflict            = errors.New("standing already exists for this team")
	ErrStandingChampionshipInvalid = errors.New("standing championship conflict or invalid")
)

type postgresStandingRepository struct {
	exec SQLExecutor
}

func NewPostgresStandingRepository(exec SQLExecutor) StandingRepository {
	return &postgresStandingRepository{exec: exec}
}

const standingColumns = `id, championship_id, team_id, team_name, logo, points, played, wins, draws, losses,
		goals_for, goals_against, goal_difference, position, updated_at`

func (r *postgresStandingRepository) BatchCreate(ctx context.Context, standings []*models.Standing) error {
	if len(standings) == 0 {
		return nil
	}

	stmt, err := r.exec.PrepareContext(ctx, `
		INSERT INTO standings
			(championship_id, team_id, team_name, logo, points, played, wins, draws, losses,
			 goals_for, goals_against, goal_difference, position, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`)
	if err != nil {
		return fmt.Errorf("BatchCreate failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range standings {
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = time.Now()
		}
		err := stmt.QueryRowContext(ctx,
			s.ChampionshipID, s.TeamID, s.TeamName, s.LogoPath, s.Points, s.Played, s.Wins, s.Draws, s.Losses,
			s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Position, s.UpdatedAt,
		).Scan(&s.ID)
		if err != nil {
			switch pqErrorCode(err) {
			case pqUniqueViolation:
				return ErrStandingConflict
			case pqForeignKeyViolation:
				return ErrStandingChampionshipInvalid
			}
			return fmt.Errorf("BatchCreate failed for team %s: %w", s.TeamID, err)
		}
	}
	return nil
}

func (r *postgresStandingRepository) scanStanding(rowScanner interface{ Scan(...interface{}) error }) (*models.Standing, error) {
	var s models.Standing
	err := rowScanner.Scan(
		&s.ID, &s.ChampionshipID, &s.TeamID, &s.TeamName, &s.LogoPath, &s.Points, &s.Played,
		&s.Wins, &s.Draws, &s.Losses, &s.GoalsFor, &s.GoalsAgainst,
		&s.GoalDifference, &s.Position, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStandingNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresStandingRepository) GetByChampionshipAndTeam(ctx context.Context, championshipID int, teamID string) (*models.Standing, error) {
	query := `SELECT ` + standingColumns + ` FROM standings WHERE championship_id = $1 AND team_id = $2`
	return r.scanStanding(r.exec.QueryRowContext(ctx, query, championshipID, teamID))
}

func (r *postgresStandingRepository) ListByChampionship(ctx context.Context, championshipID int, sortByRank bool) ([]*models.Standing, error) {
	query := `SELECT ` + standingColumns + ` FROM standings WHERE championship_id = $1`
	if sortByRank {
		// совпадает с индексом idx_standings_ranking
		query += ` ORDER BY points DESC, goal_difference DESC, goals_for DESC, team_name ASC, team_id ASC`
	} else {
		query += ` ORDER BY team_name ASC, team_id ASC`
	}

	rows, err := r.exec.QueryContext(ctx, query, championshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := make([]*models.Standing, 0)
	for rows.Next() {
		s, errScan := r.scanStanding(rows)
		if errScan != nil {
			return nil, errScan
		}
		standings = append(standings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return standings, nil
}

func (r *postgresStandingRepository) Update(ctx context.Context, s *models.Standing) error {
	query := `
		UPDATE standings SET
			points = $1, played = $2, wins = $3, draws = $4, losses = $5,
			goals_for = $6, goals_against = $7, goal_difference = $8, position = $9, updated_at = $10
		WHERE id = $11`
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	result, err := r.exec.ExecContext(ctx, query,
		s.Points, s.Played, s.Wins, s.Draws, s.Losses,
		s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Position, s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStandingNotFound)
}

func (r *postgresStandingRepository) DeleteByChampionship(ctx context.Context, championshipID int) error {
	_, err := r.exec.ExecContext(ctx, `DELETE FROM standings WHERE championship_id = $1`, championshipID)
	return err
}
