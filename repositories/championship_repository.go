package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Dosada05/league-manager/models"
)

var (
	ErrChampionshipNotFound = errors.New("championship not found")
	ErrChampionshipConflict = errors.New("championship already exists for this user and league")
)

type postgresChampionshipRepository struct {
	exec SQLExecutor
}

func NewPostgresChampionshipRepository(exec SQLExecutor) ChampionshipRepository {
	return &postgresChampionshipRepository{exec: exec}
}

const championshipColumns = `id, user_id, league_id, user_team_id, name, season, current_round, total_rounds, created_at, updated_at`

func (r *postgresChampionshipRepository) Create(ctx context.Context, c *models.Championship) error {
	query := `
		INSERT INTO championships
			(user_id, league_id, user_team_id, name, season, current_round, total_rounds, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}

	err := r.exec.QueryRowContext(ctx, query,
		c.UserID, c.LeagueID, c.UserTeamID, c.Name, c.Season, c.CurrentRound, c.TotalRounds, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if pqErrorCode(err) == pqUniqueViolation {
			return ErrChampionshipConflict
		}
		return err
	}
	return nil
}

func (r *postgresChampionshipRepository) scanChampionship(row interface{ Scan(...interface{}) error }) (*models.Championship, error) {
	var c models.Championship
	err := row.Scan(
		&c.ID, &c.UserID, &c.LeagueID, &c.UserTeamID, &c.Name, &c.Season,
		&c.CurrentRound, &c.TotalRounds, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships WHERE id = $1`
	return r.scanChampionship(r.exec.QueryRowContext(ctx, query, id))
}

func (r *postgresChampionshipRepository) GetByIDForUpdate(ctx context.Context, id int) (*models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships WHERE id = $1 FOR UPDATE`
	return r.scanChampionship(r.exec.QueryRowContext(ctx, query, id))
}

func (r *postgresChampionshipRepository) GetByUserAndLeague(ctx context.Context, userID int, leagueID string) (*models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships WHERE user_id = $1 AND league_id = $2`
	return r.scanChampionship(r.exec.QueryRowContext(ctx, query, userID, leagueID))
}

func (r *postgresChampionshipRepository) UpdateCurrentRound(ctx context.Context, id int, round int, updatedAt time.Time) error {
	query := `UPDATE championships SET current_round = $1, updated_at = $2 WHERE id = $3`
	result, err := r.exec.ExecContext(ctx, query, round, updatedAt, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) Delete(ctx context.Context, id int) error {
	result, err := r.exec.ExecContext(ctx, `DELETE FROM championships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}
