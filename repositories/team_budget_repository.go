package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Dosada05/league-manager/models"
)

var (
	ErrTeamBudgetNotFound            = errors.New("team budget not found")
	ErrTeamBudgetConflict            = errors.New("team budget already exists for this championship")
	ErrTeamBudgetChampionshipInvalid = errors.New("team budget championship conflict or invalid")
)

type postgresTeamBudgetRepository struct {
	exec SQLExecutor
}

func NewPostgresTeamBudgetRepository(exec SQLExecutor) TeamBudgetRepository {
	return &postgresTeamBudgetRepository{exec: exec}
}

func (r *postgresTeamBudgetRepository) Create(ctx context.Context, b *models.TeamBudget) error {
	query := `
		INSERT INTO team_budgets (championship_id, team_id, team_name, budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}

	err := r.exec.QueryRowContext(ctx, query,
		b.ChampionshipID, b.TeamID, b.TeamName, b.Budget, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		switch pqErrorCode(err) {
		case pqUniqueViolation:
			return ErrTeamBudgetConflict
		case pqForeignKeyViolation:
			return ErrTeamBudgetChampionshipInvalid
		}
		return err
	}
	return nil
}

func (r *postgresTeamBudgetRepository) GetByChampionshipAndTeam(ctx context.Context, championshipID int, teamID string) (*models.TeamBudget, error) {
	query := `
		SELECT id, championship_id, team_id, team_name, budget, created_at, updated_at
		FROM team_budgets
		WHERE championship_id = $1 AND team_id = $2`

	var b models.TeamBudget
	err := r.exec.QueryRowContext(ctx, query, championshipID, teamID).Scan(
		&b.ID, &b.ChampionshipID, &b.TeamID, &b.TeamName, &b.Budget, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *postgresTeamBudgetRepository) DeleteByChampionship(ctx context.Context, championshipID int) error {
	_, err := r.exec.ExecContext(ctx, `DELETE FROM team_budgets WHERE championship_id = $1`, championshipID)
	return err
}
