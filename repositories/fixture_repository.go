package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/league-manager/models"
)

var (
	ErrFixtureNotFound            = errors.New("fixture not found")
	ErrFixtureAlreadyPlayed       = errors.New("fixture already played")
	ErrFixtureChampionshipInvalid = errors.New("fixture championship conflict or invalid")
)

type postgresFixtureRepository struct {
	exec SQLExecutor
}

func NewPostgresFixtureRepository(exec SQLExecutor) FixtureRepository {
	return &postgresFixtureRepository{exec: exec}
}

const fixtureColumns = `id, championship_id, round, home_team_id, home_team_name, away_team_id, away_team_name,
		home_score, away_score, is_played, played_at`

func (r *postgresFixtureRepository) BatchCreate(ctx context.Context, fixtures []*models.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	stmt, err := r.exec.PrepareContext(ctx, `
		INSERT INTO fixtures
			(championship_id, round, home_team_id, home_team_name, away_team_id, away_team_name, home_score, away_score, is_played)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`)
	if err != nil {
		return fmt.Errorf("BatchCreate failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, f := range fixtures {
		err := stmt.QueryRowContext(ctx,
			f.ChampionshipID, f.Round, f.HomeTeamID, f.HomeTeamName, f.AwayTeamID, f.AwayTeamName,
			f.HomeScore, f.AwayScore, f.IsPlayed,
		).Scan(&f.ID)
		if err != nil {
			if pqErrorCode(err) == pqForeignKeyViolation {
				return ErrFixtureChampionshipInvalid
			}
			return fmt.Errorf("BatchCreate failed for round %d %s-%s: %w", f.Round, f.HomeTeamID, f.AwayTeamID, err)
		}
	}
	return nil
}

func scanFixture(row interface{ Scan(...interface{}) error }) (*models.Fixture, error) {
	var f models.Fixture
	err := row.Scan(
		&f.ID, &f.ChampionshipID, &f.Round, &f.HomeTeamID, &f.HomeTeamName, &f.AwayTeamID, &f.AwayTeamName,
		&f.HomeScore, &f.AwayScore, &f.IsPlayed, &f.PlayedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *postgresFixtureRepository) GetByID(ctx context.Context, id int) (*models.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures WHERE id = $1`
	f, err := scanFixture(r.exec.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *postgresFixtureRepository) List(ctx context.Context, championshipID int, filter FixtureFilter) ([]*models.Fixture, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + fixtureColumns + ` FROM fixtures WHERE championship_id = $1`)

	args := []interface{}{championshipID}
	placeholderIndex := 2

	if filter.Round != nil {
		queryBuilder.WriteString(" AND round = $" + strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Round)
		placeholderIndex++
	}
	if filter.IsPlayed != nil {
		queryBuilder.WriteString(" AND is_played = $" + strconv.Itoa(placeholderIndex))
		args = append(args, *filter.IsPlayed)
		placeholderIndex++
	}
	if filter.TeamID != "" {
		p := strconv.Itoa(placeholderIndex)
		queryBuilder.WriteString(" AND (home_team_id = $" + p + " OR away_team_id = $" + p + ")")
		args = append(args, filter.TeamID)
		placeholderIndex++
	}

	if filter.NewestFirst {
		queryBuilder.WriteString(" ORDER BY round DESC, id DESC")
	} else {
		queryBuilder.WriteString(" ORDER BY round ASC, id ASC")
	}
	if filter.Limit > 0 {
		queryBuilder.WriteString(" LIMIT $" + strconv.Itoa(placeholderIndex))
		args = append(args, filter.Limit)
	}

	rows, err := r.exec.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fixtures := make([]*models.Fixture, 0)
	for rows.Next() {
		f, scanErr := scanFixture(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		fixtures = append(fixtures, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return fixtures, nil
}

func (r *postgresFixtureRepository) CountUnplayed(ctx context.Context, championshipID int) (int, error) {
	var count int
	err := r.exec.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM fixtures WHERE championship_id = $1 AND is_played = FALSE`, championshipID,
	).Scan(&count)
	return count, err
}

func (r *postgresFixtureRepository) RecordResult(ctx context.Context, id int, homeScore, awayScore int, playedAt time.Time) error {
	query := `
		UPDATE fixtures
		SET home_score = $1, away_score = $2, is_played = TRUE, played_at = $3
		WHERE id = $4 AND is_played = FALSE`
	result, err := r.exec.ExecContext(ctx, query, homeScore, awayScore, playedAt, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrFixtureAlreadyPlayed)
}

func (r *postgresFixtureRepository) DeleteByChampionship(ctx context.Context, championshipID int) error {
	_, err := r.exec.ExecContext(ctx, `DELETE FROM fixtures WHERE championship_id = $1`, championshipID)
	return err
}
