package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dosada05/league-manager/models"
)

type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type ChampionshipRepository interface {
	Create(ctx context.Context, championship *models.Championship) error
	GetByID(ctx context.Context, id int) (*models.Championship, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int) (*models.Championship, error)
	GetByUserAndLeague(ctx context.Context, userID int, leagueID string) (*models.Championship, error)
	UpdateCurrentRound(ctx context.Context, id int, round int, updatedAt time.Time) error
	Delete(ctx context.Context, id int) error
}

// FixtureFilter narrows FixtureRepository.List. Zero value lists every fixture
// ordered by round ascending.
type FixtureFilter struct {
	Round       *int
	IsPlayed    *bool
	TeamID      string
	NewestFirst bool
	Limit       int
}

type FixtureRepository interface {
	BatchCreate(ctx context.Context, fixtures []*models.Fixture) error
	GetByID(ctx context.Context, id int) (*models.Fixture, error)
	List(ctx context.Context, championshipID int, filter FixtureFilter) ([]*models.Fixture, error)
	CountUnplayed(ctx context.Context, championshipID int) (int, error)
	// RecordResult fails with ErrFixtureAlreadyPlayed when the fixture is not pending.
	RecordResult(ctx context.Context, id int, homeScore, awayScore int, playedAt time.Time) error
	DeleteByChampionship(ctx context.Context, championshipID int) error
}

type StandingRepository interface {
	BatchCreate(ctx context.Context, standings []*models.Standing) error
	GetByChampionshipAndTeam(ctx context.Context, championshipID int, teamID string) (*models.Standing, error)
	ListByChampionship(ctx context.Context, championshipID int, sortByRank bool) ([]*models.Standing, error)
	Update(ctx context.Context, standing *models.Standing) error
	DeleteByChampionship(ctx context.Context, championshipID int) error
}

type TeamBudgetRepository interface {
	// Create fails with ErrTeamBudgetConflict when the club already has a row in the championship.
	Create(ctx context.Context, budget *models.TeamBudget) error
	GetByChampionshipAndTeam(ctx context.Context, championshipID int, teamID string) (*models.TeamBudget, error)
	DeleteByChampionship(ctx context.Context, championshipID int) error
}

// Repositories is the set of repositories bound to one executor.
type Repositories struct {
	Championships ChampionshipRepository
	Fixtures      FixtureRepository
	Standings     StandingRepository
	TeamBudgets   TeamBudgetRepository
}

// Store is the storage port used by services. WithinTx runs fn as one unit of
// work: either every write made through repos is kept or none is.
type Store interface {
	Repositories() Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

func boolPtr(b bool) *bool { return &b }

// Played and Unplayed are shorthands for FixtureFilter.IsPlayed.
var (
	Played   = boolPtr(true)
	Unplayed = boolPtr(false)
)
