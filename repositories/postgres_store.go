package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

const defaultTxAttempts = 3

type postgresStore struct {
	db       *sql.DB
	logger   *slog.Logger
	attempts int
}

func NewPostgresStore(db *sql.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &postgresStore{db: db, logger: logger, attempts: defaultTxAttempts}
}

func newPostgresRepositories(exec SQLExecutor) Repositories {
	return Repositories{
		Championships: NewPostgresChampionshipRepository(exec),
		Fixtures:      NewPostgresFixtureRepository(exec),
		Standings:     NewPostgresStandingRepository(exec),
		TeamBudgets:   NewPostgresTeamBudgetRepository(exec),
	}
}

func (s *postgresStore) Repositories() Repositories {
	return newPostgresRepositories(s.db)
}

// WithinTx replays fn from the start when PostgreSQL reports a serialization
// failure or deadlock, so fn must not keep state between calls.
func (s *postgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	var err error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
		s.logger.WarnContext(ctx, "retrying transaction after transient failure",
			slog.Int("attempt", attempt), slog.Any("error", err))
	}
	return fmt.Errorf("transaction failed after %d attempts: %w", s.attempts, err)
}

func (s *postgresStore) runTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) (txErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.ErrorContext(ctx, "rollback failed", slog.Any("error", rbErr), slog.Any("cause", txErr))
				txErr = fmt.Errorf("transaction processing error: %w (rollback also failed: %v)", txErr, rbErr)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			txErr = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	return fn(ctx, newPostgresRepositories(tx))
}
