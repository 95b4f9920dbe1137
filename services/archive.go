package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/league-manager/models"
	"github.com/Dosada05/league-manager/repositories"
	"github.com/Dosada05/league-manager/storage"
	"github.com/google/uuid"
)

const archiveContentType = "application/json"

// SeasonArchive is the JSON document uploaded to object storage.
type SeasonArchive struct {
	Championship *models.Championship `json:"championship"`
	Fixtures     []*models.Fixture    `json:"fixtures"`
	Standings    []*models.Standing   `json:"standings"`
	Budget       *models.TeamBudget   `json:"budget,omitempty"`
	Completed    bool                 `json:"completed"`
	Champion     *models.Standing     `json:"champion,omitempty"`
	UserWon      bool                 `json:"user_won"`
	ArchivedAt   time.Time            `json:"archived_at"`
}

func archiveKey(championship *models.Championship) string {
	return fmt.Sprintf("archives/%s/%d/%s.json", championship.LeagueID, championship.ID, uuid.NewString())
}

func (s *championshipService) ArchiveSeason(ctx context.Context, userID, championshipID int) (*storage.PutResult, error) {
	if s.archive == nil {
		return nil, ErrArchiveUnavailable
	}
	repos := s.store.Repositories()
	championship, err := s.loadOwned(ctx, repos, userID, championshipID)
	if err != nil {
		return nil, err
	}
	return s.archiveSnapshot(ctx, repos, championship)
}

func (s *championshipService) archiveSnapshot(ctx context.Context, repos repositories.Repositories, championship *models.Championship) (*storage.PutResult, error) {
	fixtures, err := repos.Fixtures.List(ctx, championship.ID, repositories.FixtureFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures for archive: %w", err)
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: championship %d", ErrSeasonNotStarted, championship.ID)
	}
	table, err := repos.Standings.ListByChampionship(ctx, championship.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings for archive: %w", err)
	}
	budget, err := repos.TeamBudgets.GetByChampionshipAndTeam(ctx, championship.ID, championship.UserTeamID)
	if err != nil && !errors.Is(err, repositories.ErrTeamBudgetNotFound) {
		return nil, fmt.Errorf("failed to load team budget for archive: %w", err)
	}

	remaining := 0
	for _, f := range fixtures {
		if !f.IsPlayed {
			remaining++
		}
	}

	doc := SeasonArchive{
		Championship: championship,
		Fixtures:     fixtures,
		Standings:    table,
		Budget:       budget,
		ArchivedAt:   s.clock.Now().UTC(),
	}
	doc.Completed, doc.Champion, doc.UserWon = seasonOutcome(championship, table, remaining)

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode season archive: %w", err)
	}

	res, err := s.archive.Put(ctx, archiveKey(championship), archiveContentType, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to upload season archive: %w", err)
	}

	s.logger.InfoContext(ctx, "season archived",
		slog.Int("championship_id", championship.ID),
		slog.String("league_id", championship.LeagueID),
		slog.String("key", res.Key),
		slog.Bool("completed", doc.Completed))
	return res, nil
}
