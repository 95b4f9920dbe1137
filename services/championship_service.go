package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/league-manager/brackets"
	"github.com/Dosada05/league-manager/catalog"
	"github.com/Dosada05/league-manager/events"
	"github.com/Dosada05/league-manager/models"
	"github.com/Dosada05/league-manager/repositories"
	"github.com/Dosada05/league-manager/standings"
	"github.com/Dosada05/league-manager/storage"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// TeamCatalog is the read-only reference data the service schedules from.
type TeamCatalog interface {
	Leagues() []models.League
	League(id string) (models.League, error)
	Team(id string) (models.Team, error)
	TeamsByLeague(leagueID string) ([]models.Team, error)
}

type StandingsOrder string

const (
	OrderByPosition StandingsOrder = "position"
	OrderByTeam     StandingsOrder = "team"
)

type FixtureQuery struct {
	Round        *int
	UnplayedOnly bool
}

type SeasonOverview struct {
	Championship *models.Championship `json:"championship"`
	Standings    []*models.Standing   `json:"standings"`
	NextFixture  *models.Fixture      `json:"next_fixture"`
	UserForm     []models.ResultCode  `json:"user_form"`
	Remaining    int                  `json:"remaining_fixtures"`
	Completed    bool                 `json:"completed"`
	Champion     *models.Standing     `json:"champion,omitempty"`
	UserWon      bool                 `json:"user_won"`
}

type RoundResult struct {
	Championship *models.Championship `json:"championship"`
	Round        int                  `json:"round"`
	Fixtures     []*models.Fixture    `json:"fixtures"`
	Standings    []*models.Standing   `json:"standings"`
	Completed    bool                 `json:"completed"`
	Champion     *models.Standing     `json:"champion,omitempty"`
	UserWon      bool                 `json:"user_won"`
}

type ChampionshipService interface {
	// StartSeason returns the existing championship of the (user, league) pair
	// when there is one; created reports whether a new season was scheduled.
	StartSeason(ctx context.Context, userID int, leagueID, teamID string) (championship *models.Championship, created bool, err error)
	GetChampionship(ctx context.Context, userID, championshipID int) (*models.Championship, error)
	GetSeasonOverview(ctx context.Context, userID, championshipID int) (*SeasonOverview, error)
	ListFixtures(ctx context.Context, userID, championshipID int, query FixtureQuery) ([]*models.Fixture, error)
	GetUnplayedFixtures(ctx context.Context, userID, championshipID int, round *int) ([]*models.Fixture, error)
	GetNextFixture(ctx context.Context, userID, championshipID int) (*models.Fixture, error)
	GetStandings(ctx context.Context, userID, championshipID int, order StandingsOrder) ([]*models.Standing, error)
	GetRecentForm(ctx context.Context, userID, championshipID int, team string, limit int) ([]models.ResultCode, error)
	ResolveRound(ctx context.Context, userID, fixtureID, homeScore, awayScore int) (*RoundResult, error)
	ResetSeason(ctx context.Context, userID, championshipID int) error
	// GetTeamBudget returns the budget of the user's club, creating the row
	// from the catalog when the championship does not have one yet.
	GetTeamBudget(ctx context.Context, userID, championshipID int) (*models.TeamBudget, error)
	ArchiveSeason(ctx context.Context, userID, championshipID int) (*storage.PutResult, error)
}

// ChampionshipServiceDeps groups the collaborators of the championship service.
// Publisher, Archive, Clock and Logger are optional.
type ChampionshipServiceDeps struct {
	Store       repositories.Store
	Catalog     TeamCatalog
	Generator   brackets.FixtureGenerator
	Scores      standings.ScoreSource
	Publisher   events.Publisher
	Archive     storage.ObjectStore
	Clock       clockwork.Clock
	Logger      *slog.Logger
	SeasonLabel string
}

type championshipService struct {
	store       repositories.Store
	catalog     TeamCatalog
	generator   brackets.FixtureGenerator
	scores      standings.ScoreSource
	publisher   events.Publisher
	archive     storage.ObjectStore
	clock       clockwork.Clock
	logger      *slog.Logger
	seasonLabel string
}

func NewChampionshipService(deps ChampionshipServiceDeps) ChampionshipService {
	s := &championshipService{
		store:       deps.Store,
		catalog:     deps.Catalog,
		generator:   deps.Generator,
		scores:      deps.Scores,
		publisher:   deps.Publisher,
		archive:     deps.Archive,
		clock:       deps.Clock,
		logger:      deps.Logger,
		seasonLabel: deps.SeasonLabel,
	}
	if s.generator == nil {
		s.generator = brackets.NewRoundRobinGenerator()
	}
	if s.publisher == nil {
		s.publisher = events.NopPublisher{}
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.seasonLabel == "" {
		s.seasonLabel = fmt.Sprintf("%d", s.clock.Now().Year())
	}
	return s
}

func (s *championshipService) StartSeason(ctx context.Context, userID int, leagueID, teamID string) (*models.Championship, bool, error) {
	league, err := s.catalog.League(leagueID)
	if err != nil {
		return nil, false, translateError(err)
	}
	userTeam, err := s.catalog.Team(teamID)
	if err != nil {
		return nil, false, translateError(err)
	}
	if userTeam.LeagueID != league.ID {
		return nil, false, fmt.Errorf("%w: %s plays in %s, not %s", ErrTeamNotInLeague, userTeam.ID, userTeam.LeagueID, league.ID)
	}

	existing, err := s.store.Repositories().Championships.GetByUserAndLeague(ctx, userID, league.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrChampionshipNotFound) {
		return nil, false, fmt.Errorf("failed to look up championship for user %d league %s: %w", userID, league.ID, err)
	}

	teams, err := s.catalog.TeamsByLeague(league.ID)
	if err != nil {
		return nil, false, translateError(err)
	}

	now := s.clock.Now().UTC()
	championship := &models.Championship{
		UserID:       userID,
		LeagueID:     league.ID,
		UserTeamID:   userTeam.ID,
		Name:         league.Name + " - " + userTeam.Name,
		Season:       s.seasonLabel,
		CurrentRound: 1,
		TotalRounds:  brackets.TotalRounds(len(teams)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		created := championship.Clone()
		if err := repos.Championships.Create(ctx, created); err != nil {
			return err
		}

		fixtures, err := s.generator.GenerateFixtures(ctx, brackets.GenerateFixturesParams{
			Championship: created,
			Teams:        teams,
			UserTeamID:   userTeam.ID,
		})
		if err != nil {
			return err
		}
		if err := repos.Fixtures.BatchCreate(ctx, fixtures); err != nil {
			return fmt.Errorf("failed to save %d fixtures: %w", len(fixtures), err)
		}

		table := standings.NewTable(created.ID, teams)
		for _, row := range table {
			row.UpdatedAt = now
		}
		if err := repos.Standings.BatchCreate(ctx, table); err != nil {
			return fmt.Errorf("failed to save standings: %w", err)
		}

		budget := newTeamBudget(created.ID, userTeam, now)
		if err := repos.TeamBudgets.Create(ctx, budget); err != nil {
			return fmt.Errorf("failed to save team budget: %w", err)
		}

		championship = created
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipConflict) {
			// параллельный запрос успел создать сезон первым
			existing, getErr := s.store.Repositories().Championships.GetByUserAndLeague(ctx, userID, league.ID)
			if getErr != nil {
				return nil, false, fmt.Errorf("failed to load concurrently created championship: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, translateError(err)
	}

	s.logger.InfoContext(ctx, "season started",
		slog.Int("championship_id", championship.ID),
		slog.Int("user_id", userID),
		slog.String("league_id", league.ID),
		slog.String("team_id", userTeam.ID),
		slog.Int("total_rounds", championship.TotalRounds))
	return championship, true, nil
}

func (s *championshipService) GetChampionship(ctx context.Context, userID, championshipID int) (*models.Championship, error) {
	return s.loadOwned(ctx, s.store.Repositories(), userID, championshipID)
}

func (s *championshipService) loadOwned(ctx context.Context, repos repositories.Repositories, userID, championshipID int) (*models.Championship, error) {
	championship, err := repos.Championships.GetByID(ctx, championshipID)
	if err != nil {
		return nil, translateError(err)
	}
	if championship.UserID != userID {
		return nil, ErrChampionshipOwnedBy
	}
	return championship, nil
}

func (s *championshipService) GetSeasonOverview(ctx context.Context, userID, championshipID int) (*SeasonOverview, error) {
	repos := s.store.Repositories()
	championship, err := s.loadOwned(ctx, repos, userID, championshipID)
	if err != nil {
		return nil, err
	}

	overview := &SeasonOverview{Championship: championship}
	var formFixtures []*models.Fixture

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		table, err := repos.Standings.ListByChampionship(gCtx, championship.ID, true)
		if err != nil {
			return fmt.Errorf("failed to load standings: %w", err)
		}
		overview.Standings = table
		return nil
	})
	g.Go(func() error {
		next, err := repos.Fixtures.List(gCtx, championship.ID, repositories.FixtureFilter{
			TeamID:   championship.UserTeamID,
			IsPlayed: repositories.Unplayed,
			Limit:    1,
		})
		if err != nil {
			return fmt.Errorf("failed to load next fixture: %w", err)
		}
		if len(next) > 0 {
			overview.NextFixture = next[0]
		}
		return nil
	})
	g.Go(func() error {
		played, err := repos.Fixtures.List(gCtx, championship.ID, repositories.FixtureFilter{
			TeamID:      championship.UserTeamID,
			IsPlayed:    repositories.Played,
			NewestFirst: true,
			Limit:       standings.DefaultFormLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to load recent fixtures: %w", err)
		}
		formFixtures = played
		return nil
	})
	g.Go(func() error {
		remaining, err := repos.Fixtures.CountUnplayed(gCtx, championship.ID)
		if err != nil {
			return fmt.Errorf("failed to count unplayed fixtures: %w", err)
		}
		overview.Remaining = remaining
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, translateError(err)
	}

	overview.UserForm = standings.RecentForm(championship.UserTeamID, formFixtures, standings.DefaultFormLimit)
	overview.Completed, overview.Champion, overview.UserWon = seasonOutcome(championship, overview.Standings, overview.Remaining)
	return overview, nil
}

// seasonOutcome reports completion and, for a finished season, the champion.
func seasonOutcome(championship *models.Championship, table []*models.Standing, remaining int) (bool, *models.Standing, bool) {
	if remaining > 0 || len(table) == 0 {
		return false, nil, false
	}
	champion := standings.Leader(table)
	return true, champion, champion != nil && champion.TeamID == championship.UserTeamID
}

func (s *championshipService) ListFixtures(ctx context.Context, userID, championshipID int, query FixtureQuery) ([]*models.Fixture, error) {
	repos := s.store.Repositories()
	championship, err := s.loadOwned(ctx, repos, userID, championshipID)
	if err != nil {
		return nil, err
	}
	if query.Round != nil && (*query.Round < 1 || *query.Round > championship.TotalRounds) {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidRound, *query.Round, championship.TotalRounds)
	}

	filter := repositories.FixtureFilter{Round: query.Round}
	if query.UnplayedOnly {
		filter.IsPlayed = repositories.Unplayed
	}
	fixtures, err := repos.Fixtures.List(ctx, championship.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures of championship %d: %w", championship.ID, err)
	}
	return fixtures, nil
}

func (s *championshipService) GetUnplayedFixtures(ctx context.Context, userID, championshipID int, round *int) ([]*models.Fixture, error) {
	return s.ListFixtures(ctx, userID, championshipID, FixtureQuery{Round: round, UnplayedOnly: true})
}

func (s *championshipService) GetNextFixture(ctx context.Context, userID, championshipID int) (*models.Fixture, error) {
	repos := s.store.Repositories()
	championship, err := s.loadOwned(ctx, repos, userID, championshipID)
	if err != nil {
		return nil, err
	}
	next, err := repos.Fixtures.List(ctx, championship.ID, repositories.FixtureFilter{
		TeamID:   championship.UserTeamID,
		IsPlayed: repositories.Unplayed,
		Limit:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load next fixture: %w", err)
	}
	if len(next) == 0 {
		return nil, ErrNoFixtureLeft
	}
	return next[0], nil
}

func (s *championshipService) GetStandings(ctx context.Context, userID, championshipID int, order StandingsOrder) ([]*models.Standing, error) {
	var byRank bool
	switch order {
	case "", OrderByPosition:
		byRank = true
	case OrderByTeam:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	repos := s.store.Repositories()
	championship, err := s.loadOwned(ctx, repos, userID, championshipID)
	if err != nil {
		return nil, err
	}
	table, err := repos.Standings.ListByChampionship(ctx, championship.ID, byRank)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings of championship %d: %w", championship.ID, err)
	}
	return table, nil
}

// GetRecentForm accepts a team id or a team name; an empty team means the user's club.
func (s *championshipService) GetRecentForm(ctx context.Context, userID, championshipID int, team string, limit int) ([]models.ResultCode, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormLimit, limit)
	}
	if limit == 0 {
		limit = standings.DefaultFormLimit
	}

	repos := s.store.Repositories()
	championship, err := s.loadOwned(ctx, repos, userID, championshipID)
	if err != nil {
		return nil, err
	}

	teamID, err := s.resolveTeam(ctx, repos, championship, team)
	if err != nil {
		return nil, err
	}

	played, err := repos.Fixtures.List(ctx, championship.ID, repositories.FixtureFilter{
		TeamID:      teamID,
		IsPlayed:    repositories.Played,
		NewestFirst: true,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures of team %s: %w", teamID, err)
	}
	return standings.RecentForm(teamID, played, limit), nil
}

func (s *championshipService) resolveTeam(ctx context.Context, repos repositories.Repositories, championship *models.Championship, team string) (string, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return championship.UserTeamID, nil
	}

	row, err := repos.Standings.GetByChampionshipAndTeam(ctx, championship.ID, team)
	if err == nil {
		return row.TeamID, nil
	}
	if !errors.Is(err, repositories.ErrStandingNotFound) {
		return "", fmt.Errorf("failed to look up team %q: %w", team, err)
	}

	table, err := repos.Standings.ListByChampionship(ctx, championship.ID, false)
	if err != nil {
		return "", fmt.Errorf("failed to look up team %q: %w", team, err)
	}
	for _, row := range table {
		if strings.EqualFold(row.TeamName, team) {
			return row.TeamID, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not part of championship %d", ErrTeamNotFound, team, championship.ID)
}

// ResolveRound records the user's fixture, simulates the rest of its round,
// re-ranks the table and advances the round counter in a single unit of work.
// Events and the completion archive are sent after commit; their failures are
// only logged.
func (s *championshipService) ResolveRound(ctx context.Context, userID, fixtureID, homeScore, awayScore int) (*RoundResult, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, fmt.Errorf("%w: %d-%d", ErrNegativeScore, homeScore, awayScore)
	}

	var result *RoundResult
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		res, err := s.resolveRoundTx(ctx, repos, userID, fixtureID, homeScore, awayScore)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	logAttrs := []any{
		slog.Int("championship_id", result.Championship.ID),
		slog.Int("fixture_id", fixtureID),
		slog.Int("round", result.Round),
		slog.Int("user_id", userID),
	}
	s.logger.InfoContext(ctx, "round resolved", logAttrs...)

	evt := events.RoundResolved{
		Type:           events.TypeRoundResolved,
		ChampionshipID: result.Championship.ID,
		Round:          result.Round,
		Fixtures:       result.Fixtures,
		Standings:      result.Standings,
		Completed:      result.Completed,
		Champion:       result.Champion,
	}
	if result.Completed {
		evt.Type = events.TypeSeasonCompleted
	}
	if err := s.publisher.PublishRoundResolved(ctx, evt); err != nil {
		s.logger.WarnContext(ctx, "failed to publish round event", append(logAttrs, slog.Any("error", err))...)
	}

	if result.Completed {
		s.logger.InfoContext(ctx, "season completed", append(logAttrs,
			slog.String("champion", result.Champion.TeamID),
			slog.Bool("user_won", result.UserWon))...)
		if s.archive != nil {
			if _, err := s.archiveSnapshot(ctx, s.store.Repositories(), result.Championship); err != nil {
				s.logger.WarnContext(ctx, "failed to archive completed season", append(logAttrs, slog.Any("error", err))...)
			}
		}
	}
	return result, nil
}

func (s *championshipService) resolveRoundTx(ctx context.Context, repos repositories.Repositories, userID, fixtureID, homeScore, awayScore int) (*RoundResult, error) {
	fixture, err := repos.Fixtures.GetByID(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	championship, err := repos.Championships.GetByIDForUpdate(ctx, fixture.ChampionshipID)
	if err != nil {
		return nil, err
	}
	if championship.UserID != userID {
		return nil, ErrChampionshipOwnedBy
	}

	// перечитываем матч уже под блокировкой чемпионата
	fixture, err = repos.Fixtures.GetByID(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	if fixture.IsPlayed {
		return nil, fmt.Errorf("%w: fixture %d", ErrFixtureAlreadyPlayed, fixture.ID)
	}
	if fixture.Round != championship.CurrentRound {
		return nil, fmt.Errorf("%w: fixture %d is in round %d, current round is %d",
			ErrRoundOutOfOrder, fixture.ID, fixture.Round, championship.CurrentRound)
	}

	table, err := repos.Standings.ListByChampionship(ctx, championship.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings: %w", err)
	}
	rows := make(map[string]*models.Standing, len(table))
	for _, row := range table {
		rows[row.TeamID] = row
	}

	now := s.clock.Now().UTC()
	play := func(f *models.Fixture, home, away int) error {
		if err := standings.ApplyResult(rows[f.HomeTeamID], rows[f.AwayTeamID], home, away); err != nil {
			return fmt.Errorf("fixture %d: %w", f.ID, err)
		}
		return repos.Fixtures.RecordResult(ctx, f.ID, home, away, now)
	}

	if err := play(fixture, homeScore, awayScore); err != nil {
		return nil, err
	}

	round := fixture.Round
	pending, err := repos.Fixtures.List(ctx, championship.ID, repositories.FixtureFilter{
		Round:    &round,
		IsPlayed: repositories.Unplayed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load round %d fixtures: %w", round, err)
	}
	for _, f := range pending {
		if f.ID == fixture.ID {
			continue
		}
		home, away := s.scores.Score()
		if err := play(f, home, away); err != nil {
			return nil, err
		}
	}

	standings.Rank(table)
	for _, row := range table {
		row.UpdatedAt = now
		if err := repos.Standings.Update(ctx, row); err != nil {
			return nil, fmt.Errorf("failed to update standing of %s: %w", row.TeamID, err)
		}
	}

	championship.CurrentRound = round + 1
	championship.UpdatedAt = now
	if err := repos.Championships.UpdateCurrentRound(ctx, championship.ID, championship.CurrentRound, now); err != nil {
		return nil, fmt.Errorf("failed to advance round: %w", err)
	}

	remaining, err := repos.Fixtures.CountUnplayed(ctx, championship.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unplayed fixtures: %w", err)
	}
	roundFixtures, err := repos.Fixtures.List(ctx, championship.ID, repositories.FixtureFilter{Round: &round})
	if err != nil {
		return nil, fmt.Errorf("failed to reload round %d: %w", round, err)
	}

	result := &RoundResult{
		Championship: championship,
		Round:        round,
		Fixtures:     roundFixtures,
		Standings:    table,
	}
	result.Completed, result.Champion, result.UserWon = seasonOutcome(championship, table, remaining)
	return result, nil
}

func (s *championshipService) ResetSeason(ctx context.Context, userID, championshipID int) error {
	var leagueID string
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		championship, err := repos.Championships.GetByIDForUpdate(ctx, championshipID)
		if err != nil {
			return err
		}
		if championship.UserID != userID {
			return ErrChampionshipOwnedBy
		}
		if err := repos.Fixtures.DeleteByChampionship(ctx, championship.ID); err != nil {
			return fmt.Errorf("failed to delete fixtures: %w", err)
		}
		if err := repos.Standings.DeleteByChampionship(ctx, championship.ID); err != nil {
			return fmt.Errorf("failed to delete standings: %w", err)
		}
		if err := repos.TeamBudgets.DeleteByChampionship(ctx, championship.ID); err != nil {
			return fmt.Errorf("failed to delete team budgets: %w", err)
		}
		if err := repos.Championships.Delete(ctx, championship.ID); err != nil {
			return err
		}
		leagueID = championship.LeagueID
		return nil
	})
	if err != nil {
		return translateError(err)
	}

	s.logger.InfoContext(ctx, "season reset",
		slog.Int("championship_id", championshipID),
		slog.Int("user_id", userID),
		slog.String("league_id", leagueID))
	return nil
}

func newTeamBudget(championshipID int, team models.Team, now time.Time) *models.TeamBudget {
	amount := team.Budget
	if amount <= 0 {
		amount = catalog.DefaultBudget
	}
	return &models.TeamBudget{
		ChampionshipID: championshipID,
		TeamID:         team.ID,
		TeamName:       team.Name,
		Budget:         amount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *championshipService) GetTeamBudget(ctx context.Context, userID, championshipID int) (*models.TeamBudget, error) {
	repos := s.store.Repositories()
	championship, err := s.loadOwned(ctx, repos, userID, championshipID)
	if err != nil {
		return nil, err
	}

	budget, err := repos.TeamBudgets.GetByChampionshipAndTeam(ctx, championship.ID, championship.UserTeamID)
	if err == nil {
		return budget, nil
	}
	if !errors.Is(err, repositories.ErrTeamBudgetNotFound) {
		return nil, fmt.Errorf("failed to load budget of championship %d: %w", championship.ID, err)
	}

	// сезоны, начатые до появления бюджетов, получают строку при первом обращении
	team, err := s.catalog.Team(championship.UserTeamID)
	if err != nil {
		return nil, translateError(err)
	}
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		if _, err := repos.Championships.GetByIDForUpdate(ctx, championship.ID); err != nil {
			return err
		}
		existing, err := repos.TeamBudgets.GetByChampionshipAndTeam(ctx, championship.ID, team.ID)
		if err == nil {
			budget = existing
			return nil
		}
		if !errors.Is(err, repositories.ErrTeamBudgetNotFound) {
			return err
		}
		created := newTeamBudget(championship.ID, team, s.clock.Now().UTC())
		if err := repos.TeamBudgets.Create(ctx, created); err != nil {
			return err
		}
		budget = created
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	s.logger.InfoContext(ctx, "team budget initialized",
		slog.Int("championship_id", championship.ID),
		slog.String("team_id", team.ID),
		slog.Int64("budget", budget.Budget))
	return budget, nil
}
