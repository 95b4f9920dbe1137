package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/league-manager/catalog"
	"github.com/Dosada05/league-manager/events"
	"github.com/Dosada05/league-manager/models"
	"github.com/Dosada05/league-manager/repositories"
	"github.com/Dosada05/league-manager/standings"
	"github.com/Dosada05/league-manager/storage"
	"github.com/jonboulle/clockwork"
)

const testCatalogYAML = `
leagues:
  - {id: test, name: Test League}
  - {id: odd, name: Odd League}
teams:
  - {id: a, name: A, league: test, rating: 5, budget: 1200000}
  - {id: b, name: B, league: test, rating: 4}
  - {id: c, name: C, league: test, rating: 3}
  - {id: d, name: D, league: test, rating: 2}
  - {id: x, name: X, league: odd}
  - {id: y, name: Y, league: odd}
  - {id: z, name: Z, league: odd}
`

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.RoundResolved
	err    error
}

func (p *recordingPublisher) PublishRoundResolved(_ context.Context, e events.RoundResolved) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type memoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryObjectStore) Put(_ context.Context, key, _ string, body io.Reader) (*storage.PutResult, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = data
	return &storage.PutResult{Key: key}, nil
}

func (m *memoryObjectStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryObjectStore) PublicURL(key string) string { return "" }

type harness struct {
	svc       ChampionshipService
	store     *repositories.MemoryStore
	publisher *recordingPublisher
	archive   *memoryObjectStore
	clock     *clockwork.FakeClock
}

func newHarness(t *testing.T, scores standings.ScoreSource, withArchive bool) *harness {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	f := &harness{
		store:     repositories.NewMemoryStore(),
		publisher: &recordingPublisher{},
		clock:     clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	deps := ChampionshipServiceDeps{
		Store:       f.store,
		Catalog:     cat,
		Scores:      scores,
		Publisher:   f.publisher,
		Clock:       f.clock,
		SeasonLabel: "2025",
	}
	if withArchive {
		f.archive = &memoryObjectStore{}
		deps.Archive = f.archive
	}
	f.svc = NewChampionshipService(deps)
	return f
}

func (f *harness) start(t *testing.T) *models.Championship {
	t.Helper()
	c, created, err := f.svc.StartSeason(context.Background(), 1, "test", "a")
	if err != nil {
		t.Fatalf("StartSeason: %v", err)
	}
	if !created {
		t.Fatal("StartSeason: expected a new championship")
	}
	return c
}

func standingOf(t *testing.T, table []*models.Standing, teamID string) *models.Standing {
	t.Helper()
	for _, s := range table {
		if s.TeamID == teamID {
			return s
		}
	}
	t.Fatalf("team %s missing from table", teamID)
	return nil
}

func TestStartSeason(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource(), false)
	ctx := context.Background()
	c := f.start(t)

	if c.Name != "Test League - A" || c.Season != "2025" || c.CurrentRound != 1 || c.TotalRounds != 6 {
		t.Fatalf("unexpected championship: %+v", c)
	}

	fixtures, err := f.svc.ListFixtures(ctx, 1, c.ID, FixtureQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(fixtures) != 12 {
		t.Fatalf("want 12 fixtures, got %d", len(fixtures))
	}
	perRound := make(map[int]int)
	for _, fx := range fixtures {
		perRound[fx.Round]++
	}
	for round := 1; round <= 6; round++ {
		if perRound[round] != 2 {
			t.Errorf("round %d: want 2 fixtures, got %d", round, perRound[round])
		}
	}

	table, err := f.svc.GetStandings(ctx, 1, c.ID, OrderByPosition)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 4 {
		t.Fatalf("want 4 standings, got %d", len(table))
	}
	for i, s := range table {
		if s.Position != i+1 || s.Played != 0 || s.Points != 0 {
			t.Errorf("row %d not zero-valued: %+v", i, s)
		}
	}

	again, created, err := f.svc.StartSeason(ctx, 1, "test", "b")
	if err != nil {
		t.Fatal(err)
	}
	if created || again.ID != c.ID || again.UserTeamID != "a" {
		t.Fatalf("second start must return the existing season, got %+v (created=%v)", again, created)
	}
}

func TestStartSeasonPreconditions(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource(), false)
	ctx := context.Background()

	tests := []struct {
		name     string
		league   string
		team     string
		wantErr  error
		wantKind error
	}{
		{"unknown league", "nope", "a", ErrLeagueNotFound, ErrNotFound},
		{"unknown team", "test", "nope", ErrTeamNotFound, ErrNotFound},
		{"team from another league", "test", "x", ErrTeamNotInLeague, ErrPreconditionViolation},
		{"odd team count", "odd", "x", ErrInvalidTeamSet, ErrPreconditionViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.svc.StartSeason(ctx, 1, tt.league, tt.team)
			if !errors.Is(err, tt.wantErr) || !errors.Is(err, tt.wantKind) {
				t.Fatalf("want %v (%v), got %v", tt.wantErr, tt.wantKind, err)
			}
		})
	}

	if _, err := f.store.Repositories().Championships.GetByUserAndLeague(ctx, 1, "odd"); !errors.Is(err, repositories.ErrChampionshipNotFound) {
		t.Fatalf("failed generation must not leave a championship behind, got %v", err)
	}
}

func TestResolveRound_FourTeamExample(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource([2]int{1, 1}), false)
	ctx := context.Background()
	c := f.start(t)

	next, err := f.svc.GetNextFixture(ctx, 1, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if next.Round != 1 || next.HomeTeamID != "a" {
		t.Fatalf("unexpected first fixture: %+v", next)
	}
	opponent := next.AwayTeamID

	res, err := f.svc.ResolveRound(ctx, 1, next.ID, 2, 1)
	if err != nil {
		t.Fatalf("ResolveRound: %v", err)
	}
	if res.Round != 1 || res.Completed || res.Championship.CurrentRound != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}

	a := standingOf(t, res.Standings, "a")
	if a.Played != 1 || a.Wins != 1 || a.Points != 3 || a.GoalsFor != 2 || a.GoalsAgainst != 1 || a.GoalDifference != 1 {
		t.Errorf("A: %+v", a)
	}
	opp := standingOf(t, res.Standings, opponent)
	if opp.Played != 1 || opp.Losses != 1 || opp.Points != 0 || opp.GoalsFor != 1 || opp.GoalsAgainst != 2 || opp.GoalDifference != -1 {
		t.Errorf("%s: %+v", opponent, opp)
	}

	if len(res.Fixtures) != 2 {
		t.Fatalf("want 2 fixtures in round 1, got %d", len(res.Fixtures))
	}
	for _, fx := range res.Fixtures {
		if !fx.IsPlayed || fx.HomeScore == nil || fx.AwayScore == nil {
			t.Errorf("fixture %d left unplayed", fx.ID)
		}
		if fx.ID != next.ID && (*fx.HomeScore != 1 || *fx.AwayScore != 1) {
			t.Errorf("simulated fixture got %d-%d, want 1-1", *fx.HomeScore, *fx.AwayScore)
		}
	}

	table, err := f.svc.GetStandings(ctx, 1, c.ID, OrderByPosition)
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"a", "b", "c", opponent}
	for i, s := range table {
		if s.TeamID != wantOrder[i] || s.Position != i+1 {
			t.Errorf("position %d: want %s, got %s (pos %d)", i+1, wantOrder[i], s.TeamID, s.Position)
		}
		if err := standings.Validate(s); err != nil {
			t.Error(err)
		}
	}

	unplayed, err := f.svc.GetUnplayedFixtures(ctx, 1, c.ID, intPtr(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(unplayed) != 0 {
		t.Fatalf("round 1 still has %d unplayed fixtures", len(unplayed))
	}

	if len(f.publisher.events) != 1 || f.publisher.events[0].Type != events.TypeRoundResolved {
		t.Fatalf("want one round event, got %+v", f.publisher.events)
	}
}

func TestResolveRound_Rejections(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource(), false)
	ctx := context.Background()
	c := f.start(t)

	next, _ := f.svc.GetNextFixture(ctx, 1, c.ID)
	later, _ := f.svc.ListFixtures(ctx, 1, c.ID, FixtureQuery{Round: intPtr(2)})

	tests := []struct {
		name      string
		user      int
		fixtureID int
		home      int
		away      int
		wantErr   error
		wantKind  error
	}{
		{"negative score", 1, next.ID, -1, 0, ErrNegativeScore, ErrValidationFailed},
		{"missing fixture", 1, 9999, 1, 0, ErrFixtureNotFound, ErrNotFound},
		{"other user", 2, next.ID, 1, 0, ErrChampionshipOwnedBy, ErrForbiddenOperation},
		{"future round", 1, later[0].ID, 1, 0, ErrRoundOutOfOrder, ErrPreconditionViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ResolveRound(ctx, tt.user, tt.fixtureID, tt.home, tt.away)
			if !errors.Is(err, tt.wantErr) || !errors.Is(err, tt.wantKind) {
				t.Fatalf("want %v (%v), got %v", tt.wantErr, tt.wantKind, err)
			}
		})
	}

	if _, err := f.svc.ResolveRound(ctx, 1, next.ID, 1, 0); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.ResolveRound(ctx, 1, next.ID, 1, 0)
	if !errors.Is(err, ErrFixtureAlreadyPlayed) || !errors.Is(err, ErrPreconditionViolation) {
		t.Fatalf("replayed fixture: want ErrFixtureAlreadyPlayed, got %v", err)
	}
}

func TestResolveRound_AbortsWithoutPartialState(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource([2]int{-1, 2}), false)
	ctx := context.Background()
	c := f.start(t)

	next, _ := f.svc.GetNextFixture(ctx, 1, c.ID)
	if _, err := f.svc.ResolveRound(ctx, 1, next.ID, 3, 0); err == nil {
		t.Fatal("expected the broken simulation to abort the round")
	}

	fx, err := f.store.Repositories().Fixtures.GetByID(ctx, next.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fx.IsPlayed {
		t.Error("user fixture was recorded by an aborted round")
	}
	got, _ := f.svc.GetChampionship(ctx, 1, c.ID)
	if got.CurrentRound != 1 {
		t.Errorf("round advanced by an aborted resolution: %d", got.CurrentRound)
	}
	table, _ := f.svc.GetStandings(ctx, 1, c.ID, OrderByTeam)
	for _, s := range table {
		if s.Played != 0 {
			t.Errorf("standing of %s changed by an aborted round: %+v", s.TeamID, s)
		}
	}
	if len(f.publisher.events) != 0 {
		t.Error("aborted round must not publish")
	}
}

func TestFullSeason(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource([2]int{0, 0}), true)
	f.publisher.err = errors.New("broker down")
	ctx := context.Background()
	c := f.start(t)

	var last *RoundResult
	for round := 1; round <= c.TotalRounds; round++ {
		next, err := f.svc.GetNextFixture(ctx, 1, c.ID)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if next.Round != round {
			t.Fatalf("next fixture in round %d, want %d", next.Round, round)
		}
		home, away := 3, 0
		if next.AwayTeamID == "a" {
			home, away = 0, 3
		}
		last, err = f.svc.ResolveRound(ctx, 1, next.ID, home, away)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if round < c.TotalRounds && last.Completed {
			t.Fatalf("season completed early in round %d", round)
		}
	}

	if !last.Completed || last.Champion == nil || last.Champion.TeamID != "a" || !last.UserWon {
		t.Fatalf("unexpected final result: %+v", last)
	}
	if last.Championship.CurrentRound != c.TotalRounds+1 {
		t.Errorf("current round: want %d, got %d", c.TotalRounds+1, last.Championship.CurrentRound)
	}
	a := standingOf(t, last.Standings, "a")
	if a.Played != 6 || a.Wins != 6 || a.Points != 18 || a.GoalDifference != 18 {
		t.Errorf("A after the season: %+v", a)
	}

	unplayed, err := f.svc.GetUnplayedFixtures(ctx, 1, c.ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(unplayed) != 0 {
		t.Fatalf("complete season still has %d unplayed fixtures", len(unplayed))
	}
	if _, err := f.svc.GetNextFixture(ctx, 1, c.ID); !errors.Is(err, ErrNoFixtureLeft) {
		t.Fatalf("want ErrNoFixtureLeft, got %v", err)
	}

	if got := len(f.publisher.events); got != c.TotalRounds {
		t.Fatalf("want %d events despite publish failures, got %d", c.TotalRounds, got)
	}
	if f.publisher.events[len(f.publisher.events)-1].Type != events.TypeSeasonCompleted {
		t.Error("last event must announce completion")
	}

	if len(f.archive.objects) != 1 {
		t.Fatalf("want one archive after completion, got %d", len(f.archive.objects))
	}
	for key, body := range f.archive.objects {
		if !strings.HasPrefix(key, "archives/test/") || !strings.HasSuffix(key, ".json") {
			t.Errorf("unexpected archive key %q", key)
		}
		var doc SeasonArchive
		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&doc); err != nil {
			t.Fatal(err)
		}
		if !doc.Completed || doc.Champion.TeamID != "a" || len(doc.Fixtures) != 12 || len(doc.Standings) != 4 {
			t.Errorf("unexpected archive: %+v", doc)
		}
	}

	overview, err := f.svc.GetSeasonOverview(ctx, 1, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !overview.Completed || !overview.UserWon || overview.NextFixture != nil || overview.Remaining != 0 {
		t.Errorf("unexpected overview: %+v", overview)
	}
}

func TestRecentForm(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource([2]int{2, 2}), false)
	ctx := context.Background()
	c := f.start(t)

	form, err := f.svc.GetRecentForm(ctx, 1, c.ID, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(codes(form), "") != "-----" {
		t.Fatalf("form before any match: %v", form)
	}

	next, _ := f.svc.GetNextFixture(ctx, 1, c.ID)
	if _, err := f.svc.ResolveRound(ctx, 1, next.ID, 2, 1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		team  string
		limit int
		want  string
	}{
		{"A", 5, "W----"},
		{"a", 3, "W--"},
		{next.AwayTeamID, 5, "L----"},
		{"b", 2, "D-"},
	}
	for _, tt := range tests {
		form, err := f.svc.GetRecentForm(ctx, 1, c.ID, tt.team, tt.limit)
		if err != nil {
			t.Fatalf("%s: %v", tt.team, err)
		}
		if got := strings.Join(codes(form), ""); got != tt.want {
			t.Errorf("form of %s (limit %d): want %s, got %s", tt.team, tt.limit, tt.want, got)
		}
	}

	if _, err := f.svc.GetRecentForm(ctx, 1, c.ID, "Nobody FC", 5); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("unknown team: want ErrTeamNotFound, got %v", err)
	}
	if _, err := f.svc.GetRecentForm(ctx, 1, c.ID, "a", -1); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("negative limit: want ErrValidationFailed, got %v", err)
	}

	overview, err := f.svc.GetSeasonOverview(ctx, 1, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(codes(overview.UserForm), "") != "W----" || overview.NextFixture.Round != 2 || overview.Remaining != 10 {
		t.Errorf("unexpected overview: %+v", overview)
	}
}

func TestGetStandingsOrder(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource([2]int{0, 3}), false)
	ctx := context.Background()
	c := f.start(t)

	next, _ := f.svc.GetNextFixture(ctx, 1, c.ID)
	if _, err := f.svc.ResolveRound(ctx, 1, next.ID, 0, 1); err != nil {
		t.Fatal(err)
	}

	byTeam, err := f.svc.GetStandings(ctx, 1, c.ID, OrderByTeam)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"A", "B", "C", "D"} {
		if byTeam[i].TeamName != want {
			t.Errorf("order=team row %d: want %s, got %s", i, want, byTeam[i].TeamName)
		}
	}

	byPos, err := f.svc.GetStandings(ctx, 1, c.ID, OrderByPosition)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(byPos); i++ {
		if standings.Less(byPos[i], byPos[i-1]) {
			t.Errorf("rows %d and %d out of order", i, i+1)
		}
	}

	if _, err := f.svc.GetStandings(ctx, 1, c.ID, "points"); !errors.Is(err, ErrInvalidSortOrder) {
		t.Errorf("want ErrInvalidSortOrder, got %v", err)
	}
	if _, err := f.svc.GetStandings(ctx, 2, c.ID, OrderByTeam); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("foreign user: want ErrForbiddenOperation, got %v", err)
	}
}

func TestResetSeason(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource(), false)
	ctx := context.Background()
	c := f.start(t)

	if err := f.svc.ResetSeason(ctx, 2, c.ID); !errors.Is(err, ErrForbiddenOperation) {
		t.Fatalf("foreign reset: want ErrForbiddenOperation, got %v", err)
	}
	if err := f.svc.ResetSeason(ctx, 1, c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.GetChampionship(ctx, 1, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after reset, got %v", err)
	}
	repos := f.store.Repositories()
	if fixtures, _ := repos.Fixtures.List(ctx, c.ID, repositories.FixtureFilter{}); len(fixtures) != 0 {
		t.Errorf("%d fixtures survived the reset", len(fixtures))
	}
	if table, _ := repos.Standings.ListByChampionship(ctx, c.ID, false); len(table) != 0 {
		t.Errorf("%d standings survived the reset", len(table))
	}
	if _, err := repos.TeamBudgets.GetByChampionshipAndTeam(ctx, c.ID, "a"); !errors.Is(err, repositories.ErrTeamBudgetNotFound) {
		t.Errorf("team budget survived the reset: %v", err)
	}

	again := f.start(t)
	if again.ID == c.ID {
		t.Error("new season reused the deleted championship id")
	}
}

func TestArchiveSeason(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource(), false)
	c := f.start(t)
	if _, err := f.svc.ArchiveSeason(context.Background(), 1, c.ID); !errors.Is(err, ErrArchiveUnavailable) {
		t.Fatalf("want ErrArchiveUnavailable, got %v", err)
	}

	f = newHarness(t, standings.NewFixedScoreSource(), true)
	c = f.start(t)
	res, err := f.svc.ArchiveSeason(context.Background(), 1, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	var doc SeasonArchive
	if err := json.Unmarshal(f.archive.objects[res.Key], &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Completed || doc.Champion != nil || doc.Championship.ID != c.ID || !doc.ArchivedAt.Equal(f.clock.Now()) {
		t.Errorf("unexpected in-progress archive: %+v", doc)
	}
	if doc.Budget == nil || doc.Budget.Budget != 1_200_000 {
		t.Errorf("archive budget: %+v", doc.Budget)
	}
}

func codes(form []models.ResultCode) []string {
	out := make([]string, len(form))
	for i, c := range form {
		out[i] = string(c)
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestTeamBudget(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource(), false)
	ctx := context.Background()
	c := f.start(t)

	budget, err := f.svc.GetTeamBudget(ctx, 1, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if budget.TeamID != "a" || budget.TeamName != "A" || budget.Budget != 1_200_000 || budget.ChampionshipID != c.ID {
		t.Fatalf("unexpected budget: %+v", budget)
	}
	if !budget.CreatedAt.Equal(f.clock.Now()) {
		t.Errorf("budget created_at = %v, want %v", budget.CreatedAt, f.clock.Now())
	}

	if _, err := f.svc.GetTeamBudget(ctx, 2, c.ID); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("foreign user: want ErrForbiddenOperation, got %v", err)
	}
	if _, err := f.svc.GetTeamBudget(ctx, 1, c.ID+1000); !errors.Is(err, ErrChampionshipNotFound) {
		t.Errorf("unknown championship: want ErrChampionshipNotFound, got %v", err)
	}

	// после сброса сезон начинается с исходного бюджета
	if err := f.svc.ResetSeason(ctx, 1, c.ID); err != nil {
		t.Fatal(err)
	}
	again := f.start(t)
	fresh, err := f.svc.GetTeamBudget(ctx, 1, again.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Budget != 1_200_000 || fresh.ID == budget.ID {
		t.Fatalf("restarted season budget: %+v", fresh)
	}
}

func TestTeamBudgetCreatedOnFirstAccess(t *testing.T) {
	f := newHarness(t, standings.NewFixedScoreSource(), false)
	ctx := context.Background()

	// championship saved without a budget row, as seasons started before budgets existed
	legacy := &models.Championship{UserID: 1, LeagueID: "test", UserTeamID: "b", Name: "Test League - B", Season: "2024", CurrentRound: 1, TotalRounds: 6}
	if err := f.store.Repositories().Championships.Create(ctx, legacy); err != nil {
		t.Fatal(err)
	}

	first, err := f.svc.GetTeamBudget(ctx, 1, legacy.ID)
	if err != nil {
		t.Fatal(err)
	}
	if first.TeamID != "b" || first.Budget != catalog.DefaultBudget {
		t.Fatalf("unexpected budget: %+v", first)
	}

	second, err := f.svc.GetTeamBudget(ctx, 1, legacy.ID)
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Fatalf("second access created another row: %d != %d", second.ID, first.ID)
	}
}
