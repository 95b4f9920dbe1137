package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/league-manager/models"
	"github.com/jonboulle/clockwork"
)

// memoryState is the whole content of a MemoryStore. It is also the JSON
// document written by MemoryStore.Snapshot.
type memoryState struct {
	Championships map[int]*models.Championship `json:"championships"`
	Fixtures      map[int]*models.Fixture      `json:"fixtures"`
	Standings     map[int]*models.Standing     `json:"standings"`
	TeamBudgets   map[int]*models.TeamBudget   `json:"team_budgets"`
	NextID        int                          `json:"next_id"`
}

func newMemoryState() *memoryState {
	return &memoryState{
		Championships: make(map[int]*models.Championship),
		Fixtures:      make(map[int]*models.Fixture),
		Standings:     make(map[int]*models.Standing),
		TeamBudgets:   make(map[int]*models.TeamBudget),
		NextID:        1,
	}
}

func (s *memoryState) clone() *memoryState {
	cp := &memoryState{
		Championships: make(map[int]*models.Championship, len(s.Championships)),
		Fixtures:      make(map[int]*models.Fixture, len(s.Fixtures)),
		Standings:     make(map[int]*models.Standing, len(s.Standings)),
		TeamBudgets:   make(map[int]*models.TeamBudget, len(s.TeamBudgets)),
		NextID:        s.NextID,
	}
	for id, c := range s.Championships {
		cp.Championships[id] = c.Clone()
	}
	for id, f := range s.Fixtures {
		cp.Fixtures[id] = f.Clone()
	}
	for id, st := range s.Standings {
		cp.Standings[id] = st.Clone()
	}
	for id, b := range s.TeamBudgets {
		cp.TeamBudgets[id] = b.Clone()
	}
	return cp
}

func (s *memoryState) nextID() int {
	id := s.NextID
	s.NextID++
	return id
}

// MemoryStore keeps everything in process memory. Transactions are serialized:
// WithinTx works on a private copy and swaps it in only when fn succeeds.
type MemoryStore struct {
	mu        sync.Mutex
	state     *memoryState
	clock     clockwork.Clock
	stateFile string
	logger    *slog.Logger
}

type MemoryStoreOption func(*MemoryStore)

// WithClock sets the clock used for timestamps the caller left empty.
func WithClock(clock clockwork.Clock) MemoryStoreOption {
	return func(m *MemoryStore) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithStateFile makes every committed WithinTx write the whole state to path.
// A failed write is logged; the commit itself stands.
func WithStateFile(path string, logger *slog.Logger) MemoryStoreOption {
	return func(m *MemoryStore) {
		m.stateFile = path
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	return newMemoryStore(newMemoryState(), opts)
}

func newMemoryStore(state *memoryState, opts []MemoryStoreOption) *MemoryStore {
	m := &MemoryStore{
		state:  state,
		clock:  clockwork.NewRealClock(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadMemoryStore restores a store from a Snapshot blob.
func LoadMemoryStore(data []byte, opts ...MemoryStoreOption) (*MemoryStore, error) {
	state := newMemoryState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode memory store snapshot: %w", err)
	}
	if state.Championships == nil {
		state.Championships = make(map[int]*models.Championship)
	}
	if state.Fixtures == nil {
		state.Fixtures = make(map[int]*models.Fixture)
	}
	if state.Standings == nil {
		state.Standings = make(map[int]*models.Standing)
	}
	if state.TeamBudgets == nil {
		state.TeamBudgets = make(map[int]*models.TeamBudget)
	}
	if state.NextID < 1 {
		state.NextID = 1
	}
	return newMemoryStore(state, opts), nil
}

// LoadMemoryStoreFile restores a store from path; a missing file yields an empty store.
func LoadMemoryStoreFile(path string, opts ...MemoryStoreOption) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewMemoryStore(opts...), nil
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}
	return LoadMemoryStore(data, opts...)
}

// Snapshot serializes the committed state as a single JSON blob.
func (m *MemoryStore) Snapshot() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return json.Marshal(m.state)
}

// SaveFile writes Snapshot to path atomically.
func (m *MemoryStore) SaveFile(path string) error {
	data, err := m.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to encode memory store: %w", err)
	}
	return writeStateFile(path, data)
}

// saveLocked writes the committed state to the configured file; m.mu must be held.
func (m *MemoryStore) saveLocked() error {
	data, err := json.Marshal(m.state)
	if err != nil {
		return fmt.Errorf("failed to encode memory store: %w", err)
	}
	return writeStateFile(m.stateFile, data)
}

func writeStateFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

func (m *MemoryStore) Repositories() Repositories {
	return m.repositories(nil)
}

func (m *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := m.state.clone()
	if err := fn(ctx, m.repositories(work)); err != nil {
		return err
	}
	m.state = work

	if m.stateFile != "" {
		if err := m.saveLocked(); err != nil {
			m.logger.ErrorContext(ctx, "failed to save state file after commit",
				slog.String("path", m.stateFile), slog.Any("error", err))
		}
	}
	return nil
}

func (m *MemoryStore) repositories(tx *memoryState) Repositories {
	base := memoryBase{store: m, tx: tx}
	return Repositories{
		Championships: &memoryChampionshipRepository{base},
		Fixtures:      &memoryFixtureRepository{base},
		Standings:     &memoryStandingRepository{base},
		TeamBudgets:   &memoryTeamBudgetRepository{base},
	}
}

// memoryBase resolves the state a repository call works on: the transaction
// copy when inside WithinTx (lock already held), the committed state otherwise.
type memoryBase struct {
	store *MemoryStore
	tx    *memoryState
}

func (b memoryBase) state() (*memoryState, func()) {
	if b.tx != nil {
		return b.tx, func() {}
	}
	b.store.mu.Lock()
	return b.store.state, b.store.mu.Unlock
}

type memoryChampionshipRepository struct{ memoryBase }

func (r *memoryChampionshipRepository) Create(ctx context.Context, c *models.Championship) error {
	st, unlock := r.state()
	defer unlock()

	for _, existing := range st.Championships {
		if existing.UserID == c.UserID && existing.LeagueID == c.LeagueID {
			return ErrChampionshipConflict
		}
	}
	now := r.store.clock.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	c.ID = st.nextID()
	st.Championships[c.ID] = c.Clone()
	return nil
}

func (r *memoryChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	st, unlock := r.state()
	defer unlock()

	c, ok := st.Championships[id]
	if !ok {
		return nil, ErrChampionshipNotFound
	}
	return c.Clone(), nil
}

// GetByIDForUpdate needs no row lock: WithinTx already serializes transactions.
func (r *memoryChampionshipRepository) GetByIDForUpdate(ctx context.Context, id int) (*models.Championship, error) {
	return r.GetByID(ctx, id)
}

func (r *memoryChampionshipRepository) GetByUserAndLeague(ctx context.Context, userID int, leagueID string) (*models.Championship, error) {
	st, unlock := r.state()
	defer unlock()

	for _, c := range st.Championships {
		if c.UserID == userID && c.LeagueID == leagueID {
			return c.Clone(), nil
		}
	}
	return nil, ErrChampionshipNotFound
}

func (r *memoryChampionshipRepository) UpdateCurrentRound(ctx context.Context, id int, round int, updatedAt time.Time) error {
	st, unlock := r.state()
	defer unlock()

	c, ok := st.Championships[id]
	if !ok {
		return ErrChampionshipNotFound
	}
	c.CurrentRound = round
	c.UpdatedAt = updatedAt
	return nil
}

func (r *memoryChampionshipRepository) Delete(ctx context.Context, id int) error {
	st, unlock := r.state()
	defer unlock()

	if _, ok := st.Championships[id]; !ok {
		return ErrChampionshipNotFound
	}
	delete(st.Championships, id)
	return nil
}

type memoryFixtureRepository struct{ memoryBase }

func (r *memoryFixtureRepository) BatchCreate(ctx context.Context, fixtures []*models.Fixture) error {
	st, unlock := r.state()
	defer unlock()

	for _, f := range fixtures {
		if _, ok := st.Championships[f.ChampionshipID]; !ok {
			return ErrFixtureChampionshipInvalid
		}
	}
	for _, f := range fixtures {
		f.ID = st.nextID()
		st.Fixtures[f.ID] = f.Clone()
	}
	return nil
}

func (r *memoryFixtureRepository) GetByID(ctx context.Context, id int) (*models.Fixture, error) {
	st, unlock := r.state()
	defer unlock()

	f, ok := st.Fixtures[id]
	if !ok {
		return nil, ErrFixtureNotFound
	}
	return f.Clone(), nil
}

func (r *memoryFixtureRepository) List(ctx context.Context, championshipID int, filter FixtureFilter) ([]*models.Fixture, error) {
	st, unlock := r.state()
	defer unlock()

	fixtures := make([]*models.Fixture, 0)
	for _, f := range st.Fixtures {
		if f.ChampionshipID != championshipID {
			continue
		}
		if filter.Round != nil && f.Round != *filter.Round {
			continue
		}
		if filter.IsPlayed != nil && f.IsPlayed != *filter.IsPlayed {
			continue
		}
		if filter.TeamID != "" && !f.Involves(filter.TeamID) {
			continue
		}
		fixtures = append(fixtures, f.Clone())
	}

	sort.Slice(fixtures, func(i, j int) bool {
		a, b := fixtures[i], fixtures[j]
		if a.Round != b.Round {
			if filter.NewestFirst {
				return a.Round > b.Round
			}
			return a.Round < b.Round
		}
		if filter.NewestFirst {
			return a.ID > b.ID
		}
		return a.ID < b.ID
	})

	if filter.Limit > 0 && len(fixtures) > filter.Limit {
		fixtures = fixtures[:filter.Limit]
	}
	return fixtures, nil
}

func (r *memoryFixtureRepository) CountUnplayed(ctx context.Context, championshipID int) (int, error) {
	st, unlock := r.state()
	defer unlock()

	count := 0
	for _, f := range st.Fixtures {
		if f.ChampionshipID == championshipID && !f.IsPlayed {
			count++
		}
	}
	return count, nil
}

func (r *memoryFixtureRepository) RecordResult(ctx context.Context, id int, homeScore, awayScore int, playedAt time.Time) error {
	st, unlock := r.state()
	defer unlock()

	f, ok := st.Fixtures[id]
	if !ok {
		return ErrFixtureNotFound
	}
	if f.IsPlayed {
		return ErrFixtureAlreadyPlayed
	}
	hs, as, at := homeScore, awayScore, playedAt
	f.HomeScore, f.AwayScore, f.PlayedAt = &hs, &as, &at
	f.IsPlayed = true
	return nil
}

func (r *memoryFixtureRepository) DeleteByChampionship(ctx context.Context, championshipID int) error {
	st, unlock := r.state()
	defer unlock()

	for id, f := range st.Fixtures {
		if f.ChampionshipID == championshipID {
			delete(st.Fixtures, id)
		}
	}
	return nil
}

type memoryStandingRepository struct{ memoryBase }

func (r *memoryStandingRepository) BatchCreate(ctx context.Context, standings []*models.Standing) error {
	st, unlock := r.state()
	defer unlock()

	seen := make(map[string]bool)
	for _, existing := range st.Standings {
		seen[fmt.Sprintf("%d/%s", existing.ChampionshipID, existing.TeamID)] = true
	}
	for _, s := range standings {
		if _, ok := st.Championships[s.ChampionshipID]; !ok {
			return ErrStandingChampionshipInvalid
		}
		key := fmt.Sprintf("%d/%s", s.ChampionshipID, s.TeamID)
		if seen[key] {
			return ErrStandingConflict
		}
		seen[key] = true
	}
	for _, s := range standings {
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = r.store.clock.Now()
		}
		s.ID = st.nextID()
		st.Standings[s.ID] = s.Clone()
	}
	return nil
}

func (r *memoryStandingRepository) GetByChampionshipAndTeam(ctx context.Context, championshipID int, teamID string) (*models.Standing, error) {
	st, unlock := r.state()
	defer unlock()

	for _, s := range st.Standings {
		if s.ChampionshipID == championshipID && s.TeamID == teamID {
			return s.Clone(), nil
		}
	}
	return nil, ErrStandingNotFound
}

func (r *memoryStandingRepository) ListByChampionship(ctx context.Context, championshipID int, sortByRank bool) ([]*models.Standing, error) {
	st, unlock := r.state()
	defer unlock()

	standings := make([]*models.Standing, 0)
	for _, s := range st.Standings {
		if s.ChampionshipID == championshipID {
			standings = append(standings, s.Clone())
		}
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if sortByRank {
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			if a.GoalDifference != b.GoalDifference {
				return a.GoalDifference > b.GoalDifference
			}
			if a.GoalsFor != b.GoalsFor {
				return a.GoalsFor > b.GoalsFor
			}
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.TeamID < b.TeamID
	})
	return standings, nil
}

func (r *memoryStandingRepository) Update(ctx context.Context, s *models.Standing) error {
	st, unlock := r.state()
	defer unlock()

	if _, ok := st.Standings[s.ID]; !ok {
		return ErrStandingNotFound
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = r.store.clock.Now()
	}
	st.Standings[s.ID] = s.Clone()
	return nil
}

func (r *memoryStandingRepository) DeleteByChampionship(ctx context.Context, championshipID int) error {
	st, unlock := r.state()
	defer unlock()

	for id, s := range st.Standings {
		if s.ChampionshipID == championshipID {
			delete(st.Standings, id)
		}
	}
	return nil
}

type memoryTeamBudgetRepository struct{ memoryBase }

func (r *memoryTeamBudgetRepository) Create(ctx context.Context, b *models.TeamBudget) error {
	st, unlock := r.state()
	defer unlock()

	if _, ok := st.Championships[b.ChampionshipID]; !ok {
		return ErrTeamBudgetChampionshipInvalid
	}
	for _, existing := range st.TeamBudgets {
		if existing.ChampionshipID == b.ChampionshipID && existing.TeamID == b.TeamID {
			return ErrTeamBudgetConflict
		}
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.store.clock.Now()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	b.ID = st.nextID()
	st.TeamBudgets[b.ID] = b.Clone()
	return nil
}

func (r *memoryTeamBudgetRepository) GetByChampionshipAndTeam(ctx context.Context, championshipID int, teamID string) (*models.TeamBudget, error) {
	st, unlock := r.state()
	defer unlock()

	for _, b := range st.TeamBudgets {
		if b.ChampionshipID == championshipID && b.TeamID == teamID {
			return b.Clone(), nil
		}
	}
	return nil, ErrTeamBudgetNotFound
}

func (r *memoryTeamBudgetRepository) DeleteByChampionship(ctx context.Context, championshipID int) error {
	st, unlock := r.state()
	defer unlock()

	for id, b := range st.TeamBudgets {
		if b.ChampionshipID == championshipID {
			delete(st.TeamBudgets, id)
		}
	}
	return nil
}
