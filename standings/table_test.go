package standings

import (
	"errors"
	"testing"

	"github.com/Dosada05/league-manager/models"
)

func row(id string) *models.Standing {
	return &models.Standing{TeamID: id, TeamName: id}
}

func TestApplyResult(t *testing.T) {
	tests := []struct {
		name               string
		home, away         int
		wantHome, wantAway models.Standing
	}{
		{
			name: "home win",
			home: 2, away: 1,
			wantHome: models.Standing{Points: 3, Played: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1},
			wantAway: models.Standing{Points: 0, Played: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1},
		},
		{
			name: "away win",
			home: 0, away: 3,
			wantHome: models.Standing{Points: 0, Played: 1, Losses: 1, GoalsFor: 0, GoalsAgainst: 3, GoalDifference: -3},
			wantAway: models.Standing{Points: 3, Played: 1, Wins: 1, GoalsFor: 3, GoalsAgainst: 0, GoalDifference: 3},
		},
		{
			name: "draw",
			home: 1, away: 1,
			wantHome: models.Standing{Points: 1, Played: 1, Draws: 1, GoalsFor: 1, GoalsAgainst: 1},
			wantAway: models.Standing{Points: 1, Played: 1, Draws: 1, GoalsFor: 1, GoalsAgainst: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away := row("A"), row("B")
			if err := ApplyResult(home, away, tt.home, tt.away); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertCounters(t, "home", home, tt.wantHome)
			assertCounters(t, "away", away, tt.wantAway)
		})
	}
}

func assertCounters(t *testing.T, label string, got *models.Standing, want models.Standing) {
	t.Helper()
	if got.Points != want.Points || got.Played != want.Played || got.Wins != want.Wins ||
		got.Draws != want.Draws || got.Losses != want.Losses || got.GoalsFor != want.GoalsFor ||
		got.GoalsAgainst != want.GoalsAgainst || got.GoalDifference != want.GoalDifference {
		t.Errorf("%s: got P%d pl%d W%d D%d L%d GF%d GA%d GD%d, want P%d pl%d W%d D%d L%d GF%d GA%d GD%d",
			label,
			got.Points, got.Played, got.Wins, got.Draws, got.Losses, got.GoalsFor, got.GoalsAgainst, got.GoalDifference,
			want.Points, want.Played, want.Wins, want.Draws, want.Losses, want.GoalsFor, want.GoalsAgainst, want.GoalDifference)
	}
	if err := Validate(got); err != nil {
		t.Errorf("%s: invariant broken: %v", label, err)
	}
}

func TestApplyResultAccumulates(t *testing.T) {
	a, b := row("A"), row("B")
	results := [][2]int{{2, 0}, {1, 1}, {0, 1}, {3, 3}}
	for _, r := range results {
		if err := ApplyResult(a, b, r[0], r[1]); err != nil {
			t.Fatal(err)
		}
	}
	assertCounters(t, "A", a, models.Standing{Points: 5, Played: 4, Wins: 1, Draws: 2, Losses: 1, GoalsFor: 6, GoalsAgainst: 5, GoalDifference: 1})
	assertCounters(t, "B", b, models.Standing{Points: 5, Played: 4, Wins: 1, Draws: 2, Losses: 1, GoalsFor: 5, GoalsAgainst: 6, GoalDifference: -1})
}

func TestApplyResultRejects(t *testing.T) {
	a, b := row("A"), row("B")
	if err := ApplyResult(a, b, -1, 0); !errors.Is(err, ErrNegativeScore) {
		t.Errorf("negative score: want ErrNegativeScore, got %v", err)
	}
	if err := ApplyResult(a, a, 1, 0); !errors.Is(err, ErrSameStandingTwice) {
		t.Errorf("same row: want ErrSameStandingTwice, got %v", err)
	}
	if err := ApplyResult(a, nil, 1, 0); !errors.Is(err, ErrInvariantBroken) {
		t.Errorf("nil row: want ErrInvariantBroken, got %v", err)
	}

	corrupt := &models.Standing{TeamID: "C", Played: 2, Wins: 1}
	before := *corrupt
	if err := ApplyResult(corrupt, b, 1, 0); !errors.Is(err, ErrInvariantBroken) {
		t.Errorf("corrupt row: want ErrInvariantBroken, got %v", err)
	}
	if *corrupt != before || b.Played != 0 {
		t.Error("rows must stay untouched when ApplyResult fails")
	}
}

func TestRankTieBreakPrecedence(t *testing.T) {
	table := []*models.Standing{
		{TeamID: "gf", TeamName: "Gf", Points: 6, GoalDifference: 2, GoalsFor: 3},
		{TeamID: "pts", TeamName: "Pts", Points: 7, GoalDifference: -5, GoalsFor: 0},
		{TeamID: "gd", TeamName: "Gd", Points: 6, GoalDifference: 4, GoalsFor: 1},
		{TeamID: "gf2", TeamName: "Gf2", Points: 6, GoalDifference: 2, GoalsFor: 5},
		{TeamID: "last", TeamName: "Last", Points: 0},
	}
	Rank(table)

	want := []string{"pts", "gd", "gf2", "gf", "last"}
	for i, id := range want {
		if table[i].TeamID != id {
			t.Fatalf("position %d: want %s, got %s", i+1, id, table[i].TeamID)
		}
		if table[i].Position != i+1 {
			t.Errorf("%s: position want %d, got %d", id, i+1, table[i].Position)
		}
	}
	if Leader(table).TeamID != "pts" {
		t.Errorf("leader: want pts, got %s", Leader(table).TeamID)
	}
}

func TestRankFullTieFallsBackToName(t *testing.T) {
	table := []*models.Standing{
		{TeamID: "z", TeamName: "Zeta", Points: 3, GoalDifference: 1, GoalsFor: 1},
		{TeamID: "a", TeamName: "Alpha", Points: 3, GoalDifference: 1, GoalsFor: 1},
	}
	Rank(table)
	if table[0].TeamID != "a" || table[1].TeamID != "z" {
		t.Fatalf("want Alpha before Zeta, got %s, %s", table[0].TeamName, table[1].TeamName)
	}
}

func TestNewTable(t *testing.T) {
	teams := []models.Team{{ID: "a", Name: "A", LogoPath: "/a.png"}, {ID: "b", Name: "B"}}
	table := NewTable(9, teams)
	if len(table) != 2 {
		t.Fatalf("want 2 rows, got %d", len(table))
	}
	for i, s := range table {
		if s.ChampionshipID != 9 || s.Position != i+1 || s.Played != 0 || s.Points != 0 {
			t.Errorf("row %d not zero-valued: %+v", i, s)
		}
	}
	if table[0].LogoPath != "/a.png" {
		t.Errorf("logo not copied: %+v", table[0])
	}
}
