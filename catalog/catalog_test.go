package catalog

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if got := len(c.Leagues()); got != 2 {
		t.Fatalf("leagues: want 2, got %d", got)
	}

	tests := []struct {
		league string
		want   int
	}{
		{"brasileiro", 20},
		{"europeu", 12},
	}
	for _, tt := range tests {
		teams, err := c.TeamsByLeague(tt.league)
		if err != nil {
			t.Fatalf("TeamsByLeague(%q): %v", tt.league, err)
		}
		if len(teams) != tt.want {
			t.Errorf("TeamsByLeague(%q): want %d teams, got %d", tt.league, tt.want, len(teams))
		}
		if len(teams)%2 != 0 {
			t.Errorf("league %q must have an even number of clubs", tt.league)
		}
	}

	team, err := c.Team("flamengo")
	if err != nil {
		t.Fatalf("Team(flamengo): %v", err)
	}
	if team.Name != "Flamengo" || team.LeagueID != "brasileiro" || team.Rating != 5 {
		t.Errorf("unexpected flamengo entry: %+v", team)
	}
}

func TestCatalogLookupErrors(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if _, err := c.Team("nope"); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("Team(nope): want ErrTeamNotFound, got %v", err)
	}
	if _, err := c.League("nope"); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("League(nope): want ErrLeagueNotFound, got %v", err)
	}
	if _, err := c.TeamsByLeague("nope"); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("TeamsByLeague(nope): want ErrLeagueNotFound, got %v", err)
	}
}

func TestParseRejectsBrokenData(t *testing.T) {
	tests := map[string]string{
		"unknown league": `
leagues: [{id: a, name: A}]
teams: [{id: x, name: X, league: b}]`,
		"duplicate team": `
leagues: [{id: a, name: A}]
teams: [{id: x, name: X, league: a}, {id: x, name: Y, league: a}]`,
		"missing name": `
leagues: [{id: a, name: A}]
teams: [{id: x, league: a}]`,
		"not yaml": `leagues: [`,
		"negative budget": `
leagues: [{id: a, name: A}]
teams: [{id: x, name: X, league: a, budget: -1}]`,
		"negative default budget": `
leagues: [{id: a, name: A}]
default_budget: -5
teams: [{id: x, name: X, league: a}]`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestTeamsByLeagueReturnsCopy(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	teams, _ := c.TeamsByLeague("europeu")
	teams[0].Name = "changed"
	again, _ := c.TeamsByLeague("europeu")
	if again[0].Name == "changed" {
		t.Fatal("TeamsByLeague leaked internal slice")
	}
}

func TestTeamBudgets(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		team string
		want int64
	}{
		{"flamengo", 18_000_000},
		{"botafogo", 15_000_000},
		{"atletico-mg", 7_000_000},
		{"bahia", DefaultBudget},
		{"arsenal", DefaultBudget},
	}
	for _, tt := range tests {
		team, err := c.Team(tt.team)
		if err != nil {
			t.Fatalf("Team(%q): %v", tt.team, err)
		}
		if team.Budget != tt.want {
			t.Errorf("%s budget: want %d, got %d", tt.team, tt.want, team.Budget)
		}
	}
}

func TestParseDefaultBudget(t *testing.T) {
	c, err := Parse([]byte(`
leagues: [{id: a, name: A}]
default_budget: 1000
teams: [{id: x, name: X, league: a}, {id: y, name: Y, league: a, budget: 250}]`))
	if err != nil {
		t.Fatal(err)
	}
	x, _ := c.Team("x")
	y, _ := c.Team("y")
	if x.Budget != 1000 || y.Budget != 250 {
		t.Fatalf("budgets: x=%d y=%d", x.Budget, y.Budget)
	}
}
