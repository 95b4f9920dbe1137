package standings

import (
	"reflect"
	"testing"

	"github.com/Dosada05/league-manager/models"
)

func played(round int, home, away string, hs, as int) *models.Fixture {
	return &models.Fixture{Round: round, HomeTeamID: home, AwayTeamID: away, HomeScore: &hs, AwayScore: &as, IsPlayed: true}
}

func TestResultFor(t *testing.T) {
	f := played(1, "A", "B", 2, 1)
	if got := ResultFor(f, "A"); got != models.ResultWin {
		t.Errorf("A: want W, got %s", got)
	}
	if got := ResultFor(f, "B"); got != models.ResultLoss {
		t.Errorf("B: want L, got %s", got)
	}
	if got := ResultFor(f, "C"); got != models.ResultNotPlayed {
		t.Errorf("C: want -, got %s", got)
	}
	if got := ResultFor(played(1, "A", "B", 0, 0), "B"); got != models.ResultDraw {
		t.Errorf("draw: want D, got %s", got)
	}
	if got := ResultFor(&models.Fixture{HomeTeamID: "A", AwayTeamID: "B"}, "A"); got != models.ResultNotPlayed {
		t.Errorf("unplayed: want -, got %s", got)
	}
}

func TestRecentForm(t *testing.T) {
	fixtures := []*models.Fixture{
		played(1, "A", "B", 2, 1), // W
		played(2, "C", "A", 1, 1), // D
		played(3, "A", "D", 0, 1), // L
		played(4, "B", "C", 3, 0), // not involving A
		{Round: 5, HomeTeamID: "A", AwayTeamID: "B"},
	}

	tests := []struct {
		name  string
		team  string
		limit int
		want  []models.ResultCode
	}{
		{"padded at the back", "A", 5, []models.ResultCode{"L", "D", "W", "-", "-"}},
		{"truncated to limit", "A", 2, []models.ResultCode{"L", "D"}},
		{"zero limit uses default", "A", 0, []models.ResultCode{"L", "D", "W", "-", "-"}},
		{"no history", "Z", 3, []models.ResultCode{"-", "-", "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecentForm(tt.team, fixtures, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRecentFormSingleMatch(t *testing.T) {
	got := RecentForm("A", []*models.Fixture{played(1, "A", "B", 2, 1)}, 5)
	if len(got) != 5 {
		t.Fatalf("want 5 entries, got %d", len(got))
	}
	results, sentinels := 0, 0
	for _, c := range got {
		if c == models.ResultNotPlayed {
			sentinels++
		} else {
			results++
		}
	}
	if results != 1 || sentinels != 4 || got[0] != models.ResultWin {
		t.Fatalf("want [W - - - -], got %v", got)
	}
}
