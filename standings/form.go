package standings

import (
	"sort"

	"github.com/Dosada05/league-manager/models"
)

const DefaultFormLimit = 5

// ResultFor maps a fixture to a result code from teamID's perspective.
func ResultFor(f *models.Fixture, teamID string) models.ResultCode {
	if f == nil || !f.IsPlayed || f.HomeScore == nil || f.AwayScore == nil || !f.Involves(teamID) {
		return models.ResultNotPlayed
	}
	own, other := *f.HomeScore, *f.AwayScore
	if f.AwayTeamID == teamID {
		own, other = other, own
	}
	switch {
	case own > other:
		return models.ResultWin
	case own == other:
		return models.ResultDraw
	default:
		return models.ResultLoss
	}
}

// RecentForm returns exactly limit codes for teamID, most recent round first.
// Missing history is padded at the end with ResultNotPlayed; the sentinel is
// never counted as a loss.
func RecentForm(teamID string, fixtures []*models.Fixture, limit int) []models.ResultCode {
	if limit <= 0 {
		limit = DefaultFormLimit
	}

	played := make([]*models.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.IsPlayed && f.Involves(teamID) {
			played = append(played, f)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].Round > played[j].Round
	})

	form := make([]models.ResultCode, 0, limit)
	for _, f := range played {
		if len(form) == limit {
			break
		}
		form = append(form, ResultFor(f, teamID))
	}
	for len(form) < limit {
		form = append(form, models.ResultNotPlayed)
	}
	return form
}
