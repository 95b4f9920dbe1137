package services

import (
	"context"

	"github.com/Dosada05/league-manager/models"
)

type LeagueService interface {
	ListLeagues(ctx context.Context) ([]models.League, error)
	ListTeams(ctx context.Context, leagueID string) ([]models.Team, error)
}

type leagueService struct {
	catalog TeamCatalog
}

func NewLeagueService(catalog TeamCatalog) LeagueService {
	return &leagueService{catalog: catalog}
}

func (s *leagueService) ListLeagues(ctx context.Context) ([]models.League, error) {
	return s.catalog.Leagues(), nil
}

func (s *leagueService) ListTeams(ctx context.Context, leagueID string) ([]models.Team, error) {
	teams, err := s.catalog.TeamsByLeague(leagueID)
	if err != nil {
		return nil, translateError(err)
	}
	return teams, nil
}
