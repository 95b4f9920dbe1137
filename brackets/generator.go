package brackets

import (
	"context"

	"github.com/Dosada05/league-manager/models"
)

type GenerateFixturesParams struct {
	Championship *models.Championship
	Teams        []models.Team
	// UserTeamID, если задан, обязан присутствовать среди Teams.
	UserTeamID string
}

type FixtureGenerator interface {
	GenerateFixtures(ctx context.Context, params GenerateFixturesParams) ([]*models.Fixture, error)

	GetName() string
}
