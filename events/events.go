// Package events fans out notifications about resolved rounds.
package events

import (
	"context"
	"errors"

	"github.com/Dosada05/league-manager/models"
)

const (
	TypeRoundResolved   = "ROUND_RESOLVED"
	TypeSeasonCompleted = "SEASON_COMPLETED"
)

type RoundResolved struct {
	Type           string             `json:"type"`
	ChampionshipID int                `json:"championship_id"`
	Round          int                `json:"round"`
	Fixtures       []*models.Fixture  `json:"fixtures"`
	Standings      []*models.Standing `json:"standings"`
	Completed      bool               `json:"completed"`
	Champion       *models.Standing   `json:"champion,omitempty"`
}

type Publisher interface {
	PublishRoundResolved(ctx context.Context, event RoundResolved) error
}

type NopPublisher struct{}

func (NopPublisher) PublishRoundResolved(context.Context, RoundResolved) error { return nil }

// MultiPublisher delivers to every publisher and joins their errors.
type MultiPublisher []Publisher

func (m MultiPublisher) PublishRoundResolved(ctx context.Context, event RoundResolved) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.PublishRoundResolved(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
