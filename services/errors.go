package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/league-manager/brackets"
	"github.com/Dosada05/league-manager/catalog"
	"github.com/Dosada05/league-manager/repositories"
	"github.com/Dosada05/league-manager/standings"
)

// Классы ошибок. Каждая конкретная ошибка ниже относится ровно к одному из них,
// errors.Is(err, ErrNotFound) и т.п. используется при маппинге в HTTP.
var (
	ErrNotFound              = errors.New("requested resource not found")
	ErrPreconditionViolation = errors.New("precondition violated")
	ErrIntegrityViolation    = errors.New("data integrity violated")
	ErrValidationFailed      = errors.New("validation failed")
	ErrForbiddenOperation    = errors.New("operation not allowed for the current user")
	ErrUnavailable           = errors.New("feature is not configured")
)

var (
	ErrChampionshipNotFound = kindError(ErrNotFound, "championship not found")
	ErrFixtureNotFound      = kindError(ErrNotFound, "fixture not found")
	ErrStandingNotFound     = kindError(ErrNotFound, "standing not found")
	ErrLeagueNotFound       = kindError(ErrNotFound, "league not found")
	ErrTeamNotFound         = kindError(ErrNotFound, "team not found")
	ErrNoFixtureLeft        = kindError(ErrNotFound, "no unplayed fixture left for the team")
	ErrTeamBudgetNotFound   = kindError(ErrNotFound, "team budget not found")

	ErrFixtureAlreadyPlayed = kindError(ErrPreconditionViolation, "fixture already played")
	ErrRoundOutOfOrder      = kindError(ErrPreconditionViolation, "fixture does not belong to the current round")
	ErrTeamNotInLeague      = kindError(ErrPreconditionViolation, "team does not belong to the league")
	ErrInvalidTeamSet       = kindError(ErrPreconditionViolation, "league team set cannot be scheduled")
	ErrSeasonNotStarted     = kindError(ErrPreconditionViolation, "season has no fixtures")

	ErrStandingsCorrupted = kindError(ErrIntegrityViolation, "standings invariant would break")

	ErrNegativeScore       = kindError(ErrValidationFailed, "score cannot be negative")
	ErrInvalidRound        = kindError(ErrValidationFailed, "round is out of range")
	ErrInvalidFormLimit    = kindError(ErrValidationFailed, "form limit must be positive")
	ErrInvalidSortOrder    = kindError(ErrValidationFailed, "unknown standings order")
	ErrArchiveUnavailable  = kindError(ErrUnavailable, "season archive storage is not configured")
	ErrChampionshipOwnedBy = kindError(ErrForbiddenOperation, "championship belongs to another user")
)

type classifiedError struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &classifiedError{kind: kind, msg: msg}
}

func (e *classifiedError) Error() string { return e.msg }

func (e *classifiedError) Unwrap() error { return e.kind }

// translateError converts lower layer sentinels into service errors and leaves
// everything else untouched.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrChampionshipNotFound):
		return fmt.Errorf("%w: %v", ErrChampionshipNotFound, err)
	case errors.Is(err, repositories.ErrFixtureNotFound):
		return fmt.Errorf("%w: %v", ErrFixtureNotFound, err)
	case errors.Is(err, repositories.ErrStandingNotFound):
		return fmt.Errorf("%w: %v", ErrStandingNotFound, err)
	case errors.Is(err, repositories.ErrTeamBudgetNotFound):
		return fmt.Errorf("%w: %v", ErrTeamBudgetNotFound, err)
	case errors.Is(err, repositories.ErrTeamBudgetChampionshipInvalid):
		return fmt.Errorf("%w: %v", ErrChampionshipNotFound, err)
	case errors.Is(err, repositories.ErrFixtureAlreadyPlayed):
		return fmt.Errorf("%w: %v", ErrFixtureAlreadyPlayed, err)
	case errors.Is(err, catalog.ErrLeagueNotFound):
		return fmt.Errorf("%w: %v", ErrLeagueNotFound, err)
	case errors.Is(err, catalog.ErrTeamNotFound):
		return fmt.Errorf("%w: %v", ErrTeamNotFound, err)
	case errors.Is(err, brackets.ErrNotEnoughTeams),
		errors.Is(err, brackets.ErrOddTeamCount),
		errors.Is(err, brackets.ErrDuplicateTeam):
		return fmt.Errorf("%w: %v", ErrInvalidTeamSet, err)
	case errors.Is(err, brackets.ErrUserTeamNotInGroup):
		return fmt.Errorf("%w: %v", ErrTeamNotInLeague, err)
	case errors.Is(err, standings.ErrNegativeScore):
		return fmt.Errorf("%w: %v", ErrNegativeScore, err)
	case errors.Is(err, standings.ErrInvariantBroken),
		errors.Is(err, standings.ErrSameStandingTwice),
		errors.Is(err, repositories.ErrFixtureChampionshipInvalid),
		errors.Is(err, repositories.ErrStandingChampionshipInvalid),
		errors.Is(err, repositories.ErrStandingConflict):
		return fmt.Errorf("%w: %v", ErrStandingsCorrupted, err)
	}
	return err
}
