package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Dosada05/league-manager/models"
	"gopkg.in/yaml.v3"
)

//go:embed teams.yaml
var defaultTeamsYAML []byte

// DefaultBudget is used for clubs without a budget when the file sets no default_budget.
const DefaultBudget int64 = 5_000_000

var (
	ErrLeagueNotFound = errors.New("league not found")
	ErrTeamNotFound   = errors.New("team not found")
)

type file struct {
	Leagues       []models.League `yaml:"leagues"`
	DefaultBudget int64           `yaml:"default_budget"`
	Teams         []models.Team   `yaml:"teams"`
}

// Catalog holds the read-only league and team reference data.
// Teams keep the order in which they appear in the source file.
type Catalog struct {
	leagues       []models.League
	leagueByID    map[string]models.League
	teamByID      map[string]models.Team
	teamsByLeague map[string][]models.Team
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultTeamsYAML)
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var raw file
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	defaultBudget := raw.DefaultBudget
	if defaultBudget < 0 {
		return nil, fmt.Errorf("catalog: negative default_budget %d", defaultBudget)
	}
	if defaultBudget == 0 {
		defaultBudget = DefaultBudget
	}

	c := &Catalog{
		leagues:       make([]models.League, 0, len(raw.Leagues)),
		leagueByID:    make(map[string]models.League, len(raw.Leagues)),
		teamByID:      make(map[string]models.Team, len(raw.Teams)),
		teamsByLeague: make(map[string][]models.Team),
	}

	for _, l := range raw.Leagues {
		if l.ID == "" {
			return nil, errors.New("catalog: league with empty id")
		}
		if _, dup := c.leagueByID[l.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate league %q", l.ID)
		}
		c.leagues = append(c.leagues, l)
		c.leagueByID[l.ID] = l
	}

	for _, t := range raw.Teams {
		if t.ID == "" || t.Name == "" {
			return nil, fmt.Errorf("catalog: team %q must have id and name", t.ID)
		}
		if _, dup := c.teamByID[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate team %q", t.ID)
		}
		if _, ok := c.leagueByID[t.LeagueID]; !ok {
			return nil, fmt.Errorf("catalog: team %q references unknown league %q", t.ID, t.LeagueID)
		}
		if t.Budget < 0 {
			return nil, fmt.Errorf("catalog: team %q has negative budget %d", t.ID, t.Budget)
		}
		if t.Budget == 0 {
			t.Budget = defaultBudget
		}
		c.teamByID[t.ID] = t
		c.teamsByLeague[t.LeagueID] = append(c.teamsByLeague[t.LeagueID], t)
	}

	return c, nil
}

func (c *Catalog) Leagues() []models.League {
	out := make([]models.League, len(c.leagues))
	copy(out, c.leagues)
	return out
}

func (c *Catalog) League(id string) (models.League, error) {
	l, ok := c.leagueByID[id]
	if !ok {
		return models.League{}, fmt.Errorf("%w: %q", ErrLeagueNotFound, id)
	}
	return l, nil
}

func (c *Catalog) Team(id string) (models.Team, error) {
	t, ok := c.teamByID[id]
	if !ok {
		return models.Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, id)
	}
	return t, nil
}

// TeamsByLeague returns a copy of the league's clubs in catalog order.
func (c *Catalog) TeamsByLeague(leagueID string) ([]models.Team, error) {
	if _, ok := c.leagueByID[leagueID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrLeagueNotFound, leagueID)
	}
	teams := c.teamsByLeague[leagueID]
	out := make([]models.Team, len(teams))
	copy(out, teams)
	return out, nil
}
