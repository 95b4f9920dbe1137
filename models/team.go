package models

// League группирует клубы, между которыми разыгрывается чемпионат.
type League struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Flag string `json:"flag,omitempty" yaml:"flag"`
}

// Team is immutable reference data loaded from the catalog.
type Team struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	LeagueID string `json:"league_id" yaml:"league"`
	Rating   int    `json:"rating" yaml:"rating"`
	LogoPath string `json:"logo,omitempty" yaml:"logo"`
	// Budget is the club's starting budget for a new championship.
	Budget int64 `json:"budget" yaml:"budget"`
}
