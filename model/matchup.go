package model

// Matchup is one roster's raw weekly result. MatchupID groups the
// rosters playing each other that week; head-to-head leagues have two
// entries per group but nothing here assumes exactly two.
type Matchup struct {
	MatchupID     int                `json:"matchup_id"`
	RosterID      int                `json:"roster_id"`
	Points        float64            `json:"points"`
	Starters      []string           `json:"starters"`
	Players       []string           `json:"players"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

// ResolvedPlayer is a display-ready player inside an enriched matchup.
// Proj is nil when no projection exists, which is distinct from a
// projection of zero.
type ResolvedPlayer struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Pos    string   `json:"pos"`
	Team   string   `json:"team"`
	Proj   *float64 `json:"proj"`
	Actual float64  `json:"actual"`
}

// EnrichedMatchup resolves every player id in a raw matchup. Starters
// and Players overlap on purpose; the bench is computed downstream as
// the id-set difference.
type EnrichedMatchup struct {
	MatchupID   int              `json:"matchup_id"`
	RosterID    int              `json:"roster_id"`
	TeamName    string           `json:"team_name"`
	DisplayName string           `json:"display_name"`
	Points      float64          `json:"points"`
	Starters    []ResolvedPlayer `json:"starters"`
	Players     []ResolvedPlayer `json:"players"`
}

// Projection is one player's projected stat line for a week.
type Projection struct {
	Stats ProjectionStats `json:"stats"`
}

type ProjectionStats struct {
	PtsPPR *float64 `json:"pts_ppr"`
}
