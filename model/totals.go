package model

// PositionTotal is one roster's season-to-date point total at a single
// position. Derived on demand, never persisted.
type PositionTotal struct {
	RosterID    int     `json:"roster_id"`
	TeamName    string  `json:"team_name"`
	DisplayName string  `json:"display_name"`
	Points      float64 `json:"points"`
}

type PositionTotals struct {
	Position string          `json:"position"`
	Totals   []PositionTotal `json:"totals"`
}

// PositionWeakness flags a position where the roster's total is below
// the league-wide median.
type PositionWeakness struct {
	Position    string  `json:"position"`
	TeamValue   float64 `json:"teamValue"`
	MedianValue float64 `json:"medianValue"`
}

// SurplusTeam is another roster whose total at a position is above the
// league-wide median, making it a potential trade partner.
type SurplusTeam struct {
	TeamID int         `json:"teamId"`
	Owner  RosterOwner `json:"owner"`
	Total  float64     `json:"total"`
}

type TradeRecommendation struct {
	Recommendations string                   `json:"recommendations"`
	Weaknesses      []PositionWeakness       `json:"weaknesses,omitempty"`
	Surpluses       map[string][]SurplusTeam `json:"surpluses,omitempty"`
	FreeAgents      []PlayerInfo             `json:"freeAgents,omitempty"`
}
