package model

// ChallengeResult is the outcome of a weekly side challenge. Winner is
// nil when no rule is defined for the week or the rule found no winner.
type ChallengeResult struct {
	Week        int              `json:"week"`
	Challenge   string           `json:"challenge"`
	Description string           `json:"description"`
	Winner      *ChallengeWinner `json:"winner"`
}

type ChallengeWinner struct {
	Team    string  `json:"team"`
	Manager string  `json:"manager"`
	Points  float64 `json:"points"`
}
