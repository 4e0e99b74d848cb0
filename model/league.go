package model

// Placeholder values used whenever a roster cannot be joined to a user.
// Display code renders these directly, so resolution gaps never error.
const (
	UnknownTeamName    = "—"
	UnknownDisplayName = "Unknown"
)

// User is a league member as returned by sleeper.
type User struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *UserMetadata `json:"metadata,omitempty"`
}

type UserMetadata struct {
	TeamName string `json:"team_name,omitempty"`
}

// TeamName returns the custom team name from the user metadata, or ""
// when the user never set one.
func (u *User) TeamName() string {
	if u.Metadata == nil {
		return ""
	}
	return u.Metadata.TeamName
}

// Roster is one fantasy team. The win/loss record and cumulative point
// fields are maintained by the platform and are never recomputed here.
type Roster struct {
	RosterID int             `json:"roster_id"`
	OwnerID  string          `json:"owner_id"`
	Settings *RosterSettings `json:"settings,omitempty"`
}

type RosterSettings struct {
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	Fpts        float64 `json:"fpts"`
	FptsAgainst float64 `json:"fpts_against"`
}

// RosterOwner is the resolved display identity for a roster.
type RosterOwner struct {
	TeamName    string `json:"team_name"`
	DisplayName string `json:"display_name"`
	OwnerID     string `json:"owner_id,omitempty"`
}

type Standing struct {
	RosterID    int     `json:"roster_id"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	Fpts        float64 `json:"fpts"`
	FptsAgainst float64 `json:"fpa"`
	TeamName    string  `json:"team_name"`
	DisplayName string  `json:"display_name"`
	Rank        int     `json:"rank"`
}

// NFLState is the live platform state used to bound season-to-date
// aggregations.
type NFLState struct {
	Week   int    `json:"week"`
	Season string `json:"season"`
}
