package model

import (
	"strings"
	"time"
)

const SportNFL = "nfl"

// PlayerInfo is a single entry in the sleeper player directory. The
// directory has thousands of entries and is treated as one opaque blob,
// so only the fields the dashboard reads are mapped here; everything
// else is dropped on unmarshal.
type PlayerInfo struct {
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	FullName         string   `json:"full_name,omitempty"`
	Position         string   `json:"position,omitempty"`
	FantasyPositions []string `json:"fantasy_positions,omitempty"`
	Team             string   `json:"team,omitempty"`
	Status           string   `json:"status,omitempty"`
}

// DisplayName joins the non-empty name parts, so a team defense with
// only a first name renders without a trailing space.
func (p *PlayerInfo) DisplayName() string {
	parts := make([]string, 0, 2)
	if p.FirstName != "" {
		parts = append(parts, p.FirstName)
	}
	if p.LastName != "" {
		parts = append(parts, p.LastName)
	}
	return strings.Join(parts, " ")
}

// PrimaryPosition returns the player's position, falling back to the
// first fantasy position when the primary field is empty. Returns ""
// when neither is set.
func (p *PlayerInfo) PrimaryPosition() string {
	if p.Position != "" {
		return p.Position
	}
	if len(p.FantasyPositions) > 0 {
		return p.FantasyPositions[0]
	}
	return ""
}

// PlayerDirectory is the full player reference blob keyed by player id.
type PlayerDirectory map[string]PlayerInfo

// PlayerCacheEntry is the persisted copy of the player directory for
// one sport.
type PlayerCacheEntry struct {
	Sport   string
	Blob    PlayerDirectory
	Updated time.Time
}

func NormalizePosition(pos string) string {
	return strings.ToUpper(strings.TrimSpace(pos))
}
