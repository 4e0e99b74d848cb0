package model

import "time"

// Recap is one generated narrative for a (league, week) pair. At most
// one live recap exists per key; regeneration overwrites in place.
type Recap struct {
	LeagueID string
	Week     int
	Style    string
	Text     string
	Updated  time.Time
}
