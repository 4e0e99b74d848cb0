package model

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		player   PlayerInfo
		expected string
	}{
		{name: "both names", player: PlayerInfo{FirstName: "Josh", LastName: "Allen"}, expected: "Josh Allen"},
		{name: "first only", player: PlayerInfo{FirstName: "Seahawks"}, expected: "Seahawks"},
		{name: "last only", player: PlayerInfo{LastName: "Allen"}, expected: "Allen"},
		{name: "empty", player: PlayerInfo{}, expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.player.DisplayName(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestPrimaryPosition(t *testing.T) {
	tests := []struct {
		name     string
		player   PlayerInfo
		expected string
	}{
		{name: "primary set", player: PlayerInfo{Position: "QB", FantasyPositions: []string{"WR"}}, expected: "QB"},
		{name: "fantasy fallback", player: PlayerInfo{FantasyPositions: []string{"TE", "WR"}}, expected: "TE"},
		{name: "neither", player: PlayerInfo{}, expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.player.PrimaryPosition(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "qb", expected: "QB"},
		{in: " wr ", expected: "WR"},
		{in: "TE", expected: "TE"},
		{in: "", expected: ""},
	}

	for _, tc := range tests {
		if got := NormalizePosition(tc.in); got != tc.expected {
			t.Errorf("NormalizePosition(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestUserTeamName(t *testing.T) {
	withName := User{Metadata: &UserMetadata{TeamName: "Gridiron Gurus"}}
	if got := withName.TeamName(); got != "Gridiron Gurus" {
		t.Errorf("expected team name, got %q", got)
	}

	noMetadata := User{}
	if got := noMetadata.TeamName(); got != "" {
		t.Errorf("expected empty team name, got %q", got)
	}
}
