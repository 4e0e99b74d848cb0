package controller

import (
	"context"
	"testing"

	"github.com/abalcs/sleeper-app/model"
)

func TestHighestTotalPoints(t *testing.T) {
	matchups := []model.Matchup{
		{RosterID: 1, Points: 95.0},
		{RosterID: 2, Points: 120.5},
		{RosterID: 3, Points: 120.5},
	}

	best := highestTotalPoints(matchups)
	if best == nil {
		t.Fatalf("expected a winner")
	}
	// The first of a tie wins.
	if best.RosterID != 2 {
		t.Errorf("expected roster 2, got %d", best.RosterID)
	}

	if highestTotalPoints(nil) != nil {
		t.Errorf("expected no winner for an empty week")
	}
}

func TestGetChallenge_week1(t *testing.T) {
	c, _, msleeper, _, _ := newTestController(t)

	msleeper.On("GetUsers", testLeagueID).Return([]model.User{
		{UserID: "100001", DisplayName: "graysonfan", Metadata: &model.UserMetadata{TeamName: "Gridiron Gurus"}},
		{UserID: "100002", DisplayName: "blitzqueen", Metadata: &model.UserMetadata{TeamName: "Blitz Brigade"}},
	}, nil)
	msleeper.On("GetRosters", testLeagueID).Return([]model.Roster{
		{RosterID: 1, OwnerID: "100001"},
		{RosterID: 2, OwnerID: "100002"},
	}, nil)
	msleeper.On("GetMatchups", testLeagueID, 1).Return([]model.Matchup{
		{RosterID: 1, Points: 120.5},
		{RosterID: 2, Points: 95.0},
	}, nil)

	result, err := c.GetChallenge(context.Background(), testLeagueID, 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if result.Challenge != "Hot Start" {
		t.Errorf("expected Hot Start, got %q", result.Challenge)
	}
	if result.Winner == nil {
		t.Fatalf("expected a winner")
	}
	if result.Winner.Team != "Gridiron Gurus" || result.Winner.Manager != "graysonfan" {
		t.Errorf("unexpected winner: %+v", result.Winner)
	}
	if result.Winner.Points != 120.5 {
		t.Errorf("expected 120.5 points, got %f", result.Winner.Points)
	}
}

func TestGetChallenge_unmappedWeek(t *testing.T) {
	c, _, msleeper, _, _ := newTestController(t)

	msleeper.On("GetUsers", testLeagueID).Return([]model.User{}, nil)
	msleeper.On("GetRosters", testLeagueID).Return([]model.Roster{}, nil)
	msleeper.On("GetMatchups", testLeagueID, 9).Return([]model.Matchup{
		{RosterID: 1, Points: 88.0},
	}, nil)

	result, err := c.GetChallenge(context.Background(), testLeagueID, 9)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if result.Challenge != "Unknown Challenge" {
		t.Errorf("expected the default challenge, got %q", result.Challenge)
	}
	if result.Description != "No challenge defined for this week." {
		t.Errorf("unexpected description: %q", result.Description)
	}
	if result.Winner != nil {
		t.Errorf("expected no winner for an unmapped week, got: %+v", result.Winner)
	}
}

func TestGetChallenge_winnerWithoutOwner(t *testing.T) {
	c, _, msleeper, _, _ := newTestController(t)

	msleeper.On("GetUsers", testLeagueID).Return([]model.User{}, nil)
	msleeper.On("GetRosters", testLeagueID).Return([]model.Roster{}, nil)
	msleeper.On("GetMatchups", testLeagueID, 1).Return([]model.Matchup{
		{RosterID: 7, Points: 101.0},
	}, nil)

	result, err := c.GetChallenge(context.Background(), testLeagueID, 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if result.Winner == nil {
		t.Fatalf("expected a winner")
	}
	if result.Winner.Team != model.UnknownTeamName || result.Winner.Manager != model.UnknownDisplayName {
		t.Errorf("expected placeholder identity, got: %+v", result.Winner)
	}
}
