package controller

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/abalcs/sleeper-app/model"
)

const (
	freeAgentPoolLimit     = 30
	freeAgentResponseLimit = 10
	tradeAdviceTemperature = 0.8

	noWeaknessAdvice = "This team has no glaring weaknesses below the league median."
)

// positionAccumulator holds per-roster, per-position point totals for a
// week range. order records roster ids as first encountered so that
// results stay deterministic across runs.
type positionAccumulator struct {
	totals map[int]map[string]float64
	order  []int
}

// accumulateTotals walks weeks 1 through throughWeek, fetching each
// week's matchups exactly once and summing player points by resolved
// position. Players missing from the directory, or without a position,
// contribute nothing. The accumulator serves both the position-totals
// and trade-recommendation endpoints.
func (c *controller) accumulateTotals(leagueID string, throughWeek int, directory model.PlayerDirectory) (*positionAccumulator, error) {
	acc := &positionAccumulator{
		totals: make(map[int]map[string]float64),
	}

	for week := 1; week <= throughWeek; week++ {
		matchups, err := c.sleeper.GetMatchups(leagueID, week)
		if err != nil {
			return nil, fmt.Errorf("error loading week %d matchups: %w", week, err)
		}

		for _, m := range matchups {
			if acc.totals[m.RosterID] == nil {
				acc.totals[m.RosterID] = make(map[string]float64)
				acc.order = append(acc.order, m.RosterID)
			}
			for _, pid := range m.Players {
				info, ok := directory[pid]
				if !ok {
					continue
				}
				pos := info.PrimaryPosition()
				if pos == "" {
					continue
				}
				acc.totals[m.RosterID][pos] += m.PlayersPoints[pid]
			}
		}
	}

	return acc, nil
}

// leagueMedian returns the element at index floor(n/2) of the values
// sorted descending. For even-length lists this is the lower of the two
// central values in ranking, not their average. Callers depend on this
// exact tie-break; do not replace it with a statistical median.
func leagueMedian(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	return sorted[len(sorted)/2]
}

// fetchAggregationInputs loads everything the aggregation endpoints
// need up front: the current week, the membership lists, and the player
// directory. The independent fetches fan out and fail fast.
func (c *controller) fetchAggregationInputs(ctx context.Context, leagueID string) (*model.NFLState, map[int]model.RosterOwner, model.PlayerDirectory, error) {
	state, err := c.sleeper.GetState()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading nfl state: %w", err)
	}

	var (
		users   []model.User
		rosters []model.Roster

		directory model.PlayerDirectory
		dirErr    error
	)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		directory, dirErr = c.getPlayers(ctx)
	}()

	users, rosters, err = c.fetchUsersAndRosters(leagueID)
	wg.Wait()
	if err != nil {
		return nil, nil, nil, err
	}
	if dirErr != nil {
		return nil, nil, nil, dirErr
	}

	return state, resolveOwners(users, rosters), directory, nil
}

func (c *controller) GetPositionTotals(ctx context.Context, leagueID, position string) (*model.PositionTotals, error) {
	state, owners, directory, err := c.fetchAggregationInputs(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	acc, err := c.accumulateTotals(leagueID, state.Week, directory)
	if err != nil {
		return nil, err
	}

	pos := model.NormalizePosition(position)
	totals := make([]model.PositionTotal, 0, len(acc.order))
	for _, rosterID := range acc.order {
		owner, ok := owners[rosterID]
		if !ok {
			// A matchup referenced a roster the league doesn't know
			// about; leave it out rather than erroring.
			continue
		}
		totals = append(totals, model.PositionTotal{
			RosterID:    rosterID,
			TeamName:    owner.TeamName,
			DisplayName: owner.DisplayName,
			Points:      acc.totals[rosterID][pos],
		})
	}

	// Stable so ties keep first-encountered order.
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Points > totals[j].Points
	})

	return &model.PositionTotals{Position: pos, Totals: totals}, nil
}

func (c *controller) GetTradeRecommendations(ctx context.Context, leagueID string, rosterID int) (*model.TradeRecommendation, error) {
	state, owners, directory, err := c.fetchAggregationInputs(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	acc, err := c.accumulateTotals(leagueID, state.Week, directory)
	if err != nil {
		return nil, err
	}

	// League-wide distribution for every position observed anywhere.
	// Positions nobody scored at are never evaluated, so every median
	// is computed over a non-empty list.
	distributions := make(map[string][]float64)
	for _, rid := range acc.order {
		for pos, total := range acc.totals[rid] {
			distributions[pos] = append(distributions[pos], total)
		}
	}

	positions := make([]string, 0, len(distributions))
	for pos := range distributions {
		positions = append(positions, pos)
	}
	sort.Strings(positions)

	medians := make(map[string]float64, len(distributions))
	for pos, values := range distributions {
		medians[pos] = leagueMedian(values)
	}

	weaknesses := make([]model.PositionWeakness, 0, len(positions))
	for _, pos := range positions {
		teamValue := acc.totals[rosterID][pos]
		if teamValue < medians[pos] {
			weaknesses = append(weaknesses, model.PositionWeakness{
				Position:    pos,
				TeamValue:   teamValue,
				MedianValue: medians[pos],
			})
		}
	}

	// No weaknesses means there is nothing to trade for. Stop before
	// fetching free agents or paying for a completion.
	if len(weaknesses) == 0 {
		return &model.TradeRecommendation{Recommendations: noWeaknessAdvice}, nil
	}

	surpluses := make(map[string][]model.SurplusTeam)
	for _, rid := range acc.order {
		if rid == rosterID {
			continue
		}
		for _, pos := range positions {
			total, ok := acc.totals[rid][pos]
			if !ok {
				continue
			}
			if total > medians[pos] {
				surpluses[pos] = append(surpluses[pos], model.SurplusTeam{
					TeamID: rid,
					Owner:  owners[rid],
					Total:  total,
				})
			}
		}
	}

	freeAgents := c.fetchFreeAgents(leagueID)

	prompt := buildTradePrompt(owners[rosterID], weaknesses, surpluses, freeAgents)
	text, err := c.textgen.Generate(ctx, prompt, tradeAdviceTemperature)
	if err != nil {
		return nil, fmt.Errorf("error generating trade advice: %w", err)
	}

	if len(freeAgents) > freeAgentResponseLimit {
		freeAgents = freeAgents[:freeAgentResponseLimit]
	}

	return &model.TradeRecommendation{
		Recommendations: text,
		Weaknesses:      weaknesses,
		Surpluses:       surpluses,
		FreeAgents:      freeAgents,
	}, nil
}

// fetchFreeAgents returns the league's unrostered players, capped at
// freeAgentPoolLimit. Free agents are supplementary to the trade
// signal, so a fetch failure degrades to an empty list instead of
// failing the request.
func (c *controller) fetchFreeAgents(leagueID string) []model.PlayerInfo {
	pool, err := c.sleeper.GetLeaguePlayers(leagueID)
	if err != nil {
		log.Printf("warning: could not fetch free agents for league %s: %v", leagueID, err)
		return nil
	}

	agents := make([]model.PlayerInfo, 0, freeAgentPoolLimit)
	for _, p := range pool {
		if p.Status == "FA" && p.Position != "" && p.FullName != "" {
			agents = append(agents, p)
		}
	}
	sort.Slice(agents, func(i, j int) bool {
		return agents[i].FullName < agents[j].FullName
	})
	if len(agents) > freeAgentPoolLimit {
		agents = agents[:freeAgentPoolLimit]
	}
	return agents
}

func buildTradePrompt(owner model.RosterOwner, weaknesses []model.PositionWeakness, surpluses map[string][]model.SurplusTeam, freeAgents []model.PlayerInfo) string {
	weaknessLines := make([]string, 0, len(weaknesses))
	for _, w := range weaknesses {
		weaknessLines = append(weaknessLines, fmt.Sprintf("%s: %.1f vs league median %.1f", w.Position, w.TeamValue, w.MedianValue))
	}

	surplusPositions := make([]string, 0, len(surpluses))
	for pos := range surpluses {
		surplusPositions = append(surplusPositions, pos)
	}
	sort.Strings(surplusPositions)

	surplusLines := make([]string, 0, len(surpluses))
	for _, pos := range surplusPositions {
		names := make([]string, 0, len(surpluses[pos]))
		for _, t := range surpluses[pos] {
			names = append(names, fmt.Sprintf("%s (%s)", t.Owner.DisplayName, t.Owner.TeamName))
		}
		surplusLines = append(surplusLines, fmt.Sprintf("%s: %s", pos, strings.Join(names, ", ")))
	}

	agentNames := make([]string, 0, len(freeAgents))
	for _, fa := range freeAgents {
		team := fa.Team
		if team == "" {
			team = "FA"
		}
		agentNames = append(agentNames, fmt.Sprintf("%s (%s, %s)", fa.FullName, fa.Position, team))
	}

	return fmt.Sprintf(`You are a fantasy football trade advisor.
The team %q (%s) is weak at these positions:
%s

Other teams have surpluses:
%s

Available free agents:
%s

Suggest specific trade targets (by player name) and free agent pickups.
Explain how each move helps address their weaknesses.
Keep it practical, concise, and written in a fantasy football manager tone.`,
		owner.DisplayName,
		owner.TeamName,
		strings.Join(weaknessLines, "\n"),
		strings.Join(surplusLines, "\n"),
		strings.Join(agentNames, ", "))
}
