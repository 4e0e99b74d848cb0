package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abalcs/sleeper-app/db"
	"github.com/abalcs/sleeper-app/model"
)

const (
	defaultRecapStyle = "fun"
	recapTemperature  = 0.7
)

func (c *controller) GetRecap(ctx context.Context, leagueID string, week int) (*model.Recap, error) {
	recap, err := c.db.GetRecap(ctx, leagueID, week)
	if err != nil {
		// A recap that hasn't been generated yet is not an error.
		if errors.Is(err, db.ErrRecapNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading recap: %w", err)
	}
	return recap, nil
}

// GenerateRecap returns the stored recap for (leagueID, week) unless
// force is set, in which case it regenerates the text and overwrites
// the stored copy. Recaps for past weeks never go stale on their own;
// force is the only invalidation.
func (c *controller) GenerateRecap(ctx context.Context, leagueID string, week int, style string, force bool) (*model.Recap, error) {
	if !force {
		existing, err := c.db.GetRecap(ctx, leagueID, week)
		if err != nil && !errors.Is(err, db.ErrRecapNotFound) {
			return nil, fmt.Errorf("error loading recap: %w", err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	matchups, err := c.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return nil, err
	}

	if style == "" {
		style = defaultRecapStyle
	}

	text, err := c.textgen.Generate(ctx, buildRecapPrompt(week, style, matchups), recapTemperature)
	if err != nil {
		return nil, fmt.Errorf("error generating recap: %w", err)
	}

	recap := &model.Recap{
		LeagueID: leagueID,
		Week:     week,
		Style:    style,
		Text:     text,
	}
	if err := c.db.UpsertRecap(ctx, recap); err != nil {
		return nil, fmt.Errorf("error saving recap: %w", err)
	}
	return recap, nil
}

func buildRecapPrompt(week int, style string, matchups []model.EnrichedMatchup) string {
	summary := &strings.Builder{}
	for _, m := range matchups {
		name := m.DisplayName
		if name == "" {
			name = m.TeamName
		}
		fmt.Fprintf(summary, "%s scored %.1f points.\n", name, m.Points)
	}

	return fmt.Sprintf(`You are a fantasy football recap writer.
Summarize these Week %d matchups in a %s style.
Here are the results:

%s`, week, style, summary.String())
}
