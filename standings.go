package cpl

import (
	"context"
	"strconv"
	"strings"
)

// Standing is one row of the league's total table. Rank is reproduced from
// the feed as-is; the SDK does not re-sort or verify it.
type Standing struct {
	TeamID         string
	TeamName       string
	TeamShortName  string
	TeamCode       string
	Rank           int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	LastSix        string
}

type standingsEnvelope struct {
	Stage []standingsStage `json:"stage" validate:"required,min=1,dive"`
}

type standingsStage struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Division []standingsDivision `json:"division" validate:"dive"`
}

type standingsDivision struct {
	Type    string             `json:"type"`
	Ranking []standingsRanking `json:"ranking" validate:"dive"`
}

type standingsRanking struct {
	ContestantID        string `json:"contestantId" validate:"required"`
	ContestantClubName  string `json:"contestantClubName"`
	ContestantShortName string `json:"contestantShortName"`
	ContestantCode      string `json:"contestantCode"`
	Rank                int    `json:"rank"`
	MatchesPlayed       int    `json:"matchesPlayed"`
	MatchesWon          int    `json:"matchesWon"`
	MatchesDrawn        int    `json:"matchesDrawn"`
	MatchesLost         int    `json:"matchesLost"`
	GoalsFor            int    `json:"goalsFor"`
	GoalsAgainst        int    `json:"goalsAgainst"`
	// The feed serializes goal difference as a signed string ("+23").
	Goaldifference string `json:"goaldifference"`
	Points         int    `json:"points"`
	LastSix        string `json:"lastSix"`
}

// Standings retrieves the league table for the configured season.
func (c *Client) Standings(ctx context.Context) ([]Standing, error) {
	ctx, span := startSpan(ctx, opStandings)
	defer span.End()

	var envelope standingsEnvelope
	if err := c.getJSON(ctx, c.standingsRequest(), &envelope); err != nil {
		return nil, err
	}

	ranking := findTotalRanking(envelope)
	if ranking == nil {
		return nil, &MalformedResponseError{Op: opStandings, Field: "stage.division"}
	}

	out := make([]Standing, 0, len(ranking))
	for _, row := range ranking {
		diff, err := parseGoalDifference(row.Goaldifference)
		if err != nil {
			return nil, &MalformedResponseError{Op: opStandings, Field: "goaldifference", Cause: err}
		}
		out = append(out, Standing{
			TeamID:         row.ContestantID,
			TeamName:       row.ContestantClubName,
			TeamShortName:  row.ContestantShortName,
			TeamCode:       row.ContestantCode,
			Rank:           row.Rank,
			Played:         row.MatchesPlayed,
			Won:            row.MatchesWon,
			Drawn:          row.MatchesDrawn,
			Lost:           row.MatchesLost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: diff,
			Points:         row.Points,
			LastSix:        row.LastSix,
		})
	}

	return out, nil
}

// findTotalRanking picks the season-wide table out of the stage divisions
// (the feed also ships home/away/form splits).
func findTotalRanking(envelope standingsEnvelope) []standingsRanking {
	for _, stage := range envelope.Stage {
		for _, division := range stage.Division {
			if division.Type == "total" {
				return division.Ranking
			}
		}
	}
	return nil
}

func parseGoalDifference(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimPrefix(raw, "+"))
}
