package cpl

import (
	"context"
	"sort"
)

// Leaderboard category names, keyed to the statsId values the player stats
// feed carries.
const (
	LeaderboardGoals       = "goals"
	LeaderboardAssists     = "assists"
	LeaderboardCleanSheets = "cleanSheets"
)

var leaderboardCategories = map[string]string{
	LeaderboardGoals:       "goals",
	LeaderboardAssists:     "assists",
	LeaderboardCleanSheets: "cleanSheets",
}

const leaderboardSize = 5

// LeaderboardEntry is one ranked row of a stat leaderboard.
type LeaderboardEntry struct {
	PlayerID       string
	FirstName      string
	LastName       string
	Nationality    string
	NationalityISO string
	TeamAcronym    string
	Value          int
	Rank           int
}

// Leaderboards aggregates the player stats feed into the top five players
// per category. Rank is assigned after a stable sort by value descending,
// so feed order breaks ties.
func (c *Client) Leaderboards(ctx context.Context) (map[string][]LeaderboardEntry, error) {
	ctx, span := startSpan(ctx, opLeaderboards)
	defer span.End()

	players, err := c.PlayerStats(ctx, "")
	if err != nil {
		return nil, err
	}

	boards := make(map[string][]LeaderboardEntry, len(leaderboardCategories))
	for category := range leaderboardCategories {
		boards[category] = []LeaderboardEntry{}
	}

	for _, player := range players {
		values := make(map[string]float64, len(player.Stats))
		for _, stat := range player.Stats {
			values[stat.ID] = stat.Value
		}

		for category, statID := range leaderboardCategories {
			value, ok := values[statID]
			if !ok {
				continue
			}
			boards[category] = append(boards[category], LeaderboardEntry{
				PlayerID:       player.PlayerID,
				FirstName:      player.FirstName,
				LastName:       player.LastName,
				Nationality:    player.Nationality,
				NationalityISO: player.NationalityISO,
				TeamAcronym:    player.TeamAcronym,
				Value:          int(value),
			})
		}
	}

	for category, entries := range boards {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
		if len(entries) > leaderboardSize {
			entries = entries[:leaderboardSize]
		}
		for i := range entries {
			entries[i].Rank = i + 1
		}
		boards[category] = entries
	}

	return boards, nil
}
