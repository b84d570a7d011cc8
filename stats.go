package cpl

import "context"

// StatValue is one named statistic from the canpl.ca feeds.
type StatValue struct {
	ID    string
	Label string
	Value float64
}

// TeamStats is one team's aggregated season statistics.
type TeamStats struct {
	TeamID    string
	Name      string
	ShortName string
	Acronym   string
	Stats     []StatValue
}

// PlayerStats is one player's aggregated season statistics.
type PlayerStats struct {
	PlayerID       string
	FirstName      string
	LastName       string
	Nationality    string
	NationalityISO string
	Role           string
	TeamAcronym    string
	TeamName       string
	Stats          []StatValue
}

type teamStatsEnvelope struct {
	Teams []wireTeamStats `json:"teams" validate:"required,dive"`
}

type wireTeamStats struct {
	TeamID       string          `json:"teamId" validate:"required"`
	OfficialName string          `json:"officialName"`
	ShortName    string          `json:"shortName"`
	AcronymName  string          `json:"acronymName"`
	Stats        []wireStatEntry `json:"stats"`
}

type playerStatsEnvelope struct {
	Players []wirePlayerStats `json:"players" validate:"required,dive"`
}

type wirePlayerStats struct {
	PlayerID           string          `json:"playerId" validate:"required"`
	MediaFirstName     string          `json:"mediaFirstName"`
	MediaLastName      string          `json:"mediaLastName"`
	Nationality        string          `json:"nationality"`
	NationalityIsoCode string          `json:"nationalityIsoCode"`
	RoleLabel          string          `json:"roleLabel"`
	Team               *wireTeamStats  `json:"team"`
	Stats              []wireStatEntry `json:"stats"`
}

type wireStatEntry struct {
	StatsID    string  `json:"statsId"`
	StatsLabel string  `json:"statsLabel"`
	StatsValue float64 `json:"statsValue"`
}

// TeamStats retrieves aggregated team statistics for a season. An empty
// seasonID falls back to the configured season.
func (c *Client) TeamStats(ctx context.Context, seasonID string) ([]TeamStats, error) {
	ctx, span := startSpan(ctx, opTeamStats)
	defer span.End()

	var envelope teamStatsEnvelope
	if err := c.getJSON(ctx, c.teamStatsRequest(seasonID), &envelope); err != nil {
		return nil, err
	}

	out := make([]TeamStats, 0, len(envelope.Teams))
	for _, team := range envelope.Teams {
		out = append(out, TeamStats{
			TeamID:    team.TeamID,
			Name:      team.OfficialName,
			ShortName: team.ShortName,
			Acronym:   team.AcronymName,
			Stats:     mapStatEntries(team.Stats),
		})
	}
	return out, nil
}

// PlayerStats retrieves aggregated player statistics for a season in one
// request (the feed page size covers the whole league).
func (c *Client) PlayerStats(ctx context.Context, seasonID string) ([]PlayerStats, error) {
	ctx, span := startSpan(ctx, opPlayerStats)
	defer span.End()

	var envelope playerStatsEnvelope
	if err := c.getJSON(ctx, c.playerStatsRequest(seasonID), &envelope); err != nil {
		return nil, err
	}

	out := make([]PlayerStats, 0, len(envelope.Players))
	for _, player := range envelope.Players {
		mapped := PlayerStats{
			PlayerID:       player.PlayerID,
			FirstName:      player.MediaFirstName,
			LastName:       player.MediaLastName,
			Nationality:    player.Nationality,
			NationalityISO: player.NationalityIsoCode,
			Role:           player.RoleLabel,
			Stats:          mapStatEntries(player.Stats),
		}
		if player.Team != nil {
			mapped.TeamAcronym = player.Team.AcronymName
			mapped.TeamName = player.Team.OfficialName
		}
		out = append(out, mapped)
	}
	return out, nil
}

func mapStatEntries(entries []wireStatEntry) []StatValue {
	out := make([]StatValue, 0, len(entries))
	for _, entry := range entries {
		out = append(out, StatValue{ID: entry.StatsID, Label: entry.StatsLabel, Value: entry.StatsValue})
	}
	return out
}
