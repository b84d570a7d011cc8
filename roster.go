package cpl

import "context"

// TeamRoster is one team's squad for the configured season.
type TeamRoster struct {
	TeamID      string
	TeamName    string
	TeamCode    string
	Players     []SquadPlayer
	LastUpdated string
}

// SquadPlayer is one squad member. PhotoURL and Bio come from the player
// directory and are empty when the directory has no row for the player.
type SquadPlayer struct {
	ID          string
	FirstName   string
	LastName    string
	MatchName   string
	Position    string
	ShirtNumber int
	Nationality string
	DateOfBirth string
	PhotoURL    string
	Bio         string
}

type rosterEnvelope struct {
	Squad       []wireSquad `json:"squad" validate:"required,dive"`
	LastUpdated string      `json:"lastUpdated"`
}

type wireSquad struct {
	ContestantID       string             `json:"contestantId" validate:"required"`
	ContestantClubName string             `json:"contestantClubName"`
	ContestantCode     string             `json:"contestantCode"`
	Person             []wireRosterPerson `json:"person" validate:"dive"`
}

type wireRosterPerson struct {
	ID          string `json:"id" validate:"required"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	MatchName   string `json:"matchName"`
	Position    string `json:"position"`
	ShirtNumber int    `json:"shirtNumber"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"`
	Type        string `json:"type"`
}

// Roster retrieves the squad for one team, enriched with directory photos
// and bios when the directory is reachable.
func (c *Client) Roster(ctx context.Context, teamID string) (TeamRoster, error) {
	ctx, span := startSpan(ctx, opRoster)
	defer span.End()

	spec, err := c.rosterRequest(teamID)
	if err != nil {
		return TeamRoster{}, err
	}

	var envelope rosterEnvelope
	if err := c.getJSON(ctx, spec, &envelope); err != nil {
		return TeamRoster{}, err
	}
	if len(envelope.Squad) == 0 {
		return TeamRoster{LastUpdated: envelope.LastUpdated}, nil
	}

	squad := envelope.Squad[0]
	directory := c.playerDirectory(ctx)

	roster := TeamRoster{
		TeamID:      squad.ContestantID,
		TeamName:    squad.ContestantClubName,
		TeamCode:    squad.ContestantCode,
		Players:     make([]SquadPlayer, 0, len(squad.Person)),
		LastUpdated: envelope.LastUpdated,
	}
	for _, person := range squad.Person {
		player := SquadPlayer{
			ID:          person.ID,
			FirstName:   person.FirstName,
			LastName:    person.LastName,
			MatchName:   person.MatchName,
			Position:    person.Position,
			ShirtNumber: person.ShirtNumber,
			Nationality: person.Nationality,
			DateOfBirth: person.DateOfBirth,
		}
		if entry, ok := directory[person.ID]; ok {
			player.PhotoURL = entry.PhotoURL
			player.Bio = entry.Bio
		}
		roster.Players = append(roster.Players, player)
	}

	return roster, nil
}
