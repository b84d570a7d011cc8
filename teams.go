package cpl

import "context"

// Team is one league contestant.
type Team struct {
	ID           string
	Name         string
	ShortName    string
	OfficialName string
	Code         string
}

type teamsEnvelope struct {
	Contestant  []wireTeam `json:"contestant" validate:"required,dive"`
	LastUpdated string     `json:"lastUpdated"`
}

type wireTeam struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	OfficialName string `json:"officialName"`
	Code         string `json:"code"`
}

// Teams retrieves the contestants of the configured season.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	ctx, span := startSpan(ctx, opTeams)
	defer span.End()

	var envelope teamsEnvelope
	if err := c.getJSON(ctx, c.teamsRequest(), &envelope); err != nil {
		return nil, err
	}

	out := make([]Team, 0, len(envelope.Contestant))
	for _, team := range envelope.Contestant {
		out = append(out, Team{
			ID:           team.ID,
			Name:         team.Name,
			ShortName:    team.ShortName,
			OfficialName: team.OfficialName,
			Code:         team.Code,
		})
	}
	return out, nil
}
