package cpl

import "context"

// PlayerCareer is one player's career record: a season line per
// competition entry plus totals aggregated by the SDK.
type PlayerCareer struct {
	PlayerID    string
	FirstName   string
	LastName    string
	MatchName   string
	Position    string
	Nationality string
	DateOfBirth string
	PhotoURL    string
	Bio         string
	Seasons     []SeasonStats
	Totals      CareerTotals
	LastUpdated string
}

// SeasonStats is one competition season a player appeared in.
type SeasonStats struct {
	CompetitionID   string
	CompetitionName string
	SeasonName      string
	TeamID          string
	TeamName        string
	Appearances     int
	Goals           int
	Assists         int
	MinutesPlayed   int
	YellowCards     int
	RedCards        int
}

// CareerTotals aggregates every season line of a career.
type CareerTotals struct {
	Appearances   int
	Goals         int
	Assists       int
	MinutesPlayed int
	YellowCards   int
	RedCards      int
}

type careerEnvelope struct {
	Person      []wireCareerPerson `json:"person" validate:"required,min=1,dive"`
	LastUpdated string             `json:"lastUpdated"`
}

type wireCareerPerson struct {
	ID          string           `json:"id" validate:"required"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	MatchName   string           `json:"matchName"`
	Position    string           `json:"position"`
	Nationality string           `json:"nationality"`
	DateOfBirth string           `json:"dateOfBirth"`
	Membership  []wireMembership `json:"membership"`
}

type wireMembership struct {
	ContestantID   string                `json:"contestantId"`
	ContestantName string                `json:"contestantName"`
	Active         string                `json:"active"`
	Stat           []wireCompetitionStat `json:"stat"`
}

type wireCompetitionStat struct {
	CompetitionID          string `json:"competitionId"`
	CompetitionName        string `json:"competitionName"`
	TournamentCalendarName string `json:"tournamentCalendarName"`
	Appearances            int    `json:"appearances"`
	Goals                  int    `json:"goals"`
	Assists                int    `json:"assists"`
	MinutesPlayed          int    `json:"minutesPlayed"`
	YellowCards            int    `json:"yellowCards"`
	RedCards               int    `json:"redCards"`
}

// PlayerCareer retrieves career stats for one player, enriched with the
// directory photo and bio when available.
func (c *Client) PlayerCareer(ctx context.Context, playerID string) (PlayerCareer, error) {
	ctx, span := startSpan(ctx, opPlayerCareer)
	defer span.End()

	spec, err := c.playerCareerRequest(playerID)
	if err != nil {
		return PlayerCareer{}, err
	}

	var envelope careerEnvelope
	if err := c.getJSON(ctx, spec, &envelope); err != nil {
		return PlayerCareer{}, err
	}

	person := envelope.Person[0]
	career := PlayerCareer{
		PlayerID:    person.ID,
		FirstName:   person.FirstName,
		LastName:    person.LastName,
		MatchName:   person.MatchName,
		Position:    person.Position,
		Nationality: person.Nationality,
		DateOfBirth: person.DateOfBirth,
		LastUpdated: envelope.LastUpdated,
	}

	for _, membership := range person.Membership {
		for _, stat := range membership.Stat {
			season := SeasonStats{
				CompetitionID:   stat.CompetitionID,
				CompetitionName: stat.CompetitionName,
				SeasonName:      stat.TournamentCalendarName,
				TeamID:          membership.ContestantID,
				TeamName:        membership.ContestantName,
				Appearances:     stat.Appearances,
				Goals:           stat.Goals,
				Assists:         stat.Assists,
				MinutesPlayed:   stat.MinutesPlayed,
				YellowCards:     stat.YellowCards,
				RedCards:        stat.RedCards,
			}
			career.Seasons = append(career.Seasons, season)
			career.Totals.Appearances += season.Appearances
			career.Totals.Goals += season.Goals
			career.Totals.Assists += season.Assists
			career.Totals.MinutesPlayed += season.MinutesPlayed
			career.Totals.YellowCards += season.YellowCards
			career.Totals.RedCards += season.RedCards
		}
	}

	if entry, ok := c.playerDirectory(ctx)[person.ID]; ok {
		career.PhotoURL = entry.PhotoURL
		career.Bio = entry.Bio
	}

	return career, nil
}
