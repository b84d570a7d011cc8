package cpl

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// CPL runs on the Opta performfeeds soccerdata API for league data and on
// the canpl.ca feeds for aggregated stats. Identifiers below are the public
// ones the league site itself ships to browsers.
const (
	defaultBaseURL          = "https://api.performfeeds.com/soccerdata"
	defaultStatsBaseURL     = "https://canpl.ca"
	defaultDirectoryBaseURL = "https://login.canpl.ca/api"

	defaultCompetitionID = "1ha7bnfgb89131ey8cpx5vvvpl"
	defaultSeasonID      = "110qulr80h8ail8rgwi0o7x0"

	paramFormatJSON   = "json"
	paramResponseType = "c"

	playerStatsPageSize = "500"
)

// Operation names, used in spans, logs and error context.
const (
	opStandings    = "cpl.Standings"
	opSchedules    = "cpl.Schedules"
	opSchedule     = "cpl.Schedule"
	opTeams        = "cpl.Teams"
	opRoster       = "cpl.Roster"
	opPlayerCareer = "cpl.PlayerCareer"
	opTeamStats    = "cpl.TeamStats"
	opPlayerStats  = "cpl.PlayerStats"
	opLeaderboards = "cpl.Leaderboards"
	opPlayers      = "cpl.Players"
)

// requestSpec is a fully built request descriptor. Construction is pure;
// no I/O happens until the client executes it.
type requestSpec struct {
	op    string
	base  string
	path  string
	query url.Values
}

func (r requestSpec) url() string {
	full := strings.TrimSuffix(r.base, "/") + r.path
	if encoded := r.query.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full
}

func (c *Client) standingsRequest() requestSpec {
	query := url.Values{}
	query.Set("tmcl", c.seasonID)
	query.Set("_rt", paramResponseType)
	query.Set("_fmt", paramFormatJSON)
	query.Set("_ordSrt", "asc")
	return requestSpec{op: opStandings, base: c.baseURL, path: "/seasonstats/" + c.competitionID, query: query}
}

func (c *Client) schedulesRequest() requestSpec {
	query := url.Values{}
	query.Set("tmcl", c.seasonID)
	query.Set("_rt", paramResponseType)
	query.Set("_fmt", paramFormatJSON)
	query.Set("_ordSrt", "asc")
	query.Set("_pgSz", "200")
	query.Set("live", "yes")
	return requestSpec{op: opSchedules, base: c.baseURL, path: "/match/" + c.competitionID, query: query}
}

func (c *Client) teamsRequest() requestSpec {
	query := url.Values{}
	query.Set("tmcl", c.seasonID)
	query.Set("_rt", paramResponseType)
	query.Set("_fmt", paramFormatJSON)
	return requestSpec{op: opTeams, base: c.baseURL, path: "/team/" + c.competitionID, query: query}
}

func (c *Client) rosterRequest(teamID string) (requestSpec, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return requestSpec{}, errors.Wrapf(ErrInvalidParameter, "%s: team id is required", opRoster)
	}

	query := url.Values{}
	query.Set("tmcl", c.seasonID)
	query.Set("_rt", paramResponseType)
	query.Set("_fmt", paramFormatJSON)
	query.Set("detailed", "yes")
	query.Set("ctst", teamID)
	return requestSpec{op: opRoster, base: c.baseURL, path: "/squads/" + c.competitionID, query: query}, nil
}

func (c *Client) playerCareerRequest(playerID string) (requestSpec, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return requestSpec{}, errors.Wrapf(ErrInvalidParameter, "%s: player id is required", opPlayerCareer)
	}

	query := url.Values{}
	query.Set("prsn", playerID)
	query.Set("_rt", paramResponseType)
	query.Set("_fmt", paramFormatJSON)
	return requestSpec{op: opPlayerCareer, base: c.baseURL, path: "/playercareer/" + c.competitionID, query: query}, nil
}

func (c *Client) teamStatsRequest(seasonID string) requestSpec {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		seasonID = c.seasonID
	}

	query := url.Values{}
	query.Set("seasonId", seasonID)
	return requestSpec{op: opTeamStats, base: c.statsBaseURL, path: "/feeds/team-stats_feed.php", query: query}
}

func (c *Client) playerStatsRequest(seasonID string) requestSpec {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		seasonID = c.seasonID
	}

	query := url.Values{}
	query.Set("seasonId", seasonID)
	query.Set("pageNumElement", playerStatsPageSize)
	return requestSpec{op: opPlayerStats, base: c.statsBaseURL, path: "/feeds/stats_feed.php", query: query}
}

func (c *Client) playersRequest() requestSpec {
	return requestSpec{op: opPlayers, base: c.directoryBaseURL, path: "/players", query: url.Values{}}
}
