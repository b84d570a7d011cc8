package cpl

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// MatchStatus is the lifecycle state of a scheduled match.
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in-progress"
	MatchStatusFinal      MatchStatus = "final"
)

// ScheduleEntry is one match of the season calendar. Home/away scores are
// nil until the feed reports any.
type ScheduleEntry struct {
	MatchID      string
	Week         string
	HomeTeamID   string
	HomeTeamName string
	AwayTeamID   string
	AwayTeamName string
	KickoffAt    time.Time
	Venue        string
	Status       MatchStatus
	HomeGoals    *int
	AwayGoals    *int
}

type scheduleEnvelope struct {
	Match []scheduleMatch `json:"match" validate:"required,dive"`
}

type scheduleMatch struct {
	MatchInfo *matchInfo `json:"matchInfo" validate:"required"`
	LiveData  *liveData  `json:"liveData"`
}

type matchInfo struct {
	ID         string               `json:"id" validate:"required"`
	Date       string               `json:"date" validate:"required"`
	Time       string               `json:"time"`
	Week       string               `json:"week"`
	Contestant []scheduleContestant `json:"contestant"`
	Venue      *scheduleVenue       `json:"venue"`
}

type scheduleContestant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type scheduleVenue struct {
	ID        string `json:"id"`
	LongName  string `json:"longName"`
	ShortName string `json:"shortName"`
}

type liveData struct {
	MatchDetails *matchDetails `json:"matchDetails"`
}

type matchDetails struct {
	MatchStatus string           `json:"matchStatus"`
	Scores      *matchScoreBlock `json:"scores"`
}

type matchScoreBlock struct {
	Total map[string]int `json:"total"`
}

// Schedules retrieves every match of the configured season.
func (c *Client) Schedules(ctx context.Context) ([]ScheduleEntry, error) {
	ctx, span := startSpan(ctx, opSchedules)
	defer span.End()

	return c.fetchSchedules(ctx)
}

// Schedule retrieves the season matches for one team.
func (c *Client) Schedule(ctx context.Context, teamID string) ([]ScheduleEntry, error) {
	ctx, span := startSpan(ctx, opSchedule)
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, errors.Wrapf(ErrInvalidParameter, "%s: team id is required", opSchedule)
	}

	all, err := c.fetchSchedules(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ScheduleEntry, 0, len(all))
	for _, entry := range all {
		if entry.HomeTeamID == teamID || entry.AwayTeamID == teamID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (c *Client) fetchSchedules(ctx context.Context) ([]ScheduleEntry, error) {
	var envelope scheduleEnvelope
	if err := c.getJSON(ctx, c.schedulesRequest(), &envelope); err != nil {
		return nil, err
	}

	out := make([]ScheduleEntry, 0, len(envelope.Match))
	for _, match := range envelope.Match {
		entry, err := mapScheduleEntry(match)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func mapScheduleEntry(match scheduleMatch) (ScheduleEntry, error) {
	info := match.MatchInfo
	kickoff, err := parseKickoff(info.Date, info.Time)
	if err != nil {
		return ScheduleEntry{}, &MalformedResponseError{Op: opSchedules, Field: "matchInfo.date", Cause: err}
	}

	entry := ScheduleEntry{
		MatchID:   info.ID,
		Week:      info.Week,
		KickoffAt: kickoff,
		Status:    MatchStatusScheduled,
	}

	for _, contestant := range info.Contestant {
		switch contestant.Position {
		case "home":
			entry.HomeTeamID = contestant.ID
			entry.HomeTeamName = contestant.Name
		case "away":
			entry.AwayTeamID = contestant.ID
			entry.AwayTeamName = contestant.Name
		}
	}

	if info.Venue != nil {
		entry.Venue = info.Venue.LongName
		if entry.Venue == "" {
			entry.Venue = info.Venue.ShortName
		}
	}

	if match.LiveData != nil && match.LiveData.MatchDetails != nil {
		details := match.LiveData.MatchDetails
		entry.Status = mapMatchStatus(details.MatchStatus)
		if details.Scores != nil && details.Scores.Total != nil {
			if home, ok := details.Scores.Total["home"]; ok {
				entry.HomeGoals = &home
			}
			if away, ok := details.Scores.Total["away"]; ok {
				entry.AwayGoals = &away
			}
		}
	}

	return entry, nil
}

func mapMatchStatus(raw string) MatchStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "fixture":
		return MatchStatusScheduled
	case "playing", "live":
		return MatchStatusInProgress
	case "played", "result":
		return MatchStatusFinal
	}
	return MatchStatus(strings.ToLower(strings.TrimSpace(raw)))
}

// The feed splits kickoff into "2026-05-04Z" and "18:00:00Z". A match
// without a published time maps to midnight UTC of its date.
func parseKickoff(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSuffix(strings.TrimSpace(date), "Z"), time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	clock = strings.TrimSuffix(strings.TrimSpace(clock), "Z")
	if clock == "" {
		return day, nil
	}
	at, err := time.ParseInLocation("15:04:05", clock, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute + time.Duration(at.Second())*time.Second), nil
}
