package cpl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

const scheduleFixture = `{
	"match": [
		{
			"matchInfo": {
				"id": "match-1",
				"date": "2026-05-04Z",
				"time": "18:00:00Z",
				"week": "6",
				"contestant": [
					{"id": "team-forge", "name": "Forge FC", "position": "home"},
					{"id": "team-cavalry", "name": "Cavalry FC", "position": "away"}
				],
				"venue": {"id": "v1", "longName": "Tim Hortons Field"}
			},
			"liveData": {
				"matchDetails": {
					"matchStatus": "Played",
					"scores": {"total": {"home": 2, "away": 1}}
				}
			}
		},
		{
			"matchInfo": {
				"id": "match-2",
				"date": "2026-05-11Z",
				"contestant": [
					{"id": "team-pacific", "name": "Pacific FC", "position": "home"},
					{"id": "team-forge", "name": "Forge FC", "position": "away"}
				]
			}
		}
	]
}`

func scheduleTestServer() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/match/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scheduleFixture))
	})
	return mux
}

func TestClient_Schedules(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, scheduleTestServer())

	entries, err := client.Schedules(context.Background())
	if err != nil {
		t.Fatalf("schedules: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.MatchID != "match-1" {
		t.Fatalf("unexpected match id %s", first.MatchID)
	}
	wantKickoff := time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC)
	if !first.KickoffAt.Equal(wantKickoff) {
		t.Fatalf("kickoff: got %s want %s", first.KickoffAt, wantKickoff)
	}
	if first.HomeTeamID != "team-forge" || first.AwayTeamID != "team-cavalry" {
		t.Fatalf("contestants not mapped: %+v", first)
	}
	if first.Venue != "Tim Hortons Field" {
		t.Fatalf("venue: %s", first.Venue)
	}
	if first.Status != MatchStatusFinal {
		t.Fatalf("status: %s", first.Status)
	}
	if first.HomeGoals == nil || *first.HomeGoals != 2 || first.AwayGoals == nil || *first.AwayGoals != 1 {
		t.Fatalf("scores not mapped: %+v", first)
	}

	// No published time yet: date-only kickoff, no scores, scheduled.
	second := entries[1]
	if !second.KickoffAt.Equal(time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date-only kickoff: %s", second.KickoffAt)
	}
	if second.Status != MatchStatusScheduled {
		t.Fatalf("status: %s", second.Status)
	}
	if second.HomeGoals != nil || second.AwayGoals != nil {
		t.Fatalf("unexpected scores: %+v", second)
	}
}

func TestClient_Schedule_FiltersByTeam(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, scheduleTestServer())

	entries, err := client.Schedule(context.Background(), "team-cavalry")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(entries) != 1 || entries[0].MatchID != "match-1" {
		t.Fatalf("filter failed: %+v", entries)
	}

	entries, err = client.Schedule(context.Background(), "team-forge")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected both forge matches, got %d", len(entries))
	}
}

func TestClient_Schedules_BadKickoffDate(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/match/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"match": [{"matchInfo": {"id": "m1", "date": "May 4th"}}]}`))
	})
	client, _ := newTestClient(t, mux)

	_, err := client.Schedules(context.Background())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) || malformed.Field != "matchInfo.date" {
		t.Fatalf("expected matchInfo.date field, got %v", err)
	}
}

func TestMapMatchStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]MatchStatus{
		"":        MatchStatusScheduled,
		"Fixture": MatchStatusScheduled,
		"Playing": MatchStatusInProgress,
		"Live":    MatchStatusInProgress,
		"Played":  MatchStatusFinal,
		"Result":  MatchStatusFinal,
		"Void":    MatchStatus("void"),
	}
	for raw, want := range cases {
		if got := mapMatchStatus(raw); got != want {
			t.Fatalf("%q: got %s want %s", raw, got, want)
		}
	}
}
