package cpl

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestClient_Leaderboards(t *testing.T) {
	t.Parallel()

	// Seven scorers so the goals board has to truncate to five.
	var players []string
	for i := 0; i < 7; i++ {
		players = append(players, fmt.Sprintf(`{
			"playerId": "p%d",
			"mediaFirstName": "First%d",
			"mediaLastName": "Last%d",
			"nationality": "Canada",
			"nationalityIsoCode": "CA",
			"team": {"teamId": "t1", "acronymName": "FOR", "officialName": "Forge FC"},
			"stats": [
				{"statsId": "goals", "statsLabel": "Goals", "statsValue": %d},
				{"statsId": "assists", "statsLabel": "Assists", "statsValue": %d}
			]
		}`, i, i, i, i+1, 10-i))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/feeds/stats_feed.php", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"players": [` + strings.Join(players, ",") + `]}`))
	})

	client, _ := newTestClient(t, mux)

	boards, err := client.Leaderboards(context.Background())
	if err != nil {
		t.Fatalf("leaderboards: %v", err)
	}

	goals := boards[LeaderboardGoals]
	if len(goals) != 5 {
		t.Fatalf("goals board size: %d", len(goals))
	}
	if goals[0].PlayerID != "p6" || goals[0].Value != 7 || goals[0].Rank != 1 {
		t.Fatalf("goals leader wrong: %+v", goals[0])
	}
	if goals[4].Rank != 5 {
		t.Fatalf("ranks not assigned: %+v", goals[4])
	}
	for i := 1; i < len(goals); i++ {
		if goals[i].Value > goals[i-1].Value {
			t.Fatalf("goals board not descending at %d", i)
		}
	}

	assists := boards[LeaderboardAssists]
	if assists[0].PlayerID != "p0" || assists[0].Value != 10 {
		t.Fatalf("assists leader wrong: %+v", assists[0])
	}

	// No one posted the clean sheet stat: present but empty.
	if sheets, ok := boards[LeaderboardCleanSheets]; !ok || len(sheets) != 0 {
		t.Fatalf("clean sheets board: %+v", sheets)
	}

	if goals[0].TeamAcronym != "FOR" {
		t.Fatalf("team acronym missing: %+v", goals[0])
	}
}

func TestClient_PlayerStats_MissingPlayersKey(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/feeds/stats_feed.php", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"competition": {"name": "CPL"}}`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Leaderboards(context.Background())
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) || malformed.Field != "players" {
		t.Fatalf("expected malformed players field, got %v", err)
	}
}
