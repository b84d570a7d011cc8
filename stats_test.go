package cpl

import (
	"context"
	"net/http"
	"testing"
)

func TestClient_TeamStats(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/feeds/team-stats_feed.php", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("seasonId"); got != "season-2026" {
			t.Errorf("unexpected seasonId: %s", got)
		}
		w.Write([]byte(`{
			"teams": [{
				"teamId": "t-forge",
				"officialName": "Forge Football Club",
				"shortName": "Forge FC",
				"acronymName": "FOR",
				"stats": [
					{"statsId": "goals", "statsLabel": "Goals", "statsValue": 48},
					{"statsId": "possession", "statsLabel": "Possession %", "statsValue": 56.4}
				]
			}],
			"competition": {"name": "CPL"},
			"pagination": {"totalPages": 1, "currentPage": 1, "isLastPage": true}
		}`))
	})

	client, _ := newTestClient(t, mux)

	teams, err := client.TeamStats(context.Background(), "season-2026")
	if err != nil {
		t.Fatalf("team stats: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected one team, got %d", len(teams))
	}

	team := teams[0]
	if team.TeamID != "t-forge" || team.Acronym != "FOR" {
		t.Fatalf("team fields: %+v", team)
	}
	if len(team.Stats) != 2 {
		t.Fatalf("stats: %+v", team.Stats)
	}
	if team.Stats[1].ID != "possession" || team.Stats[1].Value != 56.4 {
		t.Fatalf("fractional stat lost: %+v", team.Stats[1])
	}
}

func TestClient_PlayerStats(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/feeds/stats_feed.php", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"players": [{
				"playerId": "p1",
				"mediaFirstName": "Kyle",
				"mediaLastName": "Bekker",
				"nationality": "Canada",
				"nationalityIsoCode": "CA",
				"roleLabel": "Midfielder",
				"team": {"teamId": "t-forge", "acronymName": "FOR", "officialName": "Forge Football Club"},
				"stats": [{"statsId": "assists", "statsLabel": "Assists", "statsValue": 9}]
			}]
		}`))
	})

	client, _ := newTestClient(t, mux)

	players, err := client.PlayerStats(context.Background(), "")
	if err != nil {
		t.Fatalf("player stats: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("expected one player, got %d", len(players))
	}

	player := players[0]
	if player.PlayerID != "p1" || player.Role != "Midfielder" {
		t.Fatalf("player fields: %+v", player)
	}
	if player.TeamAcronym != "FOR" || player.TeamName != "Forge Football Club" {
		t.Fatalf("team fields: %+v", player)
	}
	if len(player.Stats) != 1 || player.Stats[0].Value != 9 {
		t.Fatalf("stats: %+v", player.Stats)
	}
}
