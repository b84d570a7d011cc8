package cpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFasthttpDoer_ServesAsTransport(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/team/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "https://canpl.ca", r.Header.Get("Origin"))
		w.Write([]byte(`{"contestant": [{"id": "t1", "name": "Forge FC"}]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		BaseURL:    server.URL,
		HTTPClient: NewFasthttpDoer(5 * time.Second),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	teams, err := client.Teams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "Forge FC", teams[0].Name)
}

func TestFasthttpDoer_PropagatesStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: NewFasthttpDoer(time.Second)})
	require.NoError(t, err)

	_, err = client.Teams(context.Background())
	var rateLimited *RateLimitError
	require.ErrorAs(t, err, &rateLimited)
	require.Equal(t, 7*time.Second, rateLimited.RetryAfter)
}
