package cpl

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	if got := parseRetryAfter("30"); got != 30*time.Second {
		t.Fatalf("seconds form: got %s", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("absent header: got %s", got)
	}
	if got := parseRetryAfter("-5"); got != 0 {
		t.Fatalf("negative seconds: got %s", got)
	}
	if got := parseRetryAfter("garbage"); got != 0 {
		t.Fatalf("unparseable: got %s", got)
	}

	future := time.Now().Add(2 * time.Minute).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > 2*time.Minute {
		t.Fatalf("http-date form: got %s", got)
	}
	past := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(past); got != 0 {
		t.Fatalf("past http-date: got %s", got)
	}
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	err := classifyStatus(opTeams, http.StatusNotFound, http.Header{}, []byte("missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("404: got %v", err)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.StatusCode != 404 || statusErr.Body != "missing" {
		t.Fatalf("unexpected carrier: %+v", statusErr)
	}

	err = classifyStatus(opTeams, http.StatusServiceUnavailable, http.Header{}, nil)
	if !errors.Is(err, ErrServer) {
		t.Fatalf("503: got %v", err)
	}

	header := http.Header{}
	header.Set("Retry-After", "12")
	err = classifyStatus(opTeams, http.StatusTooManyRequests, header, nil)
	var rateLimited *RateLimitError
	if !errors.As(err, &rateLimited) || rateLimited.RetryAfter != 12*time.Second {
		t.Fatalf("429: got %v", err)
	}
}

func TestAbbreviateBody(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 1000)
	if got := abbreviateBody([]byte(long)); len(got) != 256+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("long body not truncated: len=%d", len(got))
	}
	if got := abbreviateBody([]byte("  short  ")); got != "short" {
		t.Fatalf("short body: %q", got)
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText("fetch https://x/y?_clbk=topsecret failed: topsecret", "topsecret")
	if strings.Contains(got, "topsecret") {
		t.Fatalf("secret leaked: %s", got)
	}
}
