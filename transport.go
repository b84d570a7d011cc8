package cpl

import (
	"math/rand/v2"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 10 * time.Second

// Doer is the transport seam. The default is a *http.Client with the
// configured timeout and an otelhttp-instrumented transport; tests and
// callers with their own connection policy supply something else.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// The feeds sit behind the league site's CDN and expect browser-shaped
// requests.
var defaultHeaders = map[string]string{
	"Origin":  "https://canpl.ca",
	"Referer": "https://canpl.ca/",
	"Accept":  "application/json, text/javascript, */*; q=0.01",
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.131 Safari/537.36",
}

func pickUserAgent() string {
	return userAgents[rand.IntN(len(userAgents))]
}

func resolveDoer(doer Doer, timeout time.Duration) Doer {
	if doer != nil {
		return doer
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
