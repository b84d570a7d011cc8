// Package cpl is a thin client for the Canadian Premier League public data
// feeds: league standings, match schedules, team info, squads, player
// careers and the canpl.ca stats feeds.
//
// The client performs no retries and holds no response cache; every call is
// a single synchronous HTTP exchange whose failure surfaces as one of the
// classified errors in errors.go.
package cpl

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cpl-go/internal/logging"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

var apiKeyParamRegex = regexp.MustCompile(`_clbk=[^&\s"']+`)

// Config controls how the client reaches the feeds. The zero value is
// usable and talks to the production endpoints.
type Config struct {
	// BaseURL overrides the performfeeds host.
	BaseURL string `validate:"omitempty,url"`
	// StatsBaseURL overrides the canpl.ca stats feed host.
	StatsBaseURL string `validate:"omitempty,url"`
	// DirectoryBaseURL overrides the player directory host.
	DirectoryBaseURL string `validate:"omitempty,url"`
	// APIKey, when set, is sent as a bearer token.
	APIKey string
	// CompetitionID and SeasonID select the tournament; both default to the
	// current CPL season.
	CompetitionID string
	SeasonID      string
	// Timeout is the per-request deadline applied by the default transport.
	Timeout time.Duration
	// Headers are sent on every request in addition to the defaults.
	Headers map[string]string
	// HTTPClient replaces the default transport entirely. Timeout is then
	// the caller's responsibility.
	HTTPClient Doer
	Logger     *logging.Logger
}

// Client is the SDK facade. One instance is safe for concurrent use to the
// extent its transport is; the client itself keeps no mutable state beyond
// the closed flag and the lazily loaded player directory.
type Client struct {
	doer             Doer
	baseURL          string
	statsBaseURL     string
	directoryBaseURL string
	apiKey           string
	competitionID    string
	seasonID         string
	headers          map[string]string
	userAgent        string
	logger           *logging.Logger

	closed atomic.Bool

	dirOnce   sync.Once
	directory map[string]PlayerDirectoryEntry
}

// NewClient validates the configuration and returns an open client. No
// network I/O happens here.
func NewClient(cfg Config) (*Client, error) {
	if err := configValidator.Struct(cfg); err != nil {
		return nil, errors.Wrap(ErrInvalidParameter, err.Error())
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	statsBaseURL := strings.TrimRight(strings.TrimSpace(cfg.StatsBaseURL), "/")
	if statsBaseURL == "" {
		statsBaseURL = defaultStatsBaseURL
	}
	directoryBaseURL := strings.TrimRight(strings.TrimSpace(cfg.DirectoryBaseURL), "/")
	if directoryBaseURL == "" {
		directoryBaseURL = defaultDirectoryBaseURL
	}
	competitionID := strings.TrimSpace(cfg.CompetitionID)
	if competitionID == "" {
		competitionID = defaultCompetitionID
	}
	seasonID := strings.TrimSpace(cfg.SeasonID)
	if seasonID == "" {
		seasonID = defaultSeasonID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	headers := make(map[string]string, len(defaultHeaders)+len(cfg.Headers))
	for key, value := range defaultHeaders {
		headers[key] = value
	}
	for key, value := range cfg.Headers {
		headers[key] = value
	}

	return &Client{
		doer:             resolveDoer(cfg.HTTPClient, cfg.Timeout),
		baseURL:          baseURL,
		statsBaseURL:     statsBaseURL,
		directoryBaseURL: directoryBaseURL,
		apiKey:           strings.TrimSpace(cfg.APIKey),
		competitionID:    competitionID,
		seasonID:         seasonID,
		headers:          headers,
		userAgent:        pickUserAgent(),
		logger:           logger,
	}, nil
}

// Close marks the client closed and releases idle connections held by the
// default transport. Idempotent; every call after the first is a no-op.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if hc, ok := c.doer.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
	return nil
}

func (c *Client) checkOpen(op string) error {
	if c.closed.Load() {
		return errors.Wrapf(ErrClientClosed, "%s", op)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, spec requestSpec) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.url(), nil)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidParameter, "%s: build request: %v", spec.op, err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func sanitizeSensitiveText(value, secret string) string {
	value = strings.TrimSpace(value)
	if secret != "" {
		value = strings.ReplaceAll(value, secret, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "_clbk=REDACTED")
}
