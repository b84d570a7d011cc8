// Command cpl dumps the league feeds as JSON: standings, the season
// schedule, teams and the stat leaderboards, fetched concurrently through
// one client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/sourcegraph/conc"
	"github.com/uptrace/uptrace-go/uptrace"

	cpl "github.com/riskibarqy/cpl-go"
	"github.com/riskibarqy/cpl-go/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewJSON(parseLogLevel(os.Getenv("CPL_LOG_LEVEL")))
	defer func() { _ = logger.Sync() }()

	if dsn := strings.TrimSpace(os.Getenv("UPTRACE_DSN")); dsn != "" {
		uptrace.ConfigureOpentelemetry(
			uptrace.WithDSN(dsn),
			uptrace.WithServiceName("cpl-cli"),
		)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = uptrace.Shutdown(shutdownCtx)
		}()
	}

	client, err := cpl.NewClient(cpl.Config{
		BaseURL:  os.Getenv("CPL_BASE_URL"),
		APIKey:   os.Getenv("CPL_API_KEY"),
		SeasonID: os.Getenv("CPL_SEASON_ID"),
		Timeout:  parseTimeout(os.Getenv("CPL_TIMEOUT")),
		Logger:   logger,
	})
	if err != nil {
		logger.Error("build client", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	var (
		mu       sync.Mutex
		report   = make(map[string]any, 4)
		failures int
	)
	record := func(name string, value any, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			logger.Error("fetch "+name, "error", err)
			failures++
			return
		}
		report[name] = value
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		standings, err := client.Standings(ctx)
		record("standings", standings, err)
	})
	wg.Go(func() {
		schedules, err := client.Schedules(ctx)
		record("schedules", schedules, err)
	})
	wg.Go(func() {
		teams, err := client.Teams(ctx)
		record("teams", teams, err)
	})
	wg.Go(func() {
		boards, err := client.Leaderboards(ctx)
		record("leaderboards", boards, err)
	})
	wg.Wait()

	encoded, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("encode report", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))

	if failures > 0 {
		os.Exit(1)
	}
}

func parseLogLevel(raw string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	}
	return logging.LevelInfo
}

func parseTimeout(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return timeout
}
