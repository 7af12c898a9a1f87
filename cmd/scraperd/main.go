package main

import (
	"context"
	"time"

	"ringside-backend/lib/configutil"
	configsqlite "ringside-backend/lib/configutil/sqlite"
	"ringside-backend/lib/scrapers/cagematch"
	"ringside-backend/lib/scrapers/profightdb"
	"ringside-backend/lib/scrapers/source"
	"ringside-backend/lib/serviceutil"
	"ringside-backend/lib/telemetry"
	"ringside-backend/services/events"
	eventsdb "ringside-backend/services/events/db"
)

type SourceConfig struct {
	BaseUrl string `json:"base_url"`
	DelayMs int    `json:"delay_ms"`
}

type Config struct {
	Database        configsqlite.Struct `json:"database"`
	Cagematch       SourceConfig        `json:"cagematch"`
	Profightdb      SourceConfig        `json:"profightdb"`
	Promotions      []string            `json:"promotions"`
	LookbackDays    int                 `json:"lookback_days"`
	LookaheadDays   int                 `json:"lookahead_days"`
	IntervalMinutes int                 `json:"interval_minutes"`
}

func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	database, err := config.Database.OpenDB(eventsdb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	t, err := telemetry.SetupFromEnv(ctx, "scraperd")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	// one fetcher per source, each with its own clock, so per-host
	// courtesy holds even though the crawls run in parallel
	sources := []source.Client{
		cagematch.NewClient(cagematch.ClientOptions{
			BaseURL: config.Cagematch.BaseUrl,
			Delay:   time.Duration(config.Cagematch.DelayMs) * time.Millisecond,
		}),
		profightdb.NewClient(profightdb.ClientOptions{
			BaseURL: config.Profightdb.BaseUrl,
			Delay:   time.Duration(config.Profightdb.DelayMs) * time.Millisecond,
		}),
	}

	svc := events.NewService(database, sources, events.Options{
		Promotions:    config.Promotions,
		LookbackDays:  config.LookbackDays,
		LookaheadDays: config.LookaheadDays,
	})

	svc.RunDaemon(ctx, time.Duration(config.IntervalMinutes)*time.Minute)
}
