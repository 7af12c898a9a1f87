package cmd

import (
	"fmt"
	"os"
	"time"

	"ringside-backend/lib/configutil"
	configsqlite "ringside-backend/lib/configutil/sqlite"
	"ringside-backend/lib/scrapers/cagematch"
	"ringside-backend/lib/scrapers/profightdb"
	"ringside-backend/lib/scrapers/source"
	"ringside-backend/lib/serviceutil"
	"ringside-backend/services/events"
	eventsdb "ringside-backend/services/events/db"

	"github.com/spf13/cobra"
)

type sourceConfig struct {
	BaseUrl string `json:"base_url"`
	DelayMs int    `json:"delay_ms"`
}

type config struct {
	Database      configsqlite.Struct `json:"database"`
	Cagematch     sourceConfig        `json:"cagematch"`
	Profightdb    sourceConfig        `json:"profightdb"`
	Promotions    []string            `json:"promotions"`
	LookbackDays  int                 `json:"lookback_days"`
	LookaheadDays int                 `json:"lookahead_days"`
}

var rootCmd = &cobra.Command{
	Use:   "ringside-cli",
	Short: "ringside-cli is an operator CLI for the ringside event pipeline.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openService() events.Service {
	cfg, err := configutil.ReadConfig[config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	database, err := cfg.Database.OpenDB(eventsdb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	sources := []source.Client{
		cagematch.NewClient(cagematch.ClientOptions{
			BaseURL: cfg.Cagematch.BaseUrl,
			Delay:   time.Duration(cfg.Cagematch.DelayMs) * time.Millisecond,
		}),
		profightdb.NewClient(profightdb.ClientOptions{
			BaseURL: cfg.Profightdb.BaseUrl,
			Delay:   time.Duration(cfg.Profightdb.DelayMs) * time.Millisecond,
		}),
	}

	return events.NewService(database, sources, events.Options{
		Promotions:    cfg.Promotions,
		LookbackDays:  cfg.LookbackDays,
		LookaheadDays: cfg.LookaheadDays,
	})
}
