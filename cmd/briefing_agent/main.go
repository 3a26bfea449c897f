package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/yeojugoodnews/briefing_agent/internal/aggregate"
	"github.com/yeojugoodnews/briefing_agent/internal/compose"
	"github.com/yeojugoodnews/briefing_agent/internal/config"
	"github.com/yeojugoodnews/briefing_agent/internal/feed"
	"github.com/yeojugoodnews/briefing_agent/internal/llm"
	"github.com/yeojugoodnews/briefing_agent/internal/logger"
	"github.com/yeojugoodnews/briefing_agent/internal/market"
	"github.com/yeojugoodnews/briefing_agent/internal/notify"
	"github.com/yeojugoodnews/briefing_agent/internal/pipeline"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
	"github.com/yeojugoodnews/briefing_agent/internal/publish"
	"github.com/yeojugoodnews/briefing_agent/internal/wordpress"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	profileName := flag.String("profile", "", "publication profile (overrides config)")
	flag.Parse()

	// .env is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *profileName != "" {
		cfg.Profile = *profileName
	}
	if cfg.Profile == "" {
		cfg.Profile = "morning-briefing"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("init logger: %v", err)
	}

	prof, err := profile.Builtin(cfg.Profile)
	if err != nil {
		logger.Log.Fatalf("profile error: %v", err)
	}
	logger.Log.Infof("starting briefing run: profile=%s", prof.Name)

	limit := rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
	limiter := rate.NewLimiter(limit, cfg.Concurrency.QPS)

	aggregator := aggregate.New(feed.NewSource(prof.ExpandSummaries), limiter)

	var aux pipeline.AuxCollector
	if prof.HasAux() {
		aux = market.NewIndexScraper(cfg.Market.Endpoint)
	}

	composer := compose.New(llm.NewAnthropicClient(cfg.LLM.APIKey, cfg.LLM.Model), nil, nil)
	publisher := publish.New(wordpress.NewClient(cfg.WordPress.BaseURL, cfg.WordPress.User, cfg.WordPress.AppPassword))
	notifier := notify.NewTelegram("", cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	engine := pipeline.New(prof, aggregator, aux, composer, publisher, notifier)

	report, err := engine.Run(context.Background())
	for _, stage := range report.Stages {
		logger.Log.Infof("stage %-14s %-30s count=%d", stage.Stage, stage.Outcome, stage.Count)
	}
	if err != nil {
		logger.Log.Errorf("run aborted: %v", err)
		os.Exit(1)
	}
	if !report.Publish.Success {
		logger.Log.Errorf("run finished with publish failure: status %d", report.Publish.StatusCode)
		os.Exit(1)
	}
	logger.Log.Infof("run finished: %s", report.Publish.URL)
}
