package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/cheerbot/pkg/config"
	"github.com/umputun/cheerbot/pkg/content"
	"github.com/umputun/cheerbot/pkg/notify"
	"github.com/umputun/cheerbot/pkg/provider"
	"github.com/umputun/cheerbot/pkg/repository"
	"github.com/umputun/cheerbot/pkg/scheduler"
	"github.com/umputun/cheerbot/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Telegram.Token, cfg.LLM.APIKey)

	log.Printf("[INFO] starting cheerbot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] cheerbot failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires the stores, content sources, notifier, scheduler and admin
// server, then blocks until the context is cancelled.
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.New(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close repositories: %v", err)
		}
	}()

	filter := content.NewFilter(content.FilterConfig{
		MaxLength: cfg.Content.MaxLength,
		MaxEmoji:  cfg.Content.MaxEmoji,
	})

	pack, err := content.LoadPack(cfg.Content.PackPath, filter)
	if err != nil {
		return fmt.Errorf("load content pack: %w", err)
	}

	var remote provider.Fetcher
	if cfg.LLM.Endpoint != "" {
		remote = provider.NewRemote(provider.RemoteConfig{
			Endpoint:    cfg.LLM.Endpoint,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
			Retries:     cfg.LLM.Retries,
		}, filter)
		log.Printf("[INFO] remote content source enabled, model %s", cfg.LLM.Model)
	}

	var feed provider.Fetcher
	if cfg.Feed.URL != "" {
		feed = provider.NewFeed(provider.FeedConfig{
			URL:       cfg.Feed.URL,
			Timeout:   cfg.Feed.Timeout,
			UserAgent: cfg.Feed.UserAgent,
		}, filter)
		log.Printf("[INFO] feed content source enabled, %s", cfg.Feed.URL)
	}

	selector := provider.NewSelector(provider.SelectorParams{
		Remote:  remote,
		Feed:    feed,
		Pack:    pack,
		History: repos.History,
		Window:  time.Duration(cfg.Content.RepeatWindowDays) * 24 * time.Hour,
		Draws:   cfg.Content.Draws,
	})

	notifier, err := notify.NewTelegram(notify.TelegramConfig{
		Token:   cfg.Telegram.Token,
		Timeout: cfg.Telegram.Timeout,
	})
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}

	sched := scheduler.New(scheduler.Params{
		Tenants:     repos.Tenant,
		Cooldowns:   repos.Cooldown,
		History:     repos.History,
		Weekly:      repos.Weekly,
		Selector:    selector,
		Notifier:    notifier,
		Concurrency: cfg.Schedule.Concurrency,
		SlotTTL:     cfg.Schedule.SlotCooldown,
		NowTTL:      cfg.Schedule.NowCooldown,
		Retention:   time.Duration(cfg.Schedule.RetentionDays) * 24 * time.Hour,
	})
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(cfg, repos.Tenant, repos.Cooldown, sched, revision, debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
