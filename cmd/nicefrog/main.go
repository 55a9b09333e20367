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
	"golang.org/x/sync/errgroup"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/auth"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/config"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/engine"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/feed"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/notify"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/relay"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/repository"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/verify"
	"github.com/kateryna-ts/NiceFrogbeta/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file path, defaults apply when omitted"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

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

	setupLog(opts.Debug)

	log.Printf("[INFO] starting nicefrog version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] nicefrog failed: %v", err)
		cancel()
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until ctx is cancelled
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close storage: %v", err)
		}
	}()

	if err := repos.Listing.SeedListings(ctx, seedListings()); err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}

	rly := relay.NewClient(cfg.Relay.Timeout)

	pusher := notify.NewPushSender(nil)
	pusher.RequestPermission()

	eng := engine.NewEngine(engine.Params{
		Source:       feed.NewSource(),
		Relay:        rly,
		Pusher:       pusher,
		PollInterval: cfg.Engine.PollInterval,
		ToastDwell:   cfg.Engine.ToastDwell,
	})

	// rehydrate the SMS side channel from the stored settings
	phoneCfg, err := repos.Phone.GetPrimaryPhoneConfig(ctx)
	if err != nil {
		log.Printf("[WARN] failed to load phone config: %v", err)
	}
	if phoneCfg != nil {
		eng.SetPhoneConfig(phoneCfg)
	}

	authSvc := auth.New(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	verifySvc := verify.New(rly, 0)

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), eng, authSvc, verifySvc, rly, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		eng.Start(gctx)
		<-gctx.Done()
		eng.Stop()
		return nil
	})
	return g.Wait()
}

// loadConfig reads the config file when one is given, falls back to defaults
// otherwise, and applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
