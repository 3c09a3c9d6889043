package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/boxcast/boxcast-go/boxcast"
	"github.com/boxcast/boxcast-go/internal/config"
	"github.com/boxcast/boxcast-go/internal/logging"
	"github.com/boxcast/boxcast-go/internal/prefs"
	"github.com/boxcast/boxcast-go/internal/state"
	"github.com/boxcast/boxcast-go/internal/ui"
)

// Options configure the viewer. Non-zero fields override the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/boxcast/prefs.toml
	ChannelID  string
	APIURL     string
	PollEvery  int // seconds; zero uses the config value
}

// Run boots the viewer TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Output: logFile})
	logger.Info().Str("channel", cfg.ChannelID).Str("api_url", cfg.APIURL).Msg("viewer starting")

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("load prefs")
	}

	client, err := boxcast.NewClient(
		boxcast.WithBaseURL(cfg.APIURL),
		boxcast.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init boxcast client: %w", err)
	}

	store := state.NewStore(cfg.ChannelID)
	interval := time.Duration(cfg.PollSeconds) * time.Second

	// Initial refresh so the first frame has data
	if err := refresh(ctx, store, client, cfg.ChannelID); err != nil {
		logger.Warn().Err(err).Msg("initial poll failed")
	}
	pollCtx, stopPoller := context.WithCancel(ctx)
	defer stopPoller()
	StartPoller(pollCtx, store, client, cfg.ChannelID, interval, logging.WithComponent(logger, "poller"))

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    &cfg,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		Tab:       userPrefs.Tab,
		PrefsPath: opts.PrefsPath,
	})
}

func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.ChannelID); v != "" {
		cfg.ChannelID = v
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
