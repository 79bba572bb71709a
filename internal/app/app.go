package app

import (
	"context"
	"fmt"
	"time"

	"shellpanel/internal/config"
	"shellpanel/internal/logsink"
	"shellpanel/internal/prefs"
	"shellpanel/internal/session"
	"shellpanel/internal/state"
	"shellpanel/internal/ui"
)

// Options configure the shellpanel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shellpanel/prefs.toml
	PollEvery  int    // seconds; zero uses default
}

// Run boots the panel until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := session.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init supervisor client: %w", err)
	}

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	StartPoller(ctx, store, client, interval)

	// Populate the store before the first render.
	refresh(ctx, store, client)

	uiOpts := ui.Options{
		Context:       ctx,
		Source:        store,
		Control:       client,
		FileSink:      logsink.FileSink{Dir: cfg.ExportDir},
		ClipboardSink: logsink.ClipboardSink{},
		PollTick:      time.Second,
		ThemeName:     userPrefs.Theme,
		PrefsPath:     opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
