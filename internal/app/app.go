package app

import (
	"context"
	"fmt"

	"github.com/telewish/telewish/internal/api"
	"github.com/telewish/telewish/internal/config"
	"github.com/telewish/telewish/internal/prefs"
	"github.com/telewish/telewish/internal/state"
	"github.com/telewish/telewish/internal/ui"
)

// Options configure the telewish application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/telewish/prefs.toml
}

// Run boots the telewish TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	themeName := userPrefs.Theme
	if cfg.Theme != "" {
		themeName = cfg.Theme
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     state.New(),
		Theme:     ui.ThemeByName(themeName),
		PrefsPath: opts.PrefsPath,
		Prefs:     userPrefs,
	}

	// Without a session credential there is nothing to retry: the UI
	// starts on a static error view instead of attempting bootstrap.
	if cfg.InitData == "" {
		uiOpts.FatalErr = "no session credential: set init_data in the config or TELEWISH_INIT_DATA"
		return ui.Run(uiOpts)
	}

	client, err := api.NewClient(cfg.BaseURL, cfg.InitData)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	uiOpts.Gateway = client

	return ui.Run(uiOpts)
}
