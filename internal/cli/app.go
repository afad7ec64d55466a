package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/configfinder"
	"github.com/aalvaropc/unitconv/internal/infra/historystore"
	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/ports"
	"github.com/aalvaropc/unitconv/internal/registry"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

// globalOpts holds the persistent flags shared by every command.
type globalOpts struct {
	debug         bool
	noTemperature bool
	configDir     string

	locator ports.ConfigLocator
}

type appCtx struct {
	root  string
	found bool
	cfg   domain.Config

	registry *registry.Registry
	engine   *usecase.Engine
	history  ports.HistoryStore
	log      *slog.Logger

	cleanup func() error
}

func (a *appCtx) Close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

// loadApp resolves the config and wires the engine. File logging and
// history are only enabled under a config root (see `unitconv init`), or
// for logging, when --debug is set.
func loadApp(opts *globalOpts) (*appCtx, error) {
	start, err := resolveStartDir(opts.configDir)
	if err != nil {
		return nil, err
	}

	res, err := configfinder.Resolve(opts.locator, start)
	if err != nil {
		return nil, err
	}

	cfg := res.Config
	if opts.noTemperature {
		cfg.Temperature.Enabled = false
	}

	app := &appCtx{
		root:  res.Root,
		found: res.Found,
		cfg:   cfg,
	}

	if res.Found || opts.debug {
		cleanup, lerr := logger.Setup(logger.Config{Root: res.Root, Debug: opts.debug})
		if lerr == nil {
			app.cleanup = cleanup
		}
	}
	app.log = logger.L()

	app.registry = registry.New(registry.Options{IncludeTemperature: cfg.Temperature.Enabled})
	app.engine = usecase.NewEngine(app.registry, usecase.WithLogger(app.log))

	if res.Found && cfg.History.Enabled {
		app.history = historystore.NewJSONLStore(res.Root, cfg)
	}

	app.log.Info("app.loaded",
		"root", app.root,
		"config_found", app.found,
		"temperature", cfg.Temperature.Enabled,
		"history", app.history != nil,
		"log_file", logger.Path(),
	)
	return app, nil
}

func resolveStartDir(configFlag string) (string, error) {
	d := strings.TrimSpace(configFlag)
	if d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return "", fmt.Errorf("invalid config path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}
