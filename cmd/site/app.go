package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/HeyGarrison/cakeelizabethdotcom/config"
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/content/sqlitestore"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/logging"
	"github.com/HeyGarrison/cakeelizabethdotcom/pages"
	"github.com/charmbracelet/log"
)

// app is everything a command needs, built from the configuration.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	deps    pages.Deps
	assets  fs.FS
	closers []io.Closer
}

// loadApp reads the configuration at path (empty for defaults and
// environment only) and opens the content store it names.
func loadApp(path string, logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger, err := logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Prefix: "cake",
		Output: logOutput,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}

	store, err := a.openStore()
	if err != nil {
		return nil, err
	}

	bundle, err := locale.NewBundle()
	if err != nil {
		a.close()
		return nil, err
	}
	text, err := locale.New(bundle, cfg.Language)
	if err != nil {
		a.close()
		return nil, err
	}

	a.deps = pages.Deps{Store: store, Text: text}
	if cfg.AssetsDir != "" {
		a.assets = os.DirFS(cfg.AssetsDir)
	}

	logger.Debug("Configuration loaded",
		"content", cfg.Content.Source,
		"language", text.Tag().String(),
		"assets", cfg.AssetsDir,
	)
	return a, nil
}

func (a *app) openStore() (content.Store, error) {
	switch a.cfg.Content.Source {
	case config.SourceEmbedded:
		return content.Embedded(), nil
	case config.SourceDir:
		return content.NewFSStore(os.DirFS(a.cfg.Content.Dir)), nil
	case config.SourceSQLite:
		s, err := sqlitestore.Open(a.cfg.Content.DB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s)
		return s, nil
	default:
		return nil, fmt.Errorf("%w: content source %q", config.ErrInvalid, a.cfg.Content.Source)
	}
}

func (a *app) close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
