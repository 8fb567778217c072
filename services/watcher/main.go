package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/poller"
	"github.com/02loveslollipop/chamber-air-dashboard/internal/sheets"
	"github.com/02loveslollipop/chamber-air-dashboard/services/watcher/internal/apiclient"
	"github.com/02loveslollipop/chamber-air-dashboard/services/watcher/internal/config"
	"github.com/02loveslollipop/chamber-air-dashboard/services/watcher/internal/dashboard"
	"github.com/02loveslollipop/chamber-air-dashboard/services/watcher/internal/layout"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("dashboard failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the dashboard; logs go to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	l, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return err
	}

	var source poller.Source
	switch cfg.Source {
	case config.SourceDirect:
		source = sheets.NewClient(cfg.ScriptURL, cfg.RequestTimeout)
	default:
		source = apiclient.New(cfg.APIBaseURL, cfg.APIToken, cfg.RequestTimeout)
	}
	logger.Printf("dashboard source=%s interval=%s", cfg.Source, cfg.PollInterval)

	p := poller.New(poller.Config{
		Interval: cfg.PollInterval,
		Timeout:  cfg.RequestTimeout,
	}, source, logger)

	program := tea.NewProgram(dashboard.New(l, p.Snapshot(), p.Refresh), tea.WithAltScreen())
	unsubscribe := p.Subscribe(poller.SnapshotHandlerFunc(func(s poller.Snapshot) {
		program.Send(dashboard.SnapshotMsg(s))
	}))
	defer unsubscribe()

	if err := p.Start(context.Background()); err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := p.Stop(ctx); err != nil {
			logger.Printf("poller stop: %v", err)
		}
	}()

	_, err = program.Run()
	return err
}
