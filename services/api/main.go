package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/poller"
	"github.com/02loveslollipop/chamber-air-dashboard/internal/sheets"
	"github.com/02loveslollipop/chamber-air-dashboard/services/api/config"
	httpserver "github.com/02loveslollipop/chamber-air-dashboard/services/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := sheets.NewClient(cfg.ScriptURL, cfg.RequestTimeout)
	if !client.Configured() {
		log.Printf("warning: GOOGLE_SCRIPT_URL is not set; sensor requests will fail until it is configured")
	}

	p := poller.New(poller.Config{
		Interval: cfg.PollInterval,
		Timeout:  cfg.RequestTimeout,
	}, client, log.Default())
	if err := p.Start(ctx); err != nil {
		log.Fatalf("poller error: %v", err)
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+time.Second)
		defer stopCancel()
		if err := p.Stop(stopCtx); err != nil {
			log.Printf("poller stop: %v", err)
		}
	}()

	srv := httpserver.New(cfg, client, p)
	log.Printf("REST API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Printf("server error: %v", err)
	}
}
